package encode

import (
	"fmt"

	"github.com/tabjson/tabjson/internal/writer"
	"github.com/tabjson/tabjson/table"
)

// strider walks a table.Array in row-major order (or the reverse axis
// order when the array is marked transposed), descending one JSON array
// level per axis until the innermost axis, where it materializes leaf
// scalars. An axis with a label set is written as a JSON object keyed by
// those labels instead of an array; a table's Columns orientation and a
// vector's Index/Columns orientation use this to key values by row label.
type strider struct {
	arr     table.Array
	shape   []int
	strides []int
	ndim    int
	order   []int // axis visited at each descent depth, outermost first
	labels  map[int][]string
}

func newStrider(arr table.Array, labels map[int][]string) (*strider, error) {
	shape := arr.Shape()
	ndim := len(shape)

	if ndim == 0 {
		return nil, errShape("array has no axes")
	}

	strides := make([]int, ndim)
	strides[ndim-1] = 1

	for a := ndim - 2; a >= 0; a-- {
		strides[a] = strides[a+1] * shape[a+1]
	}

	order := make([]int, ndim)
	for d := range order {
		if arr.Transpose() {
			order[d] = ndim - 1 - d
		} else {
			order[d] = d
		}
	}

	for axis, want := range labels {
		if axis < 0 || axis >= ndim {
			continue
		}

		if err := checkLabelShape(want, shape[axis], fmt.Sprintf("axis %d", axis)); err != nil {
			return nil, err
		}
	}

	return &strider{arr: arr, shape: shape, strides: strides, ndim: ndim, order: order, labels: labels}, nil
}

// encodeNDArray writes arr as nested JSON arrays (or, at axes carrying a
// label set, nested JSON objects keyed by that axis's label).
func encodeNDArray(sink *writer.Sink, cfg *Config, arr table.Array, labels map[int][]string) error {
	s, err := newStrider(arr, labels)
	if err != nil {
		return err
	}

	idx := make([]int, s.ndim)

	return s.walk(sink, cfg, idx, 0)
}

func (s *strider) walk(sink *writer.Sink, cfg *Config, idx []int, depth int) error {
	axis := s.order[depth]
	size := s.shape[axis]
	names, keyed := s.labels[axis]

	if keyed {
		sink.BeginObject()
	} else {
		sink.BeginArray()
	}

	for i := 0; i < size; i++ {
		idx[axis] = i

		if keyed {
			sink.WriteRawKey(names[i])
		}

		var err error
		if depth == s.ndim-1 {
			err = s.writeLeaf(sink, cfg, idx)
		} else {
			err = s.walk(sink, cfg, idx, depth+1)
		}

		if err != nil {
			return WithPath(err, fmt.Sprintf("[%d]", i))
		}
	}

	if keyed {
		sink.EndObject()
	} else {
		sink.EndArray()
	}

	return nil
}

func (s *strider) flatOffset(idx []int) int {
	off := 0
	for a, v := range idx {
		off += v * s.strides[a]
	}

	return off
}

func (s *strider) writeLeaf(sink *writer.Sink, cfg *Config, idx []int) error {
	v := s.arr.At(s.flatOffset(idx))

	return dispatchLeaf(sink, cfg, v, s.arr.DType())
}
