package table

import "fmt"

// SimpleArray is a reference [Array] implementation backed by a flat,
// row-major Go slice.
type SimpleArray struct {
	shape     []int
	dtype     DType
	data      []any
	transpose bool
}

var _ Array = (*SimpleArray)(nil)

// NewArray builds a row-major Array of the given shape from data, which
// must hold exactly the product of shape elements, already flattened in
// row-major order.
func NewArray(shape []int, dtype DType, data []any) (*SimpleArray, error) {
	want := 1
	for _, s := range shape {
		want *= s
	}

	if want != len(data) {
		return nil, fmt.Errorf("tabjson/table: shape %v wants %d elements, got %d", shape, want, len(data))
	}

	return &SimpleArray{shape: append([]int(nil), shape...), dtype: dtype, data: data}, nil
}

// NewVector1D builds a 1-D Array, inferring its length from data.
func NewVector1D(dtype DType, data []any) *SimpleArray {
	return &SimpleArray{shape: []int{len(data)}, dtype: dtype, data: data}
}

func (a *SimpleArray) Shape() []int { return a.shape }
func (a *SimpleArray) DType() DType { return a.dtype }
func (a *SimpleArray) Len() int     { return len(a.data) }

func (a *SimpleArray) At(flatIndex int) any {
	return a.data[flatIndex]
}

func (a *SimpleArray) Transpose() bool { return a.transpose }

// WithTranspose returns a shallow copy of the array marked to be walked
// column-major instead of row-major.
func (a *SimpleArray) WithTranspose(t bool) *SimpleArray {
	cp := *a
	cp.transpose = t
	return &cp
}
