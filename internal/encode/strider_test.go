package encode

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tabjson/tabjson/table"
)

func TestEncodeNDArray_2D(t *testing.T) {
	arr, err := table.NewArray([]int{2, 3}, table.Int64, []any{
		int64(1), int64(2), int64(3),
		int64(4), int64(5), int64(6),
	})
	require.NoError(t, err)

	buf := newTestBuffer()
	sink := newTestSink(buf)

	require.NoError(t, encodeNDArray(sink, NewConfig(), arr, nil))
	require.Equal(t, "[[1,2,3],[4,5,6]]", string(buf.Bytes()))
}

func TestEncodeNDArray_Transposed(t *testing.T) {
	arr, err := table.NewArray([]int{2, 3}, table.Int64, []any{
		int64(1), int64(2), int64(3),
		int64(4), int64(5), int64(6),
	})
	require.NoError(t, err)

	transposed := arr.WithTranspose(true)

	buf := newTestBuffer()
	sink := newTestSink(buf)

	require.NoError(t, encodeNDArray(sink, NewConfig(), transposed, nil))
	require.Equal(t, "[[1,4],[2,5],[3,6]]", string(buf.Bytes()))
}

func TestEncodeNDArray_KeyedAxis(t *testing.T) {
	arr, err := table.NewArray([]int{2, 2}, table.Int64, []any{
		int64(1), int64(2),
		int64(3), int64(4),
	})
	require.NoError(t, err)

	buf := newTestBuffer()
	sink := newTestSink(buf)

	labels := map[int][]string{0: {"r0", "r1"}}

	require.NoError(t, encodeNDArray(sink, NewConfig(), arr, labels))
	require.Equal(t, `{"r0":[1,2],"r1":[3,4]}`, string(buf.Bytes()))
}

func TestEncodeNDArray_ShapeMismatch(t *testing.T) {
	arr, err := table.NewArray([]int{2}, table.Int64, []any{int64(1), int64(2)})
	require.NoError(t, err)

	buf := newTestBuffer()
	sink := newTestSink(buf)

	labels := map[int][]string{0: {"only-one"}}

	require.Error(t, encodeNDArray(sink, NewConfig(), arr, labels))
}
