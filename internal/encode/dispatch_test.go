package encode

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tabjson/tabjson/table"
)

func encodeToString(t *testing.T, cfg *Config, v any) string {
	t.Helper()

	st := newTestState(cfg)

	require.NoError(t, encodeValue(st, v))

	return string(st.sink.Bytes())
}

func TestEncodeValue_Scalars(t *testing.T) {
	require.Equal(t, "null", encodeToString(t, nil, nil))
	require.Equal(t, "true", encodeToString(t, nil, true))
	require.Equal(t, "42", encodeToString(t, nil, 42))
	require.Equal(t, `"hi"`, encodeToString(t, nil, "hi"))
}

func TestEncodeValue_Slice(t *testing.T) {
	out := encodeToString(t, nil, []int{1, 2, 3})
	require.Equal(t, "[1,2,3]", out)
}

func TestEncodeValue_Map(t *testing.T) {
	out := encodeToString(t, nil, map[string]int{"b": 2, "a": 1})
	require.Equal(t, `{"a":1,"b":2}`, out)
}

func TestEncodeValue_Set(t *testing.T) {
	out := encodeToString(t, nil, map[string]struct{}{"b": {}, "a": {}, "c": {}})
	require.Equal(t, `["a","b","c"]`, out)
}

func TestEncodeValue_Struct(t *testing.T) {
	type point struct {
		X int
		Y int
	}

	out := encodeToString(t, nil, point{X: 1, Y: 2})
	require.Equal(t, `{"X":1,"Y":2}`, out)
}

func TestEncodeValue_StructJSONTag(t *testing.T) {
	type point struct {
		X int `json:"x"`
	}

	out := encodeToString(t, nil, point{X: 7})
	require.Equal(t, `{"x":7}`, out)
}

func TestEncodeValue_Cycle(t *testing.T) {
	type node struct {
		Next *node
	}

	a := &node{}
	a.Next = a

	st := newTestState(nil)

	err := encodeValue(st, a)
	require.Error(t, err)
}

func TestEncodeValue_DefaultHandler(t *testing.T) {
	cfg := NewConfig()
	cfg.SetDefaultHandler(func(v any) (any, error) {
		return "fallback", nil
	})

	out := encodeToString(t, cfg, complex(1, 2))
	require.Equal(t, `"fallback"`, out)
}

func TestEncodeValue_UnsupportedType(t *testing.T) {
	st := newTestState(nil)

	err := encodeValue(st, complex(1, 2))
	require.Error(t, err)
}

func TestEncodeValue_Vector(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, cfg.SetOrientation(OrientIndex))

	vec := table.NewSeries("s", nil, table.Int64, []any{int64(10), int64(20)})

	out := encodeToString(t, cfg, vec)
	require.Equal(t, `{"0":10,"1":20}`, out)
}

func TestEncodeValue_Vector_Split_PreservesIndexDType(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, cfg.SetOrientation(OrientSplit))

	vec := table.NewSeries("s", nil, table.Int64, []any{int64(10), int64(20)})

	out := encodeToString(t, cfg, vec)
	require.Equal(t, `{"name":"s","index":[0,1],"data":[10,20]}`, out)
}

func TestEncodeValue_Index_Split(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, cfg.SetOrientation(OrientSplit))

	idx := table.NewIndex("idx", table.Int64, []any{int64(5), int64(6)})

	out := encodeToString(t, cfg, idx)
	require.Equal(t, `{"name":"idx","data":[5,6]}`, out)
}

func TestEncodeValue_Index_NonSplit(t *testing.T) {
	idx := table.NewIndex("idx", table.Int64, []any{int64(5), int64(6)})

	out := encodeToString(t, nil, idx)
	require.Equal(t, `[5,6]`, out)
}

func TestEncodeValue_Table_Records(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, cfg.SetOrientation(OrientRecords))

	cols := map[string]*table.SimpleArray{
		"a": table.NewVector1D(table.Int64, []any{int64(1), int64(2)}),
		"b": table.NewVector1D(table.Int64, []any{int64(3), int64(4)}),
	}

	tbl, err := table.NewFrame([]string{"a", "b"}, cols, nil)
	require.NoError(t, err)

	out := encodeToString(t, cfg, tbl)
	require.Equal(t, `[{"a":1,"b":3},{"a":2,"b":4}]`, out)
}

func TestEncodeValue_Table_Split(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, cfg.SetOrientation(OrientSplit))

	cols := map[string]*table.SimpleArray{
		"a": table.NewVector1D(table.Int64, []any{int64(1), int64(2)}),
	}

	tbl, err := table.NewFrame([]string{"a"}, cols, nil)
	require.NoError(t, err)

	out := encodeToString(t, cfg, tbl)
	require.Equal(t, `{"columns":["a"],"index":[0,1],"data":[[1],[2]]}`, out)
}

func TestEncodeValue_Table_Columns(t *testing.T) {
	cfg := NewConfig()

	cols := map[string]*table.SimpleArray{
		"a": table.NewVector1D(table.Int64, []any{int64(1), int64(2)}),
	}

	tbl, err := table.NewFrame([]string{"a"}, cols, nil)
	require.NoError(t, err)

	out := encodeToString(t, cfg, tbl)
	require.Equal(t, `{"a":{"0":1,"1":2}}`, out)
}

func TestEncodeValue_Time(t *testing.T) {
	cfg := NewConfig()

	ts := time.Unix(0, int64(1500)*int64(time.Millisecond))

	out := encodeToString(t, cfg, ts)
	require.Equal(t, "1500", out)
}

func TestEncodeValue_NaTTime(t *testing.T) {
	out := encodeToString(t, nil, time.Time{})
	require.Equal(t, "null", out)
}
