package table

import "fmt"

// Frame is a reference [Table] implementation: a set of named columns
// sharing one row index.
type Frame struct {
	columns []string
	index   Index
	data    map[string]Vector
	numRows int
}

var _ Table = (*Frame)(nil)

// NewFrame builds a Frame from columns, in order, backed by cols. Every
// column must share the same length; index defaults to a range index of
// that length when nil.
func NewFrame(columns []string, cols map[string]*SimpleArray, index Index) (*Frame, error) {
	numRows := 0
	if len(columns) > 0 {
		numRows = cols[columns[0]].Len()
	}

	if index == nil {
		index = NewRangeIndex(numRows)
	}

	data := make(map[string]Vector, len(columns))
	for _, name := range columns {
		data[name] = &Series{name: name, index: index, values: cols[name]}
	}

	return &Frame{columns: append([]string(nil), columns...), index: index, data: data, numRows: numRows}, nil
}

func (f *Frame) Columns() []string { return f.columns }
func (f *Frame) Index() Index      { return f.index }
func (f *Frame) NumRows() int      { return f.numRows }

func (f *Frame) Column(name string) Vector {
	return f.data[name]
}

// Row returns the i-th row as a Vector whose index runs over the frame's
// column names.
func (f *Frame) Row(i int) Vector {
	rowIndex := NewIndex("", Object, toAnySlice(f.columns))
	values := make([]any, len(f.columns))

	for j, name := range f.columns {
		values[j] = f.data[name].Values().At(i)
	}

	name := fmt.Sprintf("%v", f.index.Values().At(i))

	return &Series{name: name, index: rowIndex, values: NewVector1D(Object, values)}
}

func toAnySlice(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}

	return out
}
