package table

// Array is a typed, row-major, possibly multi-dimensional data buffer.
//
// Shape reports the size of each axis; a 1-D array has len(Shape()) == 1.
// At returns the element at a flat (row-major) offset; callers compute the
// offset from Shape and the per-axis strides themselves, the same way the
// numeric strider in tabjson does.
type Array interface {
	// Shape returns the size of each axis, outermost first.
	Shape() []int
	// DType reports the element type.
	DType() DType
	// Len returns the total element count (the product of Shape).
	Len() int
	// At returns the element at the given flat, row-major offset.
	At(flatIndex int) any
	// Transpose reports whether the array should be walked column-major
	// instead of row-major.
	Transpose() bool
}

// Index is a named, ordered sequence of labels.
type Index interface {
	// Name returns the index's own label, or "" if unnamed.
	Name() string
	// Values returns the labels as a 1-D Array.
	Values() Array
}

// Vector is a named one-dimensional series of values with its own index.
type Vector interface {
	// Name returns the vector's label.
	Name() string
	// Index returns the row labels.
	Index() Index
	// Values returns the vector's data as a 1-D Array.
	Values() Array
}

// Table is a two-dimensional labeled table made of named columns sharing a
// single row index.
type Table interface {
	// Columns returns the column names in order.
	Columns() []string
	// Index returns the row labels shared by every column.
	Index() Index
	// Column returns the named column as a Vector, or nil if absent.
	Column(name string) Vector
	// Row returns the i-th row as a Vector keyed by column name.
	Row(i int) Vector
	// NumRows reports the number of rows.
	NumRows() int
}

// DictConvertible is implemented by values that know how to present
// themselves as a map for encoding purposes.
type DictConvertible interface {
	ToDict() (map[string]any, error)
}
