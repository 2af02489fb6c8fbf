package table

// SimpleIndex is a reference [Index] implementation backed by a label
// slice.
type SimpleIndex struct {
	name   string
	labels *SimpleArray
}

var _ Index = (*SimpleIndex)(nil)

// NewIndex builds an Index named name from a slice of labels. dtype
// describes the label element type (Int64 for a default RangeIndex-style
// integer index, Object for string labels, and so on).
func NewIndex(name string, dtype DType, labels []any) *SimpleIndex {
	return &SimpleIndex{name: name, labels: NewVector1D(dtype, labels)}
}

// NewRangeIndex builds an unnamed integer index 0..n-1, mirroring a
// default positional index.
func NewRangeIndex(n int) *SimpleIndex {
	labels := make([]any, n)
	for i := range labels {
		labels[i] = int64(i)
	}

	return NewIndex("", Int64, labels)
}

func (idx *SimpleIndex) Name() string  { return idx.name }
func (idx *SimpleIndex) Values() Array { return idx.labels }
