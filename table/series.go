package table

// Series is a reference [Vector] implementation: a named, indexed,
// one-dimensional column of data.
type Series struct {
	name   string
	index  Index
	values *SimpleArray
}

var _ Vector = (*Series)(nil)

// NewSeries builds a Series named name, over the given index and values.
// If index is nil, a default range index matching len(values) is used.
func NewSeries(name string, index Index, dtype DType, values []any) *Series {
	if index == nil {
		index = NewRangeIndex(len(values))
	}

	return &Series{name: name, index: index, values: NewVector1D(dtype, values)}
}

func (s *Series) Name() string  { return s.name }
func (s *Series) Index() Index  { return s.index }
func (s *Series) Values() Array { return s.values }
