package table

// DType identifies the element type stored in an [Array].
type DType uint8

const (
	// Float64 marks an array of float64 elements.
	Float64 DType = iota
	// Int64 marks an array of int64 elements.
	Int64
	// Bool marks an array of bool elements.
	Bool
	// DateTime marks an array of time.Time elements, or of int64 epoch
	// nanoseconds, nanosecond precision.
	DateTime
	// Object marks an array of arbitrary, possibly heterogeneous, elements.
	Object
)

// String returns the human-readable name of the dtype.
func (d DType) String() string {
	switch d {
	case Float64:
		return "float64"
	case Int64:
		return "int64"
	case Bool:
		return "bool"
	case DateTime:
		return "datetime"
	case Object:
		return "object"
	default:
		return "unknown"
	}
}
