package tabjson

import (
	"fmt"

	"github.com/tabjson/tabjson/internal/encode"
)

// Kind categorizes an [EncodeError] the way failures are classified
// throughout this module: by what layer rejected the value, not by which
// function happened to notice.
type Kind uint8

const (
	// KindOption marks an invalid option passed to [NewEncoder] or [Marshal].
	KindOption Kind = iota
	// KindType marks a value with no registered encoding strategy.
	KindType
	// KindOverflow marks a numeric value that does not fit its target
	// representation (e.g. a uint64 too large for an int64 JSON number,
	// or a date outside the configured unit's range).
	KindOverflow
	// KindConversion marks a value that failed to coerce to a primitive.
	// (A DictConvertible whose ToDict call fails encodes as null instead.)
	KindConversion
	// KindShape marks a table.Array or label set whose dimensions are
	// inconsistent with its companion data.
	KindShape
	// KindResource marks an exhausted internal limit, such as the
	// recursion depth guard or a detected reference cycle.
	KindResource
	// KindHandler marks a user-supplied default handler returning an error.
	KindHandler
)

// String names the Kind.
func (k Kind) String() string {
	switch k {
	case KindOption:
		return "option"
	case KindType:
		return "type"
	case KindOverflow:
		return "overflow"
	case KindConversion:
		return "conversion"
	case KindShape:
		return "shape"
	case KindResource:
		return "resource"
	case KindHandler:
		return "handler"
	default:
		return "unknown"
	}
}

// EncodeError is returned by [Marshal] and [Encoder.Encode] for any
// failure to produce JSON for a value. Kind identifies which policy
// rejected it; Path names the location within the root value, using "."
// for object members and "[i]" for array/table elements, e.g. ".columns[2].value".
type EncodeError struct {
	Kind Kind
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("tabjson: %s: %v", e.Kind, e.Err)
	}

	return fmt.Sprintf("tabjson: %s at %s: %v", e.Kind, e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

func newError(kind Kind, path string, format string, args ...any) *EncodeError {
	return &EncodeError{Kind: kind, Path: path, Err: fmt.Errorf(format, args...)}
}

// fromInternal wraps an internal/encode.Error as the public EncodeError,
// casting its Kind directly since the two enums share ordinal values by
// construction. Any other error (there should be none, but reflection-
// driven dispatch can surface one from a misbehaving default handler) is
// wrapped as KindHandler.
func fromInternal(err error) error {
	if err == nil {
		return nil
	}

	if e, ok := err.(*encode.Error); ok {
		return &EncodeError{Kind: Kind(e.Kind), Path: e.Path, Err: e.Err}
	}

	return &EncodeError{Kind: KindHandler, Err: err}
}
