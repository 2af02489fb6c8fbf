package encode

import "fmt"

// Kind mirrors the public tabjson.Kind taxonomy; it is redeclared here so
// this package does not import the root package, which imports this one.
// The two enums share ordinal values by construction (see the package
// comment on Config's own redeclared enums) so the root package can cast
// between them directly.
type Kind uint8

const (
	KindOption Kind = iota
	KindType
	KindOverflow
	KindConversion
	KindShape
	KindResource
	KindHandler
)

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

// Error is returned by every dispatch/iterator/strider function in this
// package on failure.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string { return fmt.Sprintf("%v: %v", e.Kind, e.Err) }
func (e *Error) Unwrap() error { return e.Err }

func errOption(format string, args ...any) *Error {
	return &Error{Kind: KindOption, Err: fmt.Errorf(format, args...)}
}

func errType(format string, args ...any) *Error {
	return &Error{Kind: KindType, Err: fmt.Errorf(format, args...)}
}

func errOverflow(format string, args ...any) *Error {
	return &Error{Kind: KindOverflow, Err: fmt.Errorf(format, args...)}
}

func errConversion(format string, args ...any) *Error {
	return &Error{Kind: KindConversion, Err: fmt.Errorf(format, args...)}
}

func errShape(format string, args ...any) *Error {
	return &Error{Kind: KindShape, Err: fmt.Errorf(format, args...)}
}

func errResource(format string, args ...any) *Error {
	return &Error{Kind: KindResource, Err: fmt.Errorf(format, args...)}
}

func errHandler(format string, args ...any) *Error {
	return &Error{Kind: KindHandler, Err: fmt.Errorf(format, args...)}
}

// WithPath annotates err, if it is an *Error, with a path prefix, used as
// the dispatcher unwinds back up through container keys/indices.
func WithPath(err error, segment string) error {
	if err == nil {
		return nil
	}

	e, ok := err.(*Error)
	if !ok {
		return err
	}

	if e.Path == "" {
		e.Path = segment
	} else {
		e.Path = segment + e.Path
	}

	return e
}
