package tabjson

import (
	"fmt"

	"github.com/tabjson/tabjson/compress"
	"github.com/tabjson/tabjson/internal/encode"
	"github.com/tabjson/tabjson/internal/options"
)

// Option configures a [Marshal] or [NewEncoder] call.
type Option = encode.Option

// WithOrientation selects how a table or vector is rearranged into JSON.
func WithOrientation(o Orientation) Option {
	return options.New(func(cfg *encode.Config) error {
		switch o {
		case Split:
			return cfg.SetOrientation(encode.OrientSplit)
		case Records:
			return cfg.SetOrientation(encode.OrientRecords)
		case Index:
			return cfg.SetOrientation(encode.OrientIndex)
		case Columns:
			return cfg.SetOrientation(encode.OrientColumns)
		case Values:
			return cfg.SetOrientation(encode.OrientValues)
		default:
			return fmt.Errorf("invalid orientation: %d", o)
		}
	})
}

// WithDateUnit selects the precision used to render dates.
func WithDateUnit(u DateUnit) Option {
	return options.New(func(cfg *encode.Config) error {
		switch u {
		case UnitSecond:
			return cfg.SetDateUnit(encode.UnitSecond)
		case UnitMillisecond:
			return cfg.SetDateUnit(encode.UnitMillisecond)
		case UnitMicrosecond:
			return cfg.SetDateUnit(encode.UnitMicrosecond)
		case UnitNanosecond:
			return cfg.SetDateUnit(encode.UnitNanosecond)
		default:
			return fmt.Errorf("invalid date unit: %d", u)
		}
	})
}

// WithDateFormat selects epoch-integer or ISO-8601 date rendering.
func WithDateFormat(f DateFormat) Option {
	return options.New(func(cfg *encode.Config) error {
		switch f {
		case DateEpoch:
			return cfg.SetDateFormat(encode.DateEpoch)
		case DateISO:
			return cfg.SetDateFormat(encode.DateISO)
		default:
			return fmt.Errorf("invalid date format: %d", f)
		}
	})
}

// WithPrecision sets the number of significant digits used to render a
// floating point value, from 0 to 17.
func WithPrecision(p int) Option {
	return options.New(func(cfg *encode.Config) error {
		return cfg.SetPrecision(p)
	})
}

// WithForceASCII escapes every non-ASCII rune as \uXXXX instead of copying
// it through as raw UTF-8.
func WithForceASCII(v bool) Option {
	return options.NoError(func(cfg *encode.Config) { cfg.SetForceASCII(v) })
}

// WithHTMLEscape escapes '<', '>', and '&' as JSON Unicode escape
// sequences (U+003C, U+003E, U+0026), the same conservative default
// encoding/json applies, so the output is
// safe to embed inside an HTML <script> tag.
func WithHTMLEscape(v bool) Option {
	return options.NoError(func(cfg *encode.Config) { cfg.SetHTMLEscape(v) })
}

// WithMaxDepth caps recursion into nested containers, tables, and arrays.
func WithMaxDepth(n int) Option {
	return options.New(func(cfg *encode.Config) error {
		return cfg.SetMaxDepth(n)
	})
}

// WithDefaultHandler registers a fallback invoked for any value with no
// built-in encoding: it must return a JSON-encodable replacement, or an
// error to reject the value outright.
func WithDefaultHandler(h func(v any) (any, error)) Option {
	return options.NoError(func(cfg *encode.Config) { cfg.SetDefaultHandler(encode.DefaultHandler(h)) })
}

// WithCompression compresses the finished JSON byte stream with the given
// codec before it is returned from [Marshal] or [Encoder.Bytes].
func WithCompression(t CompressionType) Option {
	return options.New(func(cfg *encode.Config) error {
		return cfg.SetCompression(compress.Type(t))
	})
}
