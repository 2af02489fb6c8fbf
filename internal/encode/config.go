// Package encode implements the type dispatcher, iterator drivers,
// numeric-array strider, label pre-encoder, and orientation state machine
// that together turn an arbitrary Go value into JSON tokens written
// through an internal/writer.Sink.
package encode

import (
	"fmt"
	"time"

	"github.com/tabjson/tabjson/compress"
	"github.com/tabjson/tabjson/internal/options"
)

// DefaultHandler is called for a value with no registered encoding
// strategy. Returning a non-nil error is a Handler-kind failure;
// returning (nil, nil) encodes as JSON null.
type DefaultHandler func(v any) (any, error)

// Config holds every option-driven decision the encoder makes. It is
// built once per [Marshal]/[Encoder] construction and never mutated
// after the first Encode call starts, except for the current-orientation
// field the orientation state machine saves and restores as it descends.
type Config struct {
	orientation    orientation
	dateUnit       dateUnit
	dateFormat     dateFormat
	precision      int
	forceASCII     bool
	htmlEscape     bool
	maxDepth       int
	defaultHandler DefaultHandler
	compression    compress.Type
	epoch          time.Time
}

// orientation/dateUnit/dateFormat mirror the public tabjson.Orientation /
// tabjson.DateUnit / tabjson.DateFormat enums; they are redeclared here so
// this package does not import the root package (which imports this one).
type orientation uint8
type dateUnit uint8
type dateFormat uint8

const (
	OrientSplit orientation = iota
	OrientRecords
	OrientIndex
	OrientColumns
	OrientValues
)

const (
	UnitSecond dateUnit = iota
	UnitMillisecond
	UnitMicrosecond
	UnitNanosecond
)

const (
	DateEpoch dateFormat = iota
	DateISO
)

// DefaultMaxDepth bounds recursion into nested containers, the same kind
// of resource guard a streaming encoder needs regardless of source
// language.
const DefaultMaxDepth = 10000

// NewConfig returns a Config with the same defaults objToJSON.py ships:
// Columns orientation for tables, epoch-millisecond dates, 10 significant
// digits of float precision, no compression.
func NewConfig() *Config {
	return &Config{
		orientation: OrientColumns,
		dateUnit:    UnitMillisecond,
		dateFormat:  DateEpoch,
		precision:   10,
		maxDepth:    DefaultMaxDepth,
		compression: compress.None,
		epoch:       time.Unix(0, 0).UTC(),
	}
}

func (c *Config) Orientation() orientation     { return c.orientation }
func (c *Config) DateUnit() dateUnit           { return c.dateUnit }
func (c *Config) DateFormat() dateFormat       { return c.dateFormat }
func (c *Config) Precision() int               { return c.precision }
func (c *Config) ForceASCII() bool             { return c.forceASCII }
func (c *Config) HTMLEscape() bool             { return c.htmlEscape }
func (c *Config) MaxDepth() int                { return c.maxDepth }
func (c *Config) DefaultHandler() DefaultHandler { return c.defaultHandler }
func (c *Config) Compression() compress.Type   { return c.compression }

// SetOrientation validates and assigns the encoder's starting orientation.
func (c *Config) SetOrientation(o orientation) error {
	switch o {
	case OrientSplit, OrientRecords, OrientIndex, OrientColumns, OrientValues:
		c.orientation = o
		return nil
	default:
		return fmt.Errorf("invalid orientation: %d", o)
	}
}

// SetDateUnit validates and assigns the date truncation/precision unit.
func (c *Config) SetDateUnit(u dateUnit) error {
	switch u {
	case UnitSecond, UnitMillisecond, UnitMicrosecond, UnitNanosecond:
		c.dateUnit = u
		return nil
	default:
		return fmt.Errorf("invalid date unit: %d", u)
	}
}

// SetDateFormat validates and assigns the epoch-vs-ISO date rendering mode.
func (c *Config) SetDateFormat(f dateFormat) error {
	switch f {
	case DateEpoch, DateISO:
		c.dateFormat = f
		return nil
	default:
		return fmt.Errorf("invalid date format: %d", f)
	}
}

// SetPrecision validates and assigns the float formatting precision.
func (c *Config) SetPrecision(p int) error {
	if p < 0 || p > 17 {
		return fmt.Errorf("precision must be between 0 and 17, got %d", p)
	}

	c.precision = p

	return nil
}

func (c *Config) SetForceASCII(v bool)           { c.forceASCII = v }
func (c *Config) SetHTMLEscape(v bool)           { c.htmlEscape = v }
func (c *Config) SetDefaultHandler(h DefaultHandler) { c.defaultHandler = h }

// SetMaxDepth validates and assigns the recursion depth guard.
func (c *Config) SetMaxDepth(n int) error {
	if n < 1 {
		return fmt.Errorf("max depth must be positive, got %d", n)
	}

	c.maxDepth = n

	return nil
}

// SetCompression validates and assigns the output compression codec.
func (c *Config) SetCompression(t compress.Type) error {
	if _, err := compress.GetCodec(t); err != nil {
		return err
	}

	c.compression = t

	return nil
}

// Option configures a Config. It is a specialization of the generic
// functional-option plumbing in internal/options.
type Option = options.Option[*Config]
