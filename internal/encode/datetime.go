package encode

import (
	"math"
	"time"

	"github.com/tabjson/tabjson/internal/writer"
)

// isoLayouts gives the time.Format layout for each DateUnit's fractional
// precision. time.Time.Format, not manual digit writing, is the idiomatic
// Go way to get a fixed-width timestamp string.
var isoLayouts = map[dateUnit]string{
	UnitSecond:      "2006-01-02T15:04:05Z07:00",
	UnitMillisecond: "2006-01-02T15:04:05.000Z07:00",
	UnitMicrosecond: "2006-01-02T15:04:05.000000Z07:00",
	UnitNanosecond:  "2006-01-02T15:04:05.000000000Z07:00",
}

// isNaT reports whether t is the encoder's "not a time" sentinel: the
// zero time.Time, matching how a missing/NaT timestamp enters Go code
// (there is no separate NaT type, unlike pandas' Timestamp).
func isNaT(t time.Time) bool {
	return t.IsZero()
}

// writeTime emits t per cfg's date format and unit, or null for the NaT
// sentinel.
func writeTime(sink *writer.Sink, cfg *Config, t time.Time) error {
	if isNaT(t) {
		sink.WriteNull()
		return nil
	}

	if cfg.dateFormat == DateISO {
		sink.WriteString(t.UTC().Format(isoLayouts[cfg.dateUnit]))
		return nil
	}

	epoch, err := epochValue(t, cfg.dateUnit)
	if err != nil {
		return err
	}

	sink.WriteInt64(epoch)

	return nil
}

// epochValue truncates t toward zero to unit, as a count since the Unix
// epoch, failing with KindOverflow if the result does not fit an int64.
func epochValue(t time.Time, unit dateUnit) (int64, error) {
	sec := t.Unix()
	nsec := int64(t.Nanosecond())

	var scale int64

	switch unit {
	case UnitSecond:
		if sec < 0 && nsec != 0 {
			sec++
		}

		return sec, nil
	case UnitMillisecond:
		scale = 1e3
	case UnitMicrosecond:
		scale = 1e6
	case UnitNanosecond:
		scale = 1e9
	default:
		return 0, errOption("invalid date unit: %d", unit)
	}

	if sec > math.MaxInt64/scale || sec < math.MinInt64/scale {
		return 0, errOverflow("date value overflows int64 at the configured unit")
	}

	div := 1e9 / scale
	v := sec*scale + nsec/div

	if sec < 0 && nsec%div != 0 {
		v++
	}

	return v, nil
}

// writeDuration rescales a time.Duration (already nanoseconds) to unit
// and emits it as an integer.
func writeDuration(sink *writer.Sink, d time.Duration, unit dateUnit) error {
	ns := int64(d)

	var v int64

	switch unit {
	case UnitSecond:
		v = ns / 1e9
	case UnitMillisecond:
		v = ns / 1e6
	case UnitMicrosecond:
		v = ns / 1e3
	case UnitNanosecond:
		v = ns
	default:
		return errOption("invalid date unit: %d", unit)
	}

	sink.WriteInt64(v)

	return nil
}
