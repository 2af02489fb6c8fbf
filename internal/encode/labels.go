package encode

import (
	"fmt"
	"strconv"
	"time"

	"github.com/tabjson/tabjson/table"
)

// encodeLabels formats every element of arr as a plain (unescaped,
// unquoted) string, once, for reuse as every row/column key a table or
// vector orientation emits. The sink adds quoting, escaping, and the
// trailing colon uniformly when it actually consumes a cached label as
// an object key, so there is no special-casing here for punctuation that
// might already look quoted.
func encodeLabels(arr table.Array, cfg *Config) ([]string, error) {
	n := arr.Len()
	out := make([]string, n)

	for i := 0; i < n; i++ {
		s, err := labelString(arr.At(i), cfg)
		if err != nil {
			return nil, WithPath(err, fmt.Sprintf("labels[%d]", i))
		}

		out[i] = s
	}

	return out, nil
}

// labelString renders a single label value as plain text.
func labelString(v any, cfg *Config) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case int64:
		return fmt.Sprintf("%d", x), nil
	case int:
		return fmt.Sprintf("%d", x), nil
	case uint64:
		return fmt.Sprintf("%d", x), nil
	case float64:
		return strconv.FormatFloat(x, 'g', cfg.precision, 64), nil
	case bool:
		return fmt.Sprintf("%t", x), nil
	case time.Time:
		if isNaT(x) {
			return "NaT", nil
		}

		if cfg.dateFormat == DateISO {
			return x.UTC().Format(isoLayouts[cfg.dateUnit]), nil
		}

		epoch, err := epochValue(x, cfg.dateUnit)
		if err != nil {
			return "", err
		}

		return fmt.Sprintf("%d", epoch), nil
	case time.Duration:
		unit := time.Nanosecond
		switch cfg.dateUnit {
		case UnitSecond:
			unit = time.Second
		case UnitMillisecond:
			unit = time.Millisecond
		case UnitMicrosecond:
			unit = time.Microsecond
		}

		return fmt.Sprintf("%d", int64(x/unit)), nil
	case nil:
		return "null", nil
	default:
		return fmt.Sprintf("%v", x), nil
	}
}

// checkLabelShape validates that a pre-encoded label slice has exactly
// the length the paired data axis requires.
func checkLabelShape(labels []string, want int, axis string) error {
	if len(labels) != want {
		return errShape("%s label count %d does not match data axis size %d", axis, len(labels), want)
	}

	return nil
}
