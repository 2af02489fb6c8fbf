package tabjson

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWithDateFormat_ISO(t *testing.T) {
	out, err := Marshal(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		WithDateFormat(DateISO), WithDateUnit(UnitSecond))
	require.NoError(t, err)
	require.Equal(t, `"2024-01-02T03:04:05Z"`, string(out))
}

func TestWithForceASCII(t *testing.T) {
	out, err := Marshal("café", WithForceASCII(true))
	require.NoError(t, err)
	require.Equal(t, "\"caf\\u00e9\"", string(out))
}

func TestWithHTMLEscape(t *testing.T) {
	out, err := Marshal("<b>", WithHTMLEscape(true))
	require.NoError(t, err)
	require.Equal(t, "\"\\u003cb\\u003e\"", string(out))
}

func TestWithMaxDepth(t *testing.T) {
	_, err := Marshal([]any{[]any{[]any{1}}}, WithMaxDepth(1))
	require.Error(t, err)
}

func TestWithCompression_Zstd(t *testing.T) {
	out, err := Marshal(map[string]int{"a": 1}, WithCompression(CompressZstd))
	require.NoError(t, err)
	require.NotEmpty(t, out)
}
