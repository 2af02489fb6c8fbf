package encode

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIsNaT(t *testing.T) {
	require.True(t, isNaT(time.Time{}))
	require.False(t, isNaT(time.Unix(0, 0)))
}

func TestEpochValue(t *testing.T) {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 6000, time.UTC)

	sec, err := epochValue(ts, UnitSecond)
	require.NoError(t, err)
	require.Equal(t, ts.Unix(), sec)

	ms, err := epochValue(ts, UnitMillisecond)
	require.NoError(t, err)
	require.Equal(t, ts.Unix()*1e3+6000/1000000, ms)

	ns, err := epochValue(ts, UnitNanosecond)
	require.NoError(t, err)
	require.Equal(t, ts.Unix()*1e9+6000, ns)
}

func TestEpochValue_Overflow(t *testing.T) {
	far := time.Date(300000, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := epochValue(far, UnitNanosecond)
	require.Error(t, err)

	encErr, ok := err.(*Error)
	require.True(t, ok)
	require.Equal(t, KindOverflow, encErr.Kind)
}

func TestWriteDuration(t *testing.T) {
	buf := newTestBuffer()
	sink := newTestSink(buf)

	require.NoError(t, writeDuration(sink, 1500*time.Millisecond, UnitSecond))
	require.Equal(t, "1", string(buf.Bytes()))
}
