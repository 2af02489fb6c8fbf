package encode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	require.Equal(t, OrientColumns, cfg.Orientation())
	require.Equal(t, UnitMillisecond, cfg.DateUnit())
	require.Equal(t, DateEpoch, cfg.DateFormat())
	require.Equal(t, 10, cfg.Precision())
	require.Equal(t, DefaultMaxDepth, cfg.MaxDepth())
}

func TestConfig_SetOrientation(t *testing.T) {
	cfg := NewConfig()

	require.NoError(t, cfg.SetOrientation(OrientRecords))
	require.Equal(t, OrientRecords, cfg.Orientation())

	require.Error(t, cfg.SetOrientation(orientation(99)))
}

func TestConfig_SetPrecision(t *testing.T) {
	cfg := NewConfig()

	require.NoError(t, cfg.SetPrecision(17))
	require.NoError(t, cfg.SetPrecision(0))
	require.Error(t, cfg.SetPrecision(-1))
	require.Error(t, cfg.SetPrecision(18))
}

func TestConfig_SetMaxDepth(t *testing.T) {
	cfg := NewConfig()

	require.NoError(t, cfg.SetMaxDepth(5))
	require.Equal(t, 5, cfg.MaxDepth())
	require.Error(t, cfg.SetMaxDepth(0))
}

func TestConfig_SetDateUnitAndFormat(t *testing.T) {
	cfg := NewConfig()

	require.NoError(t, cfg.SetDateUnit(UnitNanosecond))
	require.Equal(t, UnitNanosecond, cfg.DateUnit())
	require.Error(t, cfg.SetDateUnit(dateUnit(99)))

	require.NoError(t, cfg.SetDateFormat(DateISO))
	require.Equal(t, DateISO, cfg.DateFormat())
	require.Error(t, cfg.SetDateFormat(dateFormat(99)))
}
