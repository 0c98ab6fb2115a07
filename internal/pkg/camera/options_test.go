package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirection(t *testing.T) {
	for label, want := range map[string]Direction{
		"left":  DirectionLeft,
		"right": DirectionRight,
		"up":    DirectionUp,
		"DOWN":  DirectionDown,
	} {
		got, err := ParseDirection(label)
		require.NoError(t, err, label)
		assert.Equal(t, want, got)
	}

	_, err := ParseDirection("sideways")
	assert.Error(t, err)
}

func TestParseMotionSensitivity(t *testing.T) {
	high, err := ParseMotionSensitivity("high")
	require.NoError(t, err)
	assert.Equal(t, MotionSensitivityHigh, high)
	assert.Equal(t, 3, int(high))

	low, err := ParseMotionSensitivity("low")
	require.NoError(t, err)
	assert.Equal(t, MotionSensitivityLow, low)
	assert.Equal(t, 1, int(low))

	_, err = ParseMotionSensitivity("medium")
	assert.Error(t, err)
}

func TestNASOptionLiterals(t *testing.T) {
	assert.Equal(t, 2, int(NASOff))
	assert.Equal(t, 3, int(NASOn))

	assert.Equal(t, 300, int(SyncRealtime))
	assert.Equal(t, 3600, int(SyncHourly))
	assert.Equal(t, 86400, int(SyncDaily))

	assert.Equal(t, 604800, int(RetentionWeek))
	assert.Equal(t, 2592000, int(RetentionMonth))
	assert.Equal(t, 7776000, int(RetentionQuarter))
	assert.Equal(t, 15552000, int(RetentionHalfYear))
	assert.Equal(t, 31104000, int(RetentionYear))
}

func TestParseHomeMonitoringMode(t *testing.T) {
	mode, err := ParseHomeMonitoringMode("all-day")
	require.NoError(t, err)
	assert.Equal(t, MonitoringAllDay, mode)

	mode, err = ParseHomeMonitoringMode("custom")
	require.NoError(t, err)
	assert.Equal(t, MonitoringCustom, mode)

	_, err = ParseHomeMonitoringMode("weekends")
	assert.Error(t, err)
}

func TestParseNightMode(t *testing.T) {
	for label, want := range map[string]NightMode{
		"auto": NightModeAuto,
		"off":  NightModeOff,
		"on":   NightModeOn,
	} {
		got, err := ParseNightMode(label)
		require.NoError(t, err, label)
		assert.Equal(t, want, got)
	}

	_, err := ParseNightMode("dusk")
	assert.Error(t, err)
}
