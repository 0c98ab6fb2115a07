package camera

import (
	"strings"

	"github.com/pkg/errors"
)

/*
 *   Closed option sets for the command surface. Each literal is the value
 *   the device protocol expects for that label.
 */

// Direction is a camera rotation direction.
type Direction int

const (
	DirectionLeft  Direction = 1
	DirectionRight Direction = 2
	DirectionUp    Direction = 3
	DirectionDown  Direction = 4
)

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	}
	return "unknown"
}

func (d Direction) valid() bool {
	return d >= DirectionLeft && d <= DirectionDown
}

func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "left":
		return DirectionLeft, nil
	case "right":
		return DirectionRight, nil
	case "up":
		return DirectionUp, nil
	case "down":
		return DirectionDown, nil
	}
	return 0, errors.Errorf("unsupported direction: %q (want left, right, up or down)", s)
}

// MotionSensitivity is a per-region motion detection sensitivity level.
type MotionSensitivity int

const (
	MotionSensitivityLow  MotionSensitivity = 1
	MotionSensitivityHigh MotionSensitivity = 3
)

func (m MotionSensitivity) String() string {
	switch m {
	case MotionSensitivityLow:
		return "low"
	case MotionSensitivityHigh:
		return "high"
	}
	return "unknown"
}

func (m MotionSensitivity) valid() bool {
	return m == MotionSensitivityLow || m == MotionSensitivityHigh
}

func ParseMotionSensitivity(s string) (MotionSensitivity, error) {
	switch strings.ToLower(s) {
	case "low":
		return MotionSensitivityLow, nil
	case "high":
		return MotionSensitivityHigh, nil
	}
	return 0, errors.Errorf("unsupported sensitivity: %q (want high or low)", s)
}

// HomeMonitoringMode selects the home monitoring schedule mode.
type HomeMonitoringMode int

const (
	MonitoringOff    HomeMonitoringMode = 0
	MonitoringAllDay HomeMonitoringMode = 1
	MonitoringCustom HomeMonitoringMode = 2
)

func (m HomeMonitoringMode) String() string {
	switch m {
	case MonitoringOff:
		return "off"
	case MonitoringAllDay:
		return "all-day"
	case MonitoringCustom:
		return "custom"
	}
	return "unknown"
}

func (m HomeMonitoringMode) valid() bool {
	return m >= MonitoringOff && m <= MonitoringCustom
}

func ParseHomeMonitoringMode(s string) (HomeMonitoringMode, error) {
	switch strings.ToLower(s) {
	case "off":
		return MonitoringOff, nil
	case "all-day", "allday":
		return MonitoringAllDay, nil
	case "custom":
		return MonitoringCustom, nil
	}
	return 0, errors.Errorf("unsupported monitoring mode: %q (want off, all-day or custom)", s)
}

// NASState is the remote-storage link state.
type NASState int

const (
	NASOff NASState = 2
	NASOn  NASState = 3
)

func (s NASState) String() string {
	switch s {
	case NASOff:
		return "off"
	case NASOn:
		return "on"
	}
	return "unknown"
}

func (s NASState) valid() bool {
	return s == NASOff || s == NASOn
}

func ParseNASState(s string) (NASState, error) {
	switch strings.ToLower(s) {
	case "off":
		return NASOff, nil
	case "on":
		return NASOn, nil
	}
	return 0, errors.Errorf("unsupported NAS state: %q (want on or off)", s)
}

// NASSyncInterval is the remote-storage sync interval in seconds.
type NASSyncInterval int

const (
	SyncRealtime NASSyncInterval = 300
	SyncHourly   NASSyncInterval = 3600
	SyncDaily    NASSyncInterval = 86400
)

func (i NASSyncInterval) String() string {
	switch i {
	case SyncRealtime:
		return "realtime"
	case SyncHourly:
		return "hour"
	case SyncDaily:
		return "day"
	}
	return "unknown"
}

func (i NASSyncInterval) valid() bool {
	return i == SyncRealtime || i == SyncHourly || i == SyncDaily
}

func ParseNASSyncInterval(s string) (NASSyncInterval, error) {
	switch strings.ToLower(s) {
	case "realtime":
		return SyncRealtime, nil
	case "hour", "hourly":
		return SyncHourly, nil
	case "day", "daily":
		return SyncDaily, nil
	}
	return 0, errors.Errorf("unsupported sync interval: %q (want realtime, hour or day)", s)
}

// NASRetention is the remote-storage video retention duration in seconds.
type NASRetention int

const (
	RetentionWeek     NASRetention = 604800
	RetentionMonth    NASRetention = 2592000
	RetentionQuarter  NASRetention = 7776000
	RetentionHalfYear NASRetention = 15552000
	RetentionYear     NASRetention = 31104000
)

func (r NASRetention) String() string {
	switch r {
	case RetentionWeek:
		return "week"
	case RetentionMonth:
		return "month"
	case RetentionQuarter:
		return "quarter"
	case RetentionHalfYear:
		return "half-year"
	case RetentionYear:
		return "year"
	}
	return "unknown"
}

func (r NASRetention) valid() bool {
	switch r {
	case RetentionWeek, RetentionMonth, RetentionQuarter, RetentionHalfYear, RetentionYear:
		return true
	}
	return false
}

func ParseNASRetention(s string) (NASRetention, error) {
	switch strings.ToLower(s) {
	case "week":
		return RetentionWeek, nil
	case "month":
		return RetentionMonth, nil
	case "quarter":
		return RetentionQuarter, nil
	case "half-year", "halfyear":
		return RetentionHalfYear, nil
	case "year":
		return RetentionYear, nil
	}
	return 0, errors.Errorf("unsupported retention time: %q (want week, month, quarter, half-year or year)", s)
}

// NightMode selects the infrared night mode behaviour.
type NightMode int

const (
	NightModeAuto NightMode = 0
	NightModeOff  NightMode = 1
	NightModeOn   NightMode = 2
)

func ParseNightMode(s string) (NightMode, error) {
	switch strings.ToLower(s) {
	case "auto":
		return NightModeAuto, nil
	case "off":
		return NightModeOff, nil
	case "on":
		return NightModeOn, nil
	}
	return 0, errors.Errorf("unsupported night mode: %q (want auto, on or off)", s)
}

// MotionRecordMode selects how motion-triggered recording behaves: record
// on motion, record always, or stop recording.
type MotionRecordMode string

const (
	MotionRecordOn   MotionRecordMode = "on"
	MotionRecordOff  MotionRecordMode = "off"
	MotionRecordStop MotionRecordMode = "stop"
)

func ParseMotionRecordMode(s string) (MotionRecordMode, error) {
	switch strings.ToLower(s) {
	case "on":
		return MotionRecordOn, nil
	case "off":
		return MotionRecordOff, nil
	case "stop":
		return MotionRecordStop, nil
	}
	return "", errors.Errorf("unsupported motion record mode: %q (want on, off or stop)", s)
}
