package camera

import (
	"github.com/pkg/errors"
)

/*
 *   Legacy method commands. These functions predate the MiOT property
 *   model and go through the raw method-call primitive, mirroring the
 *   firmware's original command set.
 */

// motionRegionCells is the size of the per-zone sensitivity grid the
// firmware expects on set_motion_region.
const motionRegionCells = 32

// Rotate turns the camera one step in the given direction.
func (c *Camera) Rotate(direction Direction) error {
	if !direction.valid() {
		return errors.Errorf("unsupported direction: %d", direction)
	}

	_, err := c.transport.Send("set_motor", map[string]interface{}{
		"operation": int(direction),
	})
	return errors.Wrapf(err, "rotating %s", direction)
}

// Alarm sounds a loud alarm for 10 seconds.
func (c *Camera) Alarm() error {
	_, err := c.transport.Send("alarm_sound", []interface{}{})
	return errors.Wrap(err, "sounding alarm")
}

// SetMotionSensitivity applies one sensitivity level uniformly across the
// per-zone detection grid.
func (c *Camera) SetMotionSensitivity(level MotionSensitivity) error {
	if !level.valid() {
		return errors.Errorf("unsupported sensitivity: %d", level)
	}

	region := make([]int, motionRegionCells)
	for i := range region {
		region[i] = int(level)
	}

	_, err := c.transport.Send("set_motion_region", region)
	return errors.Wrapf(err, "setting motion sensitivity %s", level)
}

// HomeMonitoringConfig is the home monitoring schedule: a mode, a daily
// start/end time, a notification flag and an alarm interval in minutes.
type HomeMonitoringConfig struct {
	Mode        HomeMonitoringMode
	StartHour   int
	StartMinute int
	EndHour     int
	EndMinute   int
	Notify      int
	Interval    int
}

// DefaultHomeMonitoringConfig mirrors the firmware defaults: all-day
// monitoring between 10:00 and 17:00 with notifications every 5 minutes.
func DefaultHomeMonitoringConfig() HomeMonitoringConfig {
	return HomeMonitoringConfig{
		Mode:      MonitoringAllDay,
		StartHour: 10,
		EndHour:   17,
		Notify:    1,
		Interval:  5,
	}
}

// SetHomeMonitoringConfig forwards the schedule as the ordered argument
// list the setAlarmConfig method expects.
func (c *Camera) SetHomeMonitoringConfig(cfg HomeMonitoringConfig) error {
	if !cfg.Mode.valid() {
		return errors.Errorf("unsupported monitoring mode: %d", cfg.Mode)
	}

	_, err := c.transport.Send("setAlarmConfig", []interface{}{
		int(cfg.Mode),
		cfg.StartHour,
		cfg.StartMinute,
		cfg.EndHour,
		cfg.EndMinute,
		cfg.Notify,
		cfg.Interval,
	})
	return errors.Wrap(err, "setting home monitoring config")
}

// SetMotionRecord controls motion-triggered recording.
func (c *Camera) SetMotionRecord(mode MotionRecordMode) error {
	_, err := c.transport.Send("set_motion_record", []string{string(mode)})
	return errors.Wrap(err, "setting motion record mode")
}

// SetNightMode controls the infrared night mode.
func (c *Camera) SetNightMode(mode NightMode) error {
	_, err := c.transport.Send("set_night_mode", []int{int(mode)})
	return errors.Wrap(err, "setting night mode")
}

func onOffArg(on bool) []string {
	if on {
		return []string{"on"}
	}
	return []string{"off"}
}

// SetLight controls the status light.
func (c *Camera) SetLight(on bool) error {
	_, err := c.transport.Send("set_light", onOffArg(on))
	return errors.Wrap(err, "setting light")
}

// SetFullColor controls full-color night vision.
func (c *Camera) SetFullColor(on bool) error {
	_, err := c.transport.Send("set_full_color", onOffArg(on))
	return errors.Wrap(err, "setting full color")
}

// SetFlip flips the image 180 degrees.
func (c *Camera) SetFlip(on bool) error {
	_, err := c.transport.Send("set_flip", onOffArg(on))
	return errors.Wrap(err, "setting flip")
}

// SetImproveProgram controls the usage improvement program.
func (c *Camera) SetImproveProgram(on bool) error {
	_, err := c.transport.Send("set_improve_program", onOffArg(on))
	return errors.Wrap(err, "setting improve program")
}

// SetWatermark controls the timestamp watermark.
func (c *Camera) SetWatermark(on bool) error {
	_, err := c.transport.Send("set_watermark", onOffArg(on))
	return errors.Wrap(err, "setting watermark")
}

// SetWDR controls wide dynamic range.
func (c *Camera) SetWDR(on bool) error {
	_, err := c.transport.Send("set_wdr", onOffArg(on))
	return errors.Wrap(err, "setting wide dynamic range")
}
