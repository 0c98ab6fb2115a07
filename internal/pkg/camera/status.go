package camera

import (
	"fmt"
	"strings"
)

// Status is one snapshot of the camera's readable properties. Fields
// whose read failed are absent: every accessor reports presence through
// its second return value, so "false" and "not retrieved" stay distinct.
type Status struct {
	data map[string]interface{}
}

// NewStatus builds a snapshot from raw per-capability values. The map is
// not copied; callers must not mutate it afterwards.
func NewStatus(data map[string]interface{}) *Status {
	return &Status{data: data}
}

func (s *Status) raw(name string) (interface{}, bool) {
	v, ok := s.data[name]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// truthy treats JSON booleans and non-zero numbers as on. The wire
// delivers numbers as float64.
func truthy(v interface{}) bool {
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t != 0
	case int:
		return t != 0
	}
	return false
}

func (s *Status) onOff(name string) (string, bool) {
	v, ok := s.raw(name)
	if !ok {
		return "", false
	}
	if truthy(v) {
		return "On", true
	}
	return "Off", true
}

func (s *Status) intValue(name string) (int, bool) {
	v, ok := s.raw(name)
	if !ok {
		return 0, false
	}
	switch t := v.(type) {
	case float64:
		return int(t), true
	case int:
		return t, true
	}
	return 0, false
}

func (s *Status) stringValue(name string) (string, bool) {
	v, ok := s.raw(name)
	if !ok {
		return "", false
	}
	t, ok := v.(string)
	return t, ok
}

// Power reports camera power as an On/Off label.
func (s *Status) Power() (string, bool) {
	return s.onOff("power")
}

// ImageRollover reports the image rollover in arc degrees, 0-360.
func (s *Status) ImageRollover() (int, bool) {
	return s.intValue("image_rollover")
}

// NightShot reports the night shot setting.
func (s *Status) NightShot() (int, bool) {
	return s.intValue("night_shot")
}

func (s *Status) TimeWatermark() (string, bool) {
	return s.onOff("time_watermark")
}

func (s *Status) RecordingMode() (int, bool) {
	return s.intValue("recording_mode")
}

func (s *Status) IndicatorLight() (string, bool) {
	return s.onOff("indicator_light")
}

func (s *Status) SDCardStatus() (int, bool) {
	return s.intValue("sdcard_status")
}

// SDCardTotalSpace reports total card capacity in megabytes.
func (s *Status) SDCardTotalSpace() (int, bool) {
	return s.intValue("sdcard_total_space")
}

func (s *Status) SDCardFreeSpace() (int, bool) {
	return s.intValue("sdcard_free_space")
}

func (s *Status) SDCardUsedSpace() (int, bool) {
	return s.intValue("sdcard_used_space")
}

func (s *Status) MotionDetection() (string, bool) {
	return s.onOff("motion_detection_status")
}

func (s *Status) MotionAlarmInterval() (int, bool) {
	return s.intValue("motion_alarm_interval")
}

func (s *Status) MotionDetectionSensitivity() (int, bool) {
	return s.intValue("motion_detection_sensitivity")
}

func (s *Status) MotionDetectionStartTime() (string, bool) {
	return s.stringValue("motion_detection_start_time")
}

func (s *Status) MotionDetectionEndTime() (string, bool) {
	return s.stringValue("motion_detection_end_time")
}

func (s *Status) Timezone() (string, bool) {
	return s.stringValue("timezone")
}

func (s *Status) MaxConnect() (int, bool) {
	return s.intValue("max_connect")
}

func (s *Status) AlexaVideoStreamStatus() (int, bool) {
	return s.intValue("alexa_video_stream_status")
}

// String renders the snapshot for human consumption, omitting fields
// whose read failed.
func (s *Status) String() string {
	var b strings.Builder

	writeStr := func(label, value string, ok bool) {
		if ok {
			fmt.Fprintf(&b, "%s: %s\n", label, value)
		}
	}
	writeInt := func(label string, value int, ok bool) {
		if ok {
			fmt.Fprintf(&b, "%s: %d\n", label, value)
		}
	}

	v, ok := s.Power()
	writeStr("Power", v, ok)
	i, ok := s.ImageRollover()
	writeInt("Image Rollover", i, ok)
	i, ok = s.NightShot()
	writeInt("Night Shot", i, ok)
	v, ok = s.TimeWatermark()
	writeStr("Time Watermark", v, ok)
	i, ok = s.RecordingMode()
	writeInt("Recording Mode", i, ok)
	v, ok = s.IndicatorLight()
	writeStr("Indicator Light", v, ok)
	i, ok = s.SDCardStatus()
	writeInt("SD Card Status", i, ok)
	i, ok = s.SDCardTotalSpace()
	writeInt("SD Card Total Space", i, ok)
	i, ok = s.SDCardFreeSpace()
	writeInt("SD Card Free Space", i, ok)
	i, ok = s.SDCardUsedSpace()
	writeInt("SD Card Used Space", i, ok)
	v, ok = s.MotionDetection()
	writeStr("Motion Detection", v, ok)
	i, ok = s.MotionAlarmInterval()
	writeInt("Motion Alarm Interval", i, ok)
	i, ok = s.MotionDetectionSensitivity()
	writeInt("Motion Detection Sensitivity", i, ok)
	v, ok = s.MotionDetectionStartTime()
	writeStr("Motion Detection Start Time", v, ok)
	v, ok = s.MotionDetectionEndTime()
	writeStr("Motion Detection End Time", v, ok)
	v, ok = s.Timezone()
	writeStr("Timezone", v, ok)
	i, ok = s.MaxConnect()
	writeInt("Max Connections", i, ok)
	i, ok = s.AlexaVideoStreamStatus()
	writeInt("Alexa Video Stream Status", i, ok)

	return b.String()
}
