package camera

import "github.com/miot-home/micam/internal/pkg/miot"

// Model is the device model this client supports.
const Model = "isa.camera.hlc7"

// from: https://miot-spec.org/miot-spec-v2/instance?type=urn:miot-spec-v2:device:camera:0000A01C:isa-hlc7:2
var mapping = miot.Mapping{
	Properties: map[string]miot.PropertySpec{
		// Camera Control
		"power":           {SIID: 2, PIID: 1},
		"image_rollover":  {SIID: 2, PIID: 2},
		"night_shot":      {SIID: 2, PIID: 3},
		"time_watermark":  {SIID: 2, PIID: 4},
		"recording_mode":  {SIID: 2, PIID: 7},
		// Indicator light
		"indicator_light": {SIID: 3, PIID: 1},
		// Memory Card Management
		"sdcard_status":      {SIID: 4, PIID: 1},
		"sdcard_total_space": {SIID: 4, PIID: 2},
		"sdcard_free_space":  {SIID: 4, PIID: 3},
		"sdcard_used_space":  {SIID: 4, PIID: 4},
		// Motion Detection
		"motion_detection_status":      {SIID: 5, PIID: 1},
		"motion_alarm_interval":        {SIID: 5, PIID: 2},
		"motion_detection_sensitivity": {SIID: 5, PIID: 3},
		"motion_detection_start_time":  {SIID: 5, PIID: 4},
		"motion_detection_end_time":    {SIID: 5, PIID: 5},
		// other functions
		"timezone":         {SIID: 6, PIID: 2},
		"rect":             {SIID: 6, PIID: 3},
		"custom_voice":     {SIID: 6, PIID: 4},
		"set_custom_voice": {SIID: 6, PIID: 5},
		"download_voice":   {SIID: 6, PIID: 6},
		"delete_voice":     {SIID: 6, PIID: 7},
		"switch_voice":     {SIID: 6, PIID: 8},
		"max_connect":      {SIID: 6, PIID: 9},
		// Camera Stream Management for Amazon Alexa
		"alexa_video_stream_status": {SIID: 8, PIID: 9},
	},
	Actions: map[string]miot.ActionSpec{
		// Memory Card Management
		"sdcard_format": {SIID: 4, AIID: 1},
		"sdcard_pop_up": {SIID: 4, AIID: 2},
		// other functions
		"restart_device": {SIID: 6, AIID: 1},
		"upload_recode":  {SIID: 6, AIID: 2},
		"speaker_voice":  {SIID: 6, AIID: 3},
		"upload_log":     {SIID: 6, AIID: 4},
		// P2P stream
		"p2p_stream_start": {SIID: 7, AIID: 1},
		"p2p_stream_stop":  {SIID: 7, AIID: 2},
		// Camera Stream Management for Amazon Alexa
		"alexa_video_rtsp_stream_start":         {SIID: 8, AIID: 1},
		"alexa_video_rtsp_stream_stop":          {SIID: 8, AIID: 2},
		"alexa_video_rtsp_stream_configuration": {SIID: 8, AIID: 3},
	},
}

// Mapping returns the capability address table for the supported model.
func Mapping() miot.Mapping {
	return mapping
}
