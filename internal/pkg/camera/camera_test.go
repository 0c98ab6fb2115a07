package camera

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miot-home/micam/internal/pkg/miot"
)

// fakeTransport records every operation and plays back canned results
type fakeTransport struct {
	propertyValues []miot.PropertyValue

	getRequests []miot.PropertyRequest
	setRequests []struct {
		req   miot.PropertyRequest
		value interface{}
	}
	actionRequests []miot.ActionRequest
	sentMethods    []string
	sentParams     []interface{}

	err error
}

func (f *fakeTransport) GetProperties(reqs []miot.PropertyRequest) ([]miot.PropertyValue, error) {
	f.getRequests = append(f.getRequests, reqs...)
	return f.propertyValues, f.err
}

func (f *fakeTransport) SetProperty(req miot.PropertyRequest, value interface{}) error {
	f.setRequests = append(f.setRequests, struct {
		req   miot.PropertyRequest
		value interface{}
	}{req, value})
	return f.err
}

func (f *fakeTransport) CallAction(req miot.ActionRequest) (*miot.ActionResult, error) {
	f.actionRequests = append(f.actionRequests, req)
	if f.err != nil {
		return nil, f.err
	}
	return &miot.ActionResult{}, nil
}

func (f *fakeTransport) Send(method string, params interface{}) (json.RawMessage, error) {
	f.sentMethods = append(f.sentMethods, method)
	f.sentParams = append(f.sentParams, params)
	return json.RawMessage(`["ok"]`), f.err
}

func TestStatusPartialReadDegradation(t *testing.T) {
	ft := &fakeTransport{
		propertyValues: []miot.PropertyValue{
			{DID: "power", Code: 0, Value: true},
			{DID: "image_rollover", Code: 0, Value: float64(180)},
			{DID: "night_shot", Code: -4004},
		},
	}
	cam := New(ft)

	status, err := cam.Status()
	require.NoError(t, err)

	power, ok := status.Power()
	assert.True(t, ok)
	assert.Equal(t, "On", power)

	rollover, ok := status.ImageRollover()
	assert.True(t, ok)
	assert.Equal(t, 180, rollover)

	_, ok = status.NightShot()
	assert.False(t, ok, "failed read must be absent, not zero")
}

func TestStatusRequestsEveryMappedProperty(t *testing.T) {
	ft := &fakeTransport{}
	cam := New(ft)

	_, err := cam.Status()
	require.NoError(t, err)

	assert.Equal(t, len(Mapping().Properties), len(ft.getRequests))
	for _, req := range ft.getRequests {
		spec, err := Mapping().Property(req.DID)
		require.NoError(t, err)
		assert.Equal(t, spec.SIID, req.SIID)
		assert.Equal(t, spec.PIID, req.PIID)
	}
}

func TestPowerAccessorSemantics(t *testing.T) {
	tests := []struct {
		name  string
		raw   interface{}
		want  string
		found bool
	}{
		{"boolean true", true, "On", true},
		{"boolean false", false, "Off", true},
		{"numeric one", float64(1), "On", true},
		{"numeric zero", float64(0), "Off", true},
		{"failed read", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := map[string]interface{}{}
			if tt.raw != nil {
				data["power"] = tt.raw
			}

			got, ok := NewStatus(data).Power()
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPowerOnOffWriteLiterals(t *testing.T) {
	ft := &fakeTransport{}
	cam := New(ft)

	require.NoError(t, cam.PowerOn())
	require.NoError(t, cam.PowerOff())

	require.Len(t, ft.setRequests, 2)
	assert.Equal(t, "power", ft.setRequests[0].req.DID)
	assert.Equal(t, 2, ft.setRequests[0].req.SIID)
	assert.Equal(t, 1, ft.setRequests[0].req.PIID)
	assert.Equal(t, true, ft.setRequests[0].value)
	assert.Equal(t, false, ft.setRequests[1].value)
}

func TestRestartInvokesMappedAction(t *testing.T) {
	ft := &fakeTransport{}
	cam := New(ft)

	require.NoError(t, cam.Restart())

	require.Len(t, ft.actionRequests, 1)
	assert.Equal(t, "restart_device", ft.actionRequests[0].DID)
	assert.Equal(t, 6, ft.actionRequests[0].SIID)
	assert.Equal(t, 1, ft.actionRequests[0].AIID)
}

func TestRotateSendsDirectionCode(t *testing.T) {
	tests := []struct {
		direction Direction
		code      int
	}{
		{DirectionLeft, 1},
		{DirectionRight, 2},
		{DirectionUp, 3},
		{DirectionDown, 4},
	}

	for _, tt := range tests {
		t.Run(tt.direction.String(), func(t *testing.T) {
			ft := &fakeTransport{}
			cam := New(ft)

			require.NoError(t, cam.Rotate(tt.direction))

			require.Len(t, ft.sentMethods, 1)
			assert.Equal(t, "set_motor", ft.sentMethods[0])

			params, ok := ft.sentParams[0].(map[string]interface{})
			require.True(t, ok)
			assert.Len(t, params, 1, "payload must carry the direction code and nothing else")
			assert.Equal(t, tt.code, params["operation"])
		})
	}
}

func TestRotateRejectsUnknownDirection(t *testing.T) {
	ft := &fakeTransport{}
	cam := New(ft)

	err := cam.Rotate(Direction(9))
	assert.Error(t, err)
	assert.Empty(t, ft.sentMethods, "invalid direction must not reach the device")
}

func TestSetMotionSensitivityGrid(t *testing.T) {
	tests := []struct {
		level MotionSensitivity
		code  int
	}{
		{MotionSensitivityHigh, 3},
		{MotionSensitivityLow, 1},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			ft := &fakeTransport{}
			cam := New(ft)

			require.NoError(t, cam.SetMotionSensitivity(tt.level))

			require.Len(t, ft.sentMethods, 1)
			assert.Equal(t, "set_motion_region", ft.sentMethods[0])

			region, ok := ft.sentParams[0].([]int)
			require.True(t, ok)
			require.Len(t, region, 32)
			for _, cell := range region {
				assert.Equal(t, tt.code, cell)
			}
		})
	}
}

func TestHomeMonitoringConfigArgumentOrder(t *testing.T) {
	ft := &fakeTransport{}
	cam := New(ft)

	require.NoError(t, cam.SetHomeMonitoringConfig(DefaultHomeMonitoringConfig()))

	require.Len(t, ft.sentMethods, 1)
	assert.Equal(t, "setAlarmConfig", ft.sentMethods[0])
	assert.Equal(t, []interface{}{1, 10, 0, 17, 0, 1, 5}, ft.sentParams[0])
}

func TestMappingCoversCommandSurface(t *testing.T) {
	m := Mapping()

	// Every property name the command surface or status decoder touches
	properties := []string{
		"power", "image_rollover", "night_shot", "time_watermark",
		"recording_mode", "indicator_light", "sdcard_status",
		"sdcard_total_space", "sdcard_free_space", "sdcard_used_space",
		"motion_detection_status", "motion_alarm_interval",
		"motion_detection_sensitivity", "motion_detection_start_time",
		"motion_detection_end_time", "timezone", "max_connect",
		"alexa_video_stream_status",
	}
	for _, name := range properties {
		_, err := m.Property(name)
		assert.NoError(t, err, "property %s", name)
	}

	// Every action name the command surface invokes
	actions := []string{
		"restart_device", "p2p_stream_start", "p2p_stream_stop",
		"alexa_video_rtsp_stream_start", "alexa_video_rtsp_stream_stop",
		"alexa_video_rtsp_stream_configuration",
	}
	for _, name := range actions {
		_, err := m.Action(name)
		assert.NoError(t, err, "action %s", name)
	}
}

func TestStatusStringSkipsAbsentFields(t *testing.T) {
	status := NewStatus(map[string]interface{}{
		"power":          true,
		"image_rollover": float64(180),
	})

	out := status.String()
	assert.Contains(t, out, "Power: On")
	assert.Contains(t, out, "Image Rollover: 180")
	assert.NotContains(t, out, "Night Shot")
}
