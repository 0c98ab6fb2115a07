package camera

import (
	"net"

	"github.com/miot-home/micam/internal/pkg/miot"
	"github.com/pkg/errors"
)

// Resolver turns a share hostname into an IPv4 address. Swappable for
// tests; the default uses the system resolver.
type Resolver func(host string) (net.IP, error)

// Camera drives one isa.camera.hlc7 device over an established MiOT
// transport. Every operation is a single stateless round trip; the
// client holds no device state between calls.
type Camera struct {
	transport miot.Transport
	mapping   miot.Mapping
	resolve   Resolver
}

func New(transport miot.Transport) *Camera {
	return &Camera{
		transport: transport,
		mapping:   Mapping(),
		resolve:   resolveIPv4,
	}
}

// WithResolver returns a copy of the camera using the given hostname
// resolver for NAS share configuration.
func (c *Camera) WithResolver(r Resolver) *Camera {
	nc := *c
	nc.resolve = r
	return &nc
}

func resolveIPv4(host string) (net.IP, error) {
	addrs, err := net.LookupIP(host)
	if err != nil {
		return nil, errors.Wrapf(err, "resolving host %s", host)
	}

	for _, a := range addrs {
		if v4 := a.To4(); v4 != nil {
			return v4, nil
		}
	}

	return nil, errors.Errorf("no IPv4 address for host %s", host)
}

// Status reads every mapped property in one batch. Properties the device
// fails to serve are absent from the snapshot rather than failing it.
func (c *Camera) Status() (*Status, error) {
	values, err := c.transport.GetProperties(c.mapping.PropertyRequests())
	if err != nil {
		return nil, errors.Wrap(err, "retrieving status")
	}

	data := make(map[string]interface{}, len(values))
	for _, v := range values {
		if v.Code == 0 {
			data[v.DID] = v.Value
		}
	}

	return NewStatus(data), nil
}

func (c *Camera) setProperty(name string, value interface{}) error {
	spec, err := c.mapping.Property(name)
	if err != nil {
		return err
	}

	req := miot.PropertyRequest{DID: name, SIID: spec.SIID, PIID: spec.PIID}
	return c.transport.SetProperty(req, value)
}

func (c *Camera) callAction(name string, in ...interface{}) (*miot.ActionResult, error) {
	spec, err := c.mapping.Action(name)
	if err != nil {
		return nil, err
	}

	req := miot.ActionRequest{DID: name, SIID: spec.SIID, AIID: spec.AIID, In: in}
	return c.transport.CallAction(req)
}

// PowerOn switches the camera on.
func (c *Camera) PowerOn() error {
	return c.setProperty("power", true)
}

// PowerOff switches the camera off.
func (c *Camera) PowerOff() error {
	return c.setProperty("power", false)
}

// Restart reboots the device.
func (c *Camera) Restart() error {
	_, err := c.callAction("restart_device")
	return err
}

// StartP2PStream starts the peer-to-peer video stream.
func (c *Camera) StartP2PStream() error {
	_, err := c.callAction("p2p_stream_start")
	return err
}

// StopP2PStream stops the peer-to-peer video stream.
func (c *Camera) StopP2PStream() error {
	_, err := c.callAction("p2p_stream_stop")
	return err
}

// StartAlexaRTSPStream starts the RTSP stream used by Amazon Alexa.
func (c *Camera) StartAlexaRTSPStream() error {
	_, err := c.callAction("alexa_video_rtsp_stream_start", true)
	return err
}

// StopAlexaRTSPStream stops the RTSP stream used by Amazon Alexa.
func (c *Camera) StopAlexaRTSPStream() error {
	_, err := c.callAction("alexa_video_rtsp_stream_stop")
	return err
}

// AlexaRTSPStreamConfiguration fetches the Alexa RTSP stream settings.
func (c *Camera) AlexaRTSPStreamConfiguration() (*miot.ActionResult, error) {
	return c.callAction("alexa_video_rtsp_stream_configuration")
}
