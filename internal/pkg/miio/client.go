package miio

import (
	"encoding/json"
	"net"
	"sync/atomic"
	"time"

	"github.com/miot-home/micam/internal/pkg/logging"
	"github.com/pkg/errors"
)

const (
	miioPort         = 54321
	maxDatagram      = 8192
	handshakeRetries = 3
	defaultTimeout   = 5 * time.Second
)

// Client is a token-authenticated miIO session with one device. It is
// not safe for concurrent use; callers own any serialisation.
type Client struct {
	creds *credentials
	conn  *net.UDPConn

	timeout   time.Duration
	requestID uint32

	deviceID  uint32
	stamp     uint32
	stampTime time.Time
	ready     bool
}

// Dial opens a UDP association with the device. No packets are exchanged
// until Handshake.
func Dial(host, hexToken string) (*Client, error) {
	creds, err := newCredentials(hexToken)
	if err != nil {
		return nil, err
	}

	ip := net.ParseIP(host)
	if ip == nil {
		ips, err := net.LookupIP(host)
		if err != nil {
			return nil, errors.Wrapf(err, "resolving device host %s", host)
		}
		ip = ips[0]
	}

	conn, err := net.DialUDP("udp", nil, &net.UDPAddr{IP: ip, Port: miioPort})
	if err != nil {
		return nil, errors.Wrap(err, "connecting to device")
	}

	return &Client{
		creds:   creds,
		conn:    conn,
		timeout: defaultTimeout,
	}, nil
}

// WithTimeout returns a copy of the client using the given per-request
// timeout. The underlying association is shared.
func (c *Client) WithTimeout(d time.Duration) *Client {
	nc := *c
	if d > 0 {
		nc.timeout = d
	}
	return &nc
}

// Handshake sends hello datagrams until the device answers, recording its
// device ID and clock stamp for subsequent requests.
func (c *Client) Handshake() error {
	hello := encodeHello()

	var pkt *packet
	for attempt := 1; attempt <= handshakeRetries; attempt++ {
		if _, err := c.conn.Write(hello); err != nil {
			return errors.Wrap(err, "sending hello")
		}

		var err error
		pkt, err = c.read()
		if err == nil {
			break
		}

		logging.Logger().WithError(err).Debugf("handshake attempt %d/%d failed", attempt, handshakeRetries)
	}

	if pkt == nil {
		return errors.New("device did not answer handshake")
	}

	c.deviceID = pkt.deviceID
	c.stamp = pkt.stamp
	c.stampTime = time.Now()
	c.ready = true

	logging.Logger().Debugf("handshake complete, device id %08x", c.deviceID)
	return nil
}

type request struct {
	ID     uint32      `json:"id"`
	Method string      `json:"method"`
	Params interface{} `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type response struct {
	ID     uint32          `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

// Call sends one method request and waits for the matching reply,
// returning the raw result payload.
func (c *Client) Call(method string, params interface{}) (json.RawMessage, error) {
	if !c.ready {
		return nil, errors.New("session not established, handshake first")
	}

	req := request{
		ID:     atomic.AddUint32(&c.requestID, 1),
		Method: method,
		Params: params,
	}
	payload, err := json.Marshal(&req)
	if err != nil {
		return nil, errors.Wrap(err, "marshaling request")
	}

	// the device expects its own clock, advanced by our elapsed time
	stamp := c.stamp + uint32(time.Since(c.stampTime)/time.Second)
	datagram := encodePacket(c.creds, c.deviceID, stamp, payload)

	if _, err := c.conn.Write(datagram); err != nil {
		return nil, errors.Wrapf(err, "sending %s request", method)
	}

	pkt, err := c.read()
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s reply", method)
	}

	var resp response
	if err := json.Unmarshal(pkt.payload, &resp); err != nil {
		return nil, errors.Wrap(err, "parsing device reply")
	}

	if resp.Error != nil {
		return nil, errors.Errorf("device error %d: %s", resp.Error.Code, resp.Error.Message)
	}
	if resp.ID != req.ID {
		return nil, errors.Errorf("reply id %d does not match request id %d", resp.ID, req.ID)
	}

	return resp.Result, nil
}

func (c *Client) read() (*packet, error) {
	if err := c.conn.SetReadDeadline(time.Now().Add(c.timeout)); err != nil {
		return nil, errors.Wrap(err, "setting read deadline")
	}

	buf := make([]byte, maxDatagram)
	n, err := c.conn.Read(buf)
	if err != nil {
		return nil, errors.Wrap(err, "reading datagram")
	}

	pkt, err := decodePacket(c.creds, buf[:n])
	if err != nil {
		return nil, err
	}

	if c.ready && pkt.deviceID != c.deviceID {
		return nil, errors.Errorf("reply from unexpected device %08x", pkt.deviceID)
	}

	return pkt, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}
