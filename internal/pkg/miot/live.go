package miot

import (
	"encoding/json"

	"github.com/miot-home/micam/internal/pkg/logging"
	"github.com/pkg/errors"
)

// Caller is the wire-level primitive the live transport is built on: a
// single method call against an established device session.
type Caller interface {
	Call(method string, params interface{}) (json.RawMessage, error)
}

// Live shapes MiOT property/action operations into wire method calls.
type Live struct {
	wire Caller
}

func NewLiveTransport(wire Caller) *Live {
	return &Live{wire: wire}
}

type setPropertyParam struct {
	PropertyRequest
	Value interface{} `json:"value"`
}

func (c *Live) GetProperties(reqs []PropertyRequest) ([]PropertyValue, error) {
	raw, err := c.wire.Call("get_properties", reqs)
	if err != nil {
		return nil, errors.Wrap(err, "reading properties")
	}

	var values []PropertyValue
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, errors.Wrap(err, "parsing property read result")
	}

	return values, nil
}

func (c *Live) SetProperty(req PropertyRequest, value interface{}) error {
	params := []setPropertyParam{{PropertyRequest: req, Value: value}}

	raw, err := c.wire.Call("set_properties", params)
	if err != nil {
		return errors.Wrapf(err, "writing property %s", req.DID)
	}

	var results []PropertyValue
	if err := json.Unmarshal(raw, &results); err != nil {
		return errors.Wrap(err, "parsing property write result")
	}

	for _, r := range results {
		if r.Code != 0 {
			return errors.Errorf("device rejected write of %s: code %d", r.DID, r.Code)
		}
	}

	return nil
}

func (c *Live) CallAction(req ActionRequest) (*ActionResult, error) {
	if req.In == nil {
		req.In = []interface{}{}
	}

	raw, err := c.wire.Call("action", req)
	if err != nil {
		return nil, errors.Wrapf(err, "invoking action %s", req.DID)
	}

	var result ActionResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, errors.Wrap(err, "parsing action result")
	}

	if result.Code != 0 {
		return nil, errors.Errorf("device rejected action %s: code %d", req.DID, result.Code)
	}

	return &result, nil
}

// Send issues a raw legacy method call, for device functions that predate
// the MiOT property model.
func (c *Live) Send(method string, params interface{}) (json.RawMessage, error) {
	logging.Logger().Debugf("sending raw method: %s", method)

	raw, err := c.wire.Call(method, params)
	if err != nil {
		return nil, errors.Wrapf(err, "calling %s", method)
	}

	return raw, nil
}
