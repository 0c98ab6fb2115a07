package miot

import "encoding/json"

// PropertyRequest addresses one property in a get_properties batch.
// The device echoes the did back in its reply, so the symbolic
// capability name is used as the did.
type PropertyRequest struct {
	DID  string `json:"did"`
	SIID int    `json:"siid"`
	PIID int    `json:"piid"`
}

// PropertyValue is one entry of a property read result. A non-zero Code
// means the device could not serve that property.
type PropertyValue struct {
	DID   string      `json:"did"`
	SIID  int         `json:"siid,omitempty"`
	PIID  int         `json:"piid,omitempty"`
	Code  int         `json:"code"`
	Value interface{} `json:"value,omitempty"`
}

// ActionRequest invokes one device action with an ordered argument list.
type ActionRequest struct {
	DID  string        `json:"did"`
	SIID int           `json:"siid"`
	AIID int           `json:"aiid"`
	In   []interface{} `json:"in"`
}

// ActionResult is the device's reply to an action invocation.
type ActionResult struct {
	Code int           `json:"code"`
	Out  []interface{} `json:"out,omitempty"`
}

type Transport interface {
	GetProperties(reqs []PropertyRequest) ([]PropertyValue, error)
	SetProperty(req PropertyRequest, value interface{}) error
	CallAction(req ActionRequest) (*ActionResult, error)
	Send(method string, params interface{}) (json.RawMessage, error)
}
