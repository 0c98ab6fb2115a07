package miot

import (
	"sort"

	"github.com/pkg/errors"
)

/*
 *   MiOT addressing: every device capability lives under a logical service
 *   (siid) and is either a readable/writable property (piid) or an
 *   invocable action (aiid).
 */

// ErrUnmappedCapability indicates a capability name with no entry in the
// device mapping. This is a table/code mismatch, not a runtime condition.
var ErrUnmappedCapability = errors.New("capability not present in device mapping")

type PropertySpec struct {
	SIID int
	PIID int
}

type ActionSpec struct {
	SIID int
	AIID int
}

// Mapping is the static capability address table for one device model.
// Defined once at load time and shared read-only.
type Mapping struct {
	Properties map[string]PropertySpec
	Actions    map[string]ActionSpec
}

// Property resolves a symbolic capability name to its property address.
func (m Mapping) Property(name string) (PropertySpec, error) {
	spec, ok := m.Properties[name]
	if !ok {
		return PropertySpec{}, errors.Wrapf(ErrUnmappedCapability, "property %q", name)
	}

	return spec, nil
}

// Action resolves a symbolic capability name to its action address.
func (m Mapping) Action(name string) (ActionSpec, error) {
	spec, ok := m.Actions[name]
	if !ok {
		return ActionSpec{}, errors.Wrapf(ErrUnmappedCapability, "action %q", name)
	}

	return spec, nil
}

// PropertyRequests builds a batch read request covering every mapped
// property, in stable name order.
func (m Mapping) PropertyRequests() []PropertyRequest {
	names := make([]string, 0, len(m.Properties))
	for name := range m.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	reqs := make([]PropertyRequest, 0, len(names))
	for _, name := range names {
		spec := m.Properties[name]
		reqs = append(reqs, PropertyRequest{
			DID:  name,
			SIID: spec.SIID,
			PIID: spec.PIID,
		})
	}

	return reqs
}
