package miot

import (
	"sort"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMapping() Mapping {
	return Mapping{
		Properties: map[string]PropertySpec{
			"power":      {SIID: 2, PIID: 1},
			"brightness": {SIID: 2, PIID: 3},
		},
		Actions: map[string]ActionSpec{
			"restart": {SIID: 6, AIID: 1},
		},
	}
}

func TestMappingLookup(t *testing.T) {
	m := testMapping()

	prop, err := m.Property("power")
	require.NoError(t, err)
	assert.Equal(t, PropertySpec{SIID: 2, PIID: 1}, prop)

	action, err := m.Action("restart")
	require.NoError(t, err)
	assert.Equal(t, ActionSpec{SIID: 6, AIID: 1}, action)
}

func TestMappingLookupFailsLoudly(t *testing.T) {
	m := testMapping()

	_, err := m.Property("nonexistent")
	require.Error(t, err)
	assert.Equal(t, ErrUnmappedCapability, errors.Cause(err))

	_, err = m.Action("power")
	require.Error(t, err)
	assert.Equal(t, ErrUnmappedCapability, errors.Cause(err))
}

func TestPropertyRequestsStableAndComplete(t *testing.T) {
	m := testMapping()

	reqs := m.PropertyRequests()
	require.Len(t, reqs, 2)

	names := make([]string, len(reqs))
	for i, r := range reqs {
		names[i] = r.DID
	}
	assert.True(t, sort.StringsAreSorted(names))

	assert.Equal(t, PropertyRequest{DID: "brightness", SIID: 2, PIID: 3}, reqs[0])
	assert.Equal(t, PropertyRequest{DID: "power", SIID: 2, PIID: 1}, reqs[1])
}
