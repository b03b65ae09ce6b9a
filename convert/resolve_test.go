package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Spyderisk/domain-csv2nq/config"
)

func testConverter() *Converter {
	c := New(config.Default(), nil)
	c.roles.Put("domain#Role_Host", "Host")
	c.roles.Put("domain#Role_Client", "Client")
	c.assets.Put("domain#WebServer", "WebServer")
	c.relationships.Put("domain#connectsTo", "connectsTo")
	c.controls.Put("domain#Patching", "Patching")
	c.misbehaviours.Put("domain#LossOfAvailability", "LossOfAvailability")
	c.twas.Put("domain#Reliability", "Reliability")
	return c
}

func TestResolveNode(t *testing.T) {
	c := testConverter()

	node, err := c.resolveNode("domain#Node-Host-WebServer")
	require.NoError(t, err)
	assert.Equal(t, Node{Role: "domain#Role_Host", Asset: "domain#WebServer"}, node)
}

func TestResolveNodeBadRole(t *testing.T) {
	c := testConverter()

	_, err := c.resolveNode("domain#Node-Nowhere-WebServer")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "domain#Node-Nowhere-WebServer")
	assert.Contains(t, err.Error(), "role")
}

func TestResolveNodeBadAsset(t *testing.T) {
	c := testConverter()

	_, err := c.resolveNode("domain#Node-Host-Mainframe")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "asset")
}

func TestResolveLink(t *testing.T) {
	c := testConverter()

	link, err := c.resolveLink("domain#Link-Host-connectsTo-Client")
	require.NoError(t, err)
	assert.Equal(t, RoleLink{
		From: "domain#Role_Host",
		Type: "domain#connectsTo",
		To:   "domain#Role_Client",
	}, link)
}

func TestResolveLinkBadRelationship(t *testing.T) {
	c := testConverter()

	_, err := c.resolveLink("domain#Link-Host-floatsOver-Client")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "relationship")
}

func TestResolveLinkBadToRole(t *testing.T) {
	c := testConverter()

	_, err := c.resolveLink("domain#Link-Host-connectsTo-Nobody")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valid role")
}

func TestResolveSetPerKind(t *testing.T) {
	c := testConverter()

	tests := []struct {
		uri    string
		kind   SetKind
		entity string
	}{
		{"domain#CS-Patching-Host", ControlSetKind, "domain#Patching"},
		{"domain#MS-LossOfAvailability-Host", MisbehaviourSetKind, "domain#LossOfAvailability"},
		{"domain#TWAS-Reliability-Host", TWASetKind, "domain#Reliability"},
	}
	for _, tt := range tests {
		set, err := c.resolveSet(tt.uri, tt.kind)
		require.NoError(t, err, tt.uri)
		assert.Equal(t, EntitySet{Entity: tt.entity, Role: "domain#Role_Host"}, set)
	}
}

func TestResolveSetRejectsWrongPrefix(t *testing.T) {
	c := testConverter()

	_, err := c.resolveSet("domain#MS-LossOfAvailability-Host", ControlSetKind)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema")
}

func TestNoteSetMemoizesInItsOwnCache(t *testing.T) {
	c := testConverter()

	require.NoError(t, c.noteSet("domain#MS-LossOfAvailability-Host", MisbehaviourSetKind))
	require.NoError(t, c.noteSet("domain#MS-LossOfAvailability-Host", MisbehaviourSetKind))

	assert.Equal(t, 1, c.misbehaviourSets.Len())
	assert.Equal(t, 0, c.twaSets.Len())
	assert.Equal(t, 0, c.controlSets.Len())
}

func TestNoteNodeIsIdempotent(t *testing.T) {
	c := testConverter()

	require.NoError(t, c.noteNode("domain#Node-Host-WebServer"))
	require.NoError(t, c.noteNode("domain#Node-Host-WebServer"))
	assert.Equal(t, 1, c.nodes.Len())
}
