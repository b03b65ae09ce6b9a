package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogMatchPrefixTakesFirstInsertionOrderMatch(t *testing.T) {
	c := NewCatalog()
	c.Put("domain#Role_H", "H")
	c.Put("domain#Role_Host", "Host")

	// "H-ost-..." matches the shorter ref first because it was inserted
	// first, mirroring the source table row order.
	uri, rest, ok := c.MatchPrefix("H-Server")
	require.True(t, ok)
	assert.Equal(t, "domain#Role_H", uri)
	assert.Equal(t, "Server", rest)

	uri, rest, ok = c.MatchPrefix("Host-Server")
	require.True(t, ok)
	assert.Equal(t, "domain#Role_H", uri, "first inserted ref wins when both prefix the input")
	assert.Equal(t, "ost-Server", rest)
}

func TestCatalogMatchPrefixRequiresSeparator(t *testing.T) {
	c := NewCatalog()
	c.Put("domain#Role_Host", "Host")

	_, _, ok := c.MatchPrefix("Host")
	assert.False(t, ok, "a bare ref without separator must not match")
}

func TestCatalogRefAndHas(t *testing.T) {
	c := NewCatalog()
	c.Put("domain#Host", "Host")

	ref, ok := c.Ref("domain#Host")
	require.True(t, ok)
	assert.Equal(t, "Host", ref)
	assert.True(t, c.Has("domain#Host"))
	assert.False(t, c.Has("domain#Router"))
	assert.Equal(t, 1, c.Len())
}

func TestOrderedSetPreservesOrder(t *testing.T) {
	s := newOrderedSet()
	s.Add("b")
	s.Add("a")
	s.Add("b")
	assert.Equal(t, []string{"b", "a"}, s.Keys())

	s.Remove("b")
	assert.Equal(t, []string{"a"}, s.Keys())
	assert.False(t, s.Has("b"))
}

func TestOrderedMapPreservesOrder(t *testing.T) {
	m := newOrderedMap[int]()
	m.Put("x", 1)
	m.Put("y", 2)
	m.Put("x", 3)

	assert.Equal(t, []string{"x", "y"}, m.Keys())
	v, ok := m.Get("x")
	require.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, 2, m.Len())
}
