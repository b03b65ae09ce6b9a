package convert

import "strings"

// Catalog maps entity URIs to the reference fragments embedded in composite
// identifiers, preserving source-table row order. Iteration order matters:
// composite identifier resolution takes the first prefix match in insertion
// order, so catalogs must never be backed by an unordered map alone.
type Catalog struct {
	keys []string
	refs map[string]string
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{refs: make(map[string]string)}
}

// Put records the reference fragment for an entity URI. First insertion
// fixes the position.
func (c *Catalog) Put(uri, ref string) {
	if _, ok := c.refs[uri]; !ok {
		c.keys = append(c.keys, uri)
	}
	c.refs[uri] = ref
}

// Ref returns the reference fragment for an entity URI.
func (c *Catalog) Ref(uri string) (string, bool) {
	ref, ok := c.refs[uri]
	return ref, ok
}

// Has reports whether the catalog holds the entity URI.
func (c *Catalog) Has(uri string) bool {
	_, ok := c.refs[uri]
	return ok
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.keys)
}

// MatchPrefix finds the first entry, in insertion order, whose reference
// fragment followed by the "-" separator prefixes s. It returns the
// entry's URI and the remainder of s past the separator.
func (c *Catalog) MatchPrefix(s string) (uri, rest string, ok bool) {
	for _, key := range c.keys {
		ref := c.refs[key]
		if strings.HasPrefix(s, ref+"-") {
			return key, s[len(ref)+1:], true
		}
	}
	return "", "", false
}

// orderedSet is a string set preserving insertion order, used for the
// active feature and package lists.
type orderedSet struct {
	keys []string
	set  map[string]bool
}

func newOrderedSet() *orderedSet {
	return &orderedSet{set: make(map[string]bool)}
}

func (s *orderedSet) Add(key string) {
	if !s.set[key] {
		s.keys = append(s.keys, key)
		s.set[key] = true
	}
}

func (s *orderedSet) Has(key string) bool {
	return s.set[key]
}

func (s *orderedSet) Remove(key string) {
	if !s.set[key] {
		return
	}
	delete(s.set, key)
	for i, k := range s.keys {
		if k == key {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
}

func (s *orderedSet) Keys() []string {
	return s.keys
}

// orderedMap is an insertion-ordered map keyed by URI, used for derived
// entity caches and the construction sequence ranks.
type orderedMap[V any] struct {
	keys []string
	vals map[string]V
}

func newOrderedMap[V any]() *orderedMap[V] {
	return &orderedMap[V]{vals: make(map[string]V)}
}

func (m *orderedMap[V]) Put(key string, val V) {
	if _, ok := m.vals[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = val
}

func (m *orderedMap[V]) Get(key string) (V, bool) {
	v, ok := m.vals[key]
	return v, ok
}

func (m *orderedMap[V]) Has(key string) bool {
	_, ok := m.vals[key]
	return ok
}

func (m *orderedMap[V]) Keys() []string {
	return m.keys
}

func (m *orderedMap[V]) Len() int {
	return len(m.keys)
}
