package convert

import "fmt"

// Node is a resolved pattern node: a role played by an asset class.
type Node struct {
	Role  string
	Asset string
}

// RoleLink is a resolved link between two roles via a relationship type.
type RoleLink struct {
	From string
	Type string
	To   string
}

// EntitySet pairs an entity (control, misbehaviour or trustworthiness
// attribute) with the role it is located at.
type EntitySet struct {
	Entity string
	Role   string
}

// SetKind selects which entity family an EntitySet identifier belongs to.
type SetKind int

const (
	ControlSetKind SetKind = iota
	MisbehaviourSetKind
	TWASetKind
)

func (k SetKind) String() string {
	switch k {
	case ControlSetKind:
		return "Control"
	case MisbehaviourSetKind:
		return "Misbehaviour"
	default:
		return "TrustworthinessAttribute"
	}
}

func (k SetKind) prefix() string {
	switch k {
	case ControlSetKind:
		return "domain#CS-"
	case MisbehaviourSetKind:
		return "domain#MS-"
	default:
		return "domain#TWAS-"
	}
}

func (c *Converter) setKindState(kind SetKind) (*Catalog, *orderedMap[EntitySet]) {
	switch kind {
	case ControlSetKind:
		return c.controls, c.controlSets
	case MisbehaviourSetKind:
		return c.misbehaviours, c.misbehaviourSets
	default:
		return c.twas, c.twaSets
	}
}

// resolveNode parses a composite Node identifier of the form
// domain#Node-<roleRef>-<assetRef> against the role and asset catalogs.
func (c *Converter) resolveNode(uri string) (Node, error) {
	const prefix = "domain#Node-"
	if len(uri) < len(prefix) {
		return Node{}, fmt.Errorf("bad Node URI %s does not comply with the schema", uri)
	}
	short := uri[len(prefix):]

	role, rest, ok := c.roles.MatchPrefix(short)
	if !ok {
		return Node{}, fmt.Errorf("bad Node URI %s does not have a valid role", uri)
	}
	asset := "domain#" + rest
	if !c.assets.Has(asset) {
		return Node{}, fmt.Errorf("bad Node URI %s does not have a valid asset type", uri)
	}
	return Node{Role: role, Asset: asset}, nil
}

// resolveLink parses a composite RoleLink identifier of the form
// domain#Link-<fromRoleRef>-<relationshipRef>-<toRoleRef>.
func (c *Converter) resolveLink(uri string) (RoleLink, error) {
	const prefix = "domain#Link-"
	if len(uri) < len(prefix) {
		return RoleLink{}, fmt.Errorf("bad Role Link URI %s does not comply with the schema", uri)
	}
	short := uri[len(prefix):]

	from, rest, ok := c.roles.MatchPrefix(short)
	if !ok {
		return RoleLink{}, fmt.Errorf("bad Role Link URI %s is not from a valid role", uri)
	}
	linkType, rest, ok := c.relationships.MatchPrefix(rest)
	if !ok {
		return RoleLink{}, fmt.Errorf("bad Role Link URI %s does not have a valid relationship type", uri)
	}
	to := "domain#Role_" + rest
	if !c.roles.Has(to) {
		return RoleLink{}, fmt.Errorf("bad Role Link URI %s is not to a valid role", uri)
	}
	return RoleLink{From: from, Type: linkType, To: to}, nil
}

// resolveSet parses a composite set identifier of the form
// domain#<CS|MS|TWAS>-<entityRef>-<roleRef> against the kind's entity
// catalog and the role catalog.
func (c *Converter) resolveSet(uri string, kind SetKind) (EntitySet, error) {
	prefix := kind.prefix()
	if len(uri) < len(prefix) || uri[:len(prefix)] != prefix {
		return EntitySet{}, fmt.Errorf("bad %s Set URI %s does not comply with the schema", kind, uri)
	}
	short := uri[len(prefix):]

	catalog, _ := c.setKindState(kind)
	entity, rest, ok := catalog.MatchPrefix(short)
	if !ok {
		return EntitySet{}, fmt.Errorf("bad %s Set URI %s does not relate to a valid %s", kind, uri, kind)
	}
	role := "domain#Role_" + rest
	if !c.roles.Has(role) {
		return EntitySet{}, fmt.Errorf("bad %s Set URI %s does not relate to a valid role", kind, uri)
	}
	return EntitySet{Entity: entity, Role: role}, nil
}

// noteNode resolves a Node identifier and memoizes it for the emission pass.
func (c *Converter) noteNode(uri string) error {
	if c.nodes.Has(uri) {
		return nil
	}
	node, err := c.resolveNode(uri)
	if err != nil {
		return err
	}
	c.nodes.Put(uri, node)
	return nil
}

// noteLink resolves a RoleLink identifier and memoizes it for emission.
func (c *Converter) noteLink(uri string) error {
	if c.links.Has(uri) {
		return nil
	}
	link, err := c.resolveLink(uri)
	if err != nil {
		return err
	}
	c.links.Put(uri, link)
	return nil
}

// noteSet resolves a set identifier and memoizes it in the cache for its
// kind.
func (c *Converter) noteSet(uri string, kind SetKind) error {
	_, cache := c.setKindState(kind)
	if cache.Has(uri) {
		return nil
	}
	set, err := c.resolveSet(uri, kind)
	if err != nil {
		return err
	}
	cache.Put(uri, set)
	return nil
}
