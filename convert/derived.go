package convert

import (
	"github.com/Spyderisk/domain-csv2nq/nq"
	"github.com/Spyderisk/domain-csv2nq/vocabulary/ssm"
)

// emitNodes writes out every node gleaned from the pattern tables, in the
// order they were first seen.
func (c *Converter) emitNodes(heading string) {
	c.section(heading)

	typ := nq.SSMURI(ssm.CoreNode)

	for _, key := range c.nodes.Keys() {
		node, _ := c.nodes.Get(key)
		uri := nq.SSMURI(key)

		c.quad(uri, nq.RDFURI(ssm.RDFType), typ)
		c.quad(uri, nq.SSMURI(ssm.CoreMetaHasAsset), nq.SSMURI(node.Asset))
		c.quad(uri, nq.SSMURI(ssm.CoreHasRole), nq.SSMURI(node.Role))

		c.spacer()
	}

	c.spacer()
}

// emitRoleLinks writes out every role link gleaned from the pattern tables.
func (c *Converter) emitRoleLinks(heading string) {
	c.section(heading)

	typ := nq.SSMURI(ssm.CoreRoleLink)

	for _, key := range c.links.Keys() {
		link, _ := c.links.Get(key)
		uri := nq.SSMURI(key)

		c.quad(uri, nq.RDFURI(ssm.RDFType), typ)
		c.quad(uri, nq.SSMURI(ssm.CoreLinkType), nq.SSMURI(link.Type))
		c.quad(uri, nq.SSMURI(ssm.CoreLinksFrom), nq.SSMURI(link.From))
		c.quad(uri, nq.SSMURI(ssm.CoreLinksTo), nq.SSMURI(link.To))

		c.spacer()
	}

	c.spacer()
}

// emitSets writes out every entity set of one kind gleaned from the threat
// and control strategy tables.
func (c *Converter) emitSets(kind SetKind, heading string) {
	c.section(heading)

	var typ, property string
	switch kind {
	case ControlSetKind:
		typ, property = ssm.CoreControlSet, ssm.CoreHasControl
	case MisbehaviourSetKind:
		typ, property = ssm.CoreMisbehaviourSet, ssm.CoreHasMisbehaviour
	default:
		typ, property = ssm.CoreTrustworthinessAttributeSet, ssm.CoreHasTrustworthinessAttribute
	}

	_, cache := c.setKindState(kind)
	for _, key := range cache.Keys() {
		set, _ := cache.Get(key)
		uri := nq.SSMURI(key)

		c.quad(uri, nq.RDFURI(ssm.RDFType), nq.SSMURI(typ))
		c.quad(uri, nq.SSMURI(property), nq.SSMURI(set.Entity))
		c.quad(uri, nq.SSMURI(ssm.CoreLocatedAt), nq.SSMURI(set.Role))

		c.spacer()
	}

	c.spacer()
}
