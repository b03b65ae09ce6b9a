package convert

import (
	"fmt"
	"strings"

	"github.com/Spyderisk/domain-csv2nq/nq"
	"github.com/Spyderisk/domain-csv2nq/tables"
	"github.com/Spyderisk/domain-csv2nq/vocabulary/ssm"
)

// convertRootPatterns converts RootPattern.csv with its node and link
// tables. The comment column exists for the table editor and is not
// exported.
func (c *Converter) convertRootPatterns(heading string) error {
	c.section(heading)

	t, err := tables.Open(c.opts.Input, "RootPattern.csv")
	if err != nil {
		return err
	}
	uriCol, err := t.Bind("URI")
	if err != nil {
		return err
	}
	packageCol, err := t.Bind("package")
	if err != nil {
		return err
	}
	labelCol, err := t.Bind("label")
	if err != nil {
		return err
	}
	if _, err := t.Bind("comment"); err != nil {
		return err
	}

	for _, row := range t.Rows() {
		if !c.inPackage(row.Get(packageCol)) {
			continue
		}
		uri := nq.SSMURI(row.Get(uriCol))
		pkg := nq.SSMURI(packageResource(row.Get(packageCol)))

		c.quad(uri, nq.RDFURI(ssm.RDFType), nq.SSMURI(ssm.CoreRootPattern))
		c.quad(uri, nq.SSMURI(ssm.CoreInPackage), pkg)
		c.quad(uri, nq.RDFSURI(ssm.RDFSLabel), nq.String(row.Get(labelCol)))

		c.spacer()
	}

	c.spacer()

	if err := c.convertRootPatternNodes(); err != nil {
		return err
	}
	return c.convertPatternLinkTable("RootPatternLinks.csv", false)
}

func (c *Converter) convertRootPatternNodes() error {
	t, err := tables.Open(c.opts.Input, "RootPatternNodes.csv")
	if err != nil {
		return err
	}
	uriCol, err := t.Bind("URI")
	if err != nil {
		return err
	}
	packageCol, err := t.Bind("package")
	if err != nil {
		return err
	}
	nodeCol, err := t.Bind("hasNode")
	if err != nil {
		return err
	}
	keyCol, err := t.Bind("keyNode")
	if err != nil {
		return err
	}

	for _, row := range t.Rows() {
		if !c.inPackage(row.Get(packageCol)) {
			continue
		}
		uri := nq.SSMURI(row.Get(uriCol))
		node := nq.SSMURI(row.Get(nodeCol))

		switch strings.ToLower(row.Get(keyCol)) {
		case "true":
			c.quad(uri, nq.SSMURI(ssm.CoreHasKeyNode), node)
		case "false":
			c.quad(uri, nq.SSMURI(ssm.CoreHasRootNode), node)
		default:
			return fmt.Errorf("root pattern %s has bad keyNode value %q", row.Get(uriCol), row.Get(keyCol))
		}

		if err := c.noteNode(row.Get(nodeCol)); err != nil {
			return err
		}
	}

	c.spacer()
	return nil
}

// convertPatternLinkTable converts a pattern link table. When prohibited is
// set the table carries a prohibited column selecting the predicate.
func (c *Converter) convertPatternLinkTable(filename string, prohibited bool) error {
	t, err := tables.Open(c.opts.Input, filename)
	if err != nil {
		return err
	}
	uriCol, err := t.Bind("URI")
	if err != nil {
		return err
	}
	packageCol, err := t.Bind("package")
	if err != nil {
		return err
	}
	linkCol, err := t.Bind("hasLink")
	if err != nil {
		return err
	}
	var prohibitedCol tables.Column
	if prohibited {
		if prohibitedCol, err = t.Bind("prohibited"); err != nil {
			return err
		}
	}

	for _, row := range t.Rows() {
		if !c.inPackage(row.Get(packageCol)) {
			continue
		}
		uri := nq.SSMURI(row.Get(uriCol))
		link := nq.SSMURI(row.Get(linkCol))

		predicate := ssm.CoreHasLink
		if prohibited && strings.EqualFold(row.Get(prohibitedCol), "true") {
			predicate = ssm.CoreHasProhibitedLink
		}
		c.quad(uri, nq.SSMURI(predicate), link)

		if err := c.noteLink(row.Get(linkCol)); err != nil {
			return err
		}
	}

	c.spacer()
	return nil
}

// convertMatchingPatterns converts MatchingPattern.csv with its node, link
// and distinct node group tables.
func (c *Converter) convertMatchingPatterns(heading string) error {
	c.section(heading)

	t, err := tables.Open(c.opts.Input, "MatchingPattern.csv")
	if err != nil {
		return err
	}
	uriCol, err := t.Bind("URI")
	if err != nil {
		return err
	}
	packageCol, err := t.Bind("package")
	if err != nil {
		return err
	}
	labelCol, err := t.Bind("label")
	if err != nil {
		return err
	}
	commentCol, err := t.Bind("comment")
	if err != nil {
		return err
	}
	rootCol, err := t.Bind("hasRootPattern")
	if err != nil {
		return err
	}

	for _, row := range t.Rows() {
		if !c.inPackage(row.Get(packageCol)) {
			continue
		}
		uri := nq.SSMURI(row.Get(uriCol))
		pkg := nq.SSMURI(packageResource(row.Get(packageCol)))

		c.quad(uri, nq.RDFURI(ssm.RDFType), nq.SSMURI(ssm.CoreMatchingPattern))
		c.quad(uri, nq.SSMURI(ssm.CoreInPackage), pkg)
		c.quad(uri, nq.RDFSURI(ssm.RDFSLabel), nq.String(row.Get(labelCol)))
		c.quad(uri, nq.RDFSURI(ssm.RDFSComment), nq.String(row.Get(commentCol)))
		c.quad(uri, nq.SSMURI(ssm.CoreHasRootPattern), nq.SSMURI(row.Get(rootCol)))

		c.spacer()
	}

	c.spacer()

	if err := c.convertMatchingPatternNodes(); err != nil {
		return err
	}
	if err := c.convertPatternLinkTable("MatchingPatternLinks.csv", true); err != nil {
		return err
	}
	if err := c.convertMatchingPatternDNGs(); err != nil {
		return err
	}
	return c.convertReferenceTable("DistinctNodeGroupNodes.csv", "hasNode", nq.SSMURI(ssm.CoreHasNode))
}

func (c *Converter) convertMatchingPatternNodes() error {
	t, err := tables.Open(c.opts.Input, "MatchingPatternNodes.csv")
	if err != nil {
		return err
	}
	uriCol, err := t.Bind("URI")
	if err != nil {
		return err
	}
	packageCol, err := t.Bind("package")
	if err != nil {
		return err
	}
	nodeCol, err := t.Bind("hasNode")
	if err != nil {
		return err
	}
	mandatoryCol, err := t.Bind("mandatoryNode")
	if err != nil {
		return err
	}
	prohibitedCol, err := t.Bind("prohibitedNode")
	if err != nil {
		return err
	}
	sufficientCol, err := t.Bind("sufficientNode")
	if err != nil {
		return err
	}

	for _, row := range t.Rows() {
		if !c.inPackage(row.Get(packageCol)) {
			continue
		}
		uri := nq.SSMURI(row.Get(uriCol))
		node := nq.SSMURI(row.Get(nodeCol))

		var predicate string
		switch {
		case strings.EqualFold(row.Get(mandatoryCol), "true"):
			if strings.EqualFold(row.Get(sufficientCol), "true") {
				predicate = ssm.CoreHasSufficientNode
			} else {
				predicate = ssm.CoreHasNecessaryNode
			}
		case strings.EqualFold(row.Get(prohibitedCol), "true"):
			predicate = ssm.CoreHasProhibitedNode
		default:
			predicate = ssm.CoreHasOptionalNode
		}
		c.quad(uri, nq.SSMURI(predicate), node)

		if err := c.noteNode(row.Get(nodeCol)); err != nil {
			return err
		}
	}

	c.spacer()
	return nil
}

func (c *Converter) convertMatchingPatternDNGs() error {
	t, err := tables.Open(c.opts.Input, "MatchingPatternDNG.csv")
	if err != nil {
		return err
	}
	uriCol, err := t.Bind("URI")
	if err != nil {
		return err
	}
	packageCol, err := t.Bind("package")
	if err != nil {
		return err
	}
	groupCol, err := t.Bind("hasDistinctNodeGroup")
	if err != nil {
		return err
	}

	for _, row := range t.Rows() {
		if !c.inPackage(row.Get(packageCol)) {
			continue
		}
		uri := nq.SSMURI(row.Get(uriCol))
		group := nq.SSMURI(row.Get(groupCol))

		c.quad(group, nq.RDFURI(ssm.RDFType), nq.SSMURI(ssm.CoreDistinctNodeGroup))
		c.quad(uri, nq.SSMURI(ssm.CoreHasDistinctNodeGroup), group)
	}

	c.spacer()
	return nil
}
