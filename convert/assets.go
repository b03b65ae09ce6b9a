package convert

import (
	"fmt"
	"strings"

	"github.com/Spyderisk/domain-csv2nq/nq"
	"github.com/Spyderisk/domain-csv2nq/tables"
	"github.com/Spyderisk/domain-csv2nq/vocabulary/ssm"
)

// convertAssets converts DomainAsset.csv and DomainAssetParents.csv,
// populating the asset catalog used by Node and Set resolution.
func (c *Converter) convertAssets(heading string) error {
	c.section(heading)

	t, err := tables.Open(c.opts.Input, "DomainAsset.csv")
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
	assertableCol, err := t.Bind("isAssertable")
	if err != nil {
		return err
	}
	visibleCol, err := t.Bind("isVisible")
	if err != nil {
		return err
	}
	constructionState := c.features.Has(ssm.FeatureConstructionState)
	var stateCol tables.Column
	if constructionState {
		if stateCol, err = t.Bind("constructionState"); err != nil {
			return err
		}
	}

	for _, row := range t.Rows() {
		if !c.inPackage(row.Get(packageCol)) {
			continue
		}
		rawURI := row.Get(uriCol)
		uri := nq.SSMURI(rawURI)
		pkg := nq.SSMURI(packageResource(row.Get(packageCol)))
		isAssertable, err := nq.Boolean(row.Get(assertableCol))
		if err != nil {
			return fmt.Errorf("%s %s: %w", t.Name, rawURI, err)
		}
		var isVisible string
		if c.opts.Unfiltered {
			isVisible, _ = nq.Boolean("true")
		} else if isVisible, err = nq.Boolean(row.Get(visibleCol)); err != nil {
			return fmt.Errorf("%s %s: %w", t.Name, rawURI, err)
		}

		c.quad(uri, nq.RDFURI(ssm.RDFType), nq.OWLURI(ssm.OWLClass))
		c.quad(uri, nq.SSMURI(ssm.CoreInPackage), pkg)
		c.quad(uri, nq.RDFSURI(ssm.RDFSLabel), nq.String(row.Get(labelCol)))
		c.quad(uri, nq.RDFSURI(ssm.RDFSComment), nq.String(row.Get(commentCol)))
		c.quad(uri, nq.SSMURI(ssm.CoreIsAssertable), isAssertable)
		c.quad(uri, nq.SSMURI(ssm.CoreIsVisible), isVisible)
		if constructionState {
			if strings.EqualFold(row.Get(stateCol), "true") && !c.opts.Unfiltered {
				state, err := nq.Boolean(row.Get(stateCol))
				if err != nil {
					return fmt.Errorf("%s %s: %w", t.Name, rawURI, err)
				}
				c.quad(uri, nq.SSMURI(ssm.CoreIsConstructionState), state)
			}
		}

		c.spacer()

		c.assets.Put(rawURI, strings.TrimPrefix(rawURI, "domain#"))
	}

	c.spacer()

	return c.convertReferenceTable("DomainAssetParents.csv", "subClassOf", nq.RDFSURI(ssm.RDFSSubClassOf))
}

// convertReferenceTable converts a simple URI/package/reference table where
// each row yields a single quad with the given predicate.
func (c *Converter) convertReferenceTable(filename, column, predicate string) error {
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
	refCol, err := t.Bind(column)
	if err != nil {
		return err
	}

	for _, row := range t.Rows() {
		if !c.inPackage(row.Get(packageCol)) {
			continue
		}
		c.quad(nq.SSMURI(row.Get(uriCol)), predicate, nq.SSMURI(row.Get(refCol)))
	}

	c.spacer()
	return nil
}
