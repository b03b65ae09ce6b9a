package convert

import (
	"fmt"
	"strings"

	"github.com/Spyderisk/domain-csv2nq/nq"
	"github.com/Spyderisk/domain-csv2nq/tables"
	"github.com/Spyderisk/domain-csv2nq/vocabulary/ssm"
)

// populationFamily describes one of the three entity families that carry
// min, average and max population variants: Controls, Misbehaviours and
// Trustworthiness Attributes.
type populationFamily struct {
	entityType string
	file       string
	locFile    string
	heading    string
}

func (c *Converter) familyCatalog(entityType string) *Catalog {
	switch entityType {
	case "Control":
		return c.controls
	case "Misbehaviour":
		return c.misbehaviours
	default:
		return c.twas
	}
}

// convertPopulationEntities converts one population entity family table and
// its locations table. When population expansion is on, each row yields min
// and max variants alongside the average one, cross linked with hasMin,
// hasMax, minOf and maxOf.
func (c *Converter) convertPopulationEntities(fam populationFamily) error {
	c.section(fam.heading)

	t, err := tables.Open(c.opts.Input, fam.file)
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
	visibleCol, err := t.Bind("isVisible")
	if err != nil {
		return err
	}
	isControl := fam.entityType == "Control"
	var costCol, perfCol tables.Column
	if isControl {
		if costCol, err = t.Bind("unitCost"); err != nil {
			return err
		}
		if perfCol, err = t.Bind("performanceImpact"); err != nil {
			return err
		}
	}

	typ := nq.SSMURI("core#" + fam.entityType)
	catalog := c.familyCatalog(fam.entityType)

	for _, row := range t.Rows() {
		if !c.inPackage(row.Get(packageCol)) {
			continue
		}
		rawURI := row.Get(uriCol)
		pkg := nq.SSMURI(packageResource(row.Get(packageCol)))
		uris := expandMinMax(rawURI)
		labels := expandMinMax(row.Get(labelCol))
		comment := nq.String(row.Get(commentCol))

		var avgVisible, minmaxVisible string
		if c.opts.Unfiltered {
			avgVisible, _ = nq.Boolean("true")
			minmaxVisible = avgVisible
		} else {
			if avgVisible, err = nq.Boolean(row.Get(visibleCol)); err != nil {
				return fmt.Errorf("%s %s: %w", t.Name, rawURI, err)
			}
			minmaxVisible, _ = nq.Boolean("false")
		}
		var unitCost, performanceImpact string
		if isControl {
			unitCost = nq.SSMURI(row.Get(costCol))
			performanceImpact = nq.SSMURI(row.Get(perfCol))
		}

		avgURI := nq.SSMURI(uris.Avg)
		c.quad(avgURI, nq.RDFURI(ssm.RDFType), typ)
		c.quad(avgURI, nq.SSMURI(ssm.CoreInPackage), pkg)
		c.quad(avgURI, nq.RDFSURI(ssm.RDFSComment), comment)
		c.quad(avgURI, nq.RDFSURI(ssm.RDFSLabel), nq.String(labels.Avg))
		c.quad(avgURI, nq.SSMURI(ssm.CoreIsVisible), avgVisible)
		if isControl {
			c.quad(avgURI, nq.SSMURI(ssm.CoreUnitCost), unitCost)
			c.quad(avgURI, nq.SSMURI(ssm.CorePerformanceImpact), performanceImpact)
		}

		if c.expandPopulation {
			minURI := nq.SSMURI(uris.Min)
			maxURI := nq.SSMURI(uris.Max)
			variants := []struct{ uri, label string }{{minURI, labels.Min}, {maxURI, labels.Max}}
			for _, v := range variants {
				variant, label := v.uri, v.label
				c.quad(variant, nq.RDFURI(ssm.RDFType), typ)
				c.quad(variant, nq.RDFSURI(ssm.RDFSComment), comment)
				c.quad(variant, nq.RDFSURI(ssm.RDFSLabel), nq.String(label))
				c.quad(variant, nq.SSMURI(ssm.CoreIsVisible), minmaxVisible)
				if isControl {
					c.quad(variant, nq.SSMURI(ssm.CoreUnitCost), unitCost)
					c.quad(variant, nq.SSMURI(ssm.CorePerformanceImpact), performanceImpact)
				}
			}

			c.quad(avgURI, nq.SSMURI(ssm.CoreHasMin), minURI)
			c.quad(avgURI, nq.SSMURI(ssm.CoreHasMax), maxURI)
			c.quad(minURI, nq.SSMURI(ssm.CoreMinOf), avgURI)
			c.quad(maxURI, nq.SSMURI(ssm.CoreMaxOf), avgURI)
		}

		c.spacer()

		catalog.Put(rawURI, strings.TrimPrefix(rawURI, "domain#"))
	}

	c.spacer()

	return c.convertEntityLocations(fam.locFile)
}

// convertEntityLocations converts the locations table of one population
// entity family, declaring the asset classes each entity can attach to.
func (c *Converter) convertEntityLocations(filename string) error {
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
	locCol, err := t.Bind("metaLocatedAt")
	if err != nil {
		return err
	}

	for _, row := range t.Rows() {
		if !c.inPackage(row.Get(packageCol)) {
			continue
		}
		uris := expandMinMax(row.Get(uriCol))
		locatedAt := nq.SSMURI(row.Get(locCol))

		c.quad(nq.SSMURI(uris.Avg), nq.SSMURI(ssm.CoreMetaLocatedAt), locatedAt)
		if c.expandPopulation {
			c.quad(nq.SSMURI(uris.Min), nq.SSMURI(ssm.CoreMetaLocatedAt), locatedAt)
			c.quad(nq.SSMURI(uris.Max), nq.SSMURI(ssm.CoreMetaLocatedAt), locatedAt)
		}
	}

	c.spacer()
	return nil
}
