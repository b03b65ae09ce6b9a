package convert

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Spyderisk/domain-csv2nq/nq"
	"github.com/Spyderisk/domain-csv2nq/tables"
	"github.com/Spyderisk/domain-csv2nq/vocabulary/ssm"
)

// strategyPopulationPrefix returns the disambiguating prefix for min/max
// expansion of a control strategy identifier. CSG URIs take the form
// domain#CSG-Body or domain#CSG-Body-Tail and the suffixes are inserted
// after the CSG-Body part.
func strategyPopulationPrefix(uri string) (string, error) {
	bits := strings.Split(strings.TrimPrefix(uri, "domain#"), "-")
	if len(bits) < 2 {
		return "", fmt.Errorf("control strategy URI has invalid form (needs at least one hyphen): %s", uri)
	}
	return bits[0] + "-" + bits[1], nil
}

// convertControlStrategies converts ControlStrategy.csv and its control set
// membership table.
func (c *Converter) convertControlStrategies(heading string) error {
	c.section(heading)

	t, err := tables.Open(c.opts.Input, "ControlStrategy.csv")
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
	blockingCol, err := t.Bind("hasBlockingEffect")
	if err != nil {
		return err
	}
	riskFlags := c.features.Has(ssm.FeatureRiskTypeFlags)
	var currentRiskCol, futureRiskCol tables.Column
	if riskFlags {
		if currentRiskCol, err = t.Bind("currentRisk"); err != nil {
			return err
		}
		if futureRiskCol, err = t.Bind("futureRisk"); err != nil {
			return err
		}
	}

	for _, row := range t.Rows() {
		if !c.inPackage(row.Get(packageCol)) {
			continue
		}
		rawURI := row.Get(uriCol)
		prefix, err := strategyPopulationPrefix(rawURI)
		if err != nil {
			return err
		}
		uris, multiple, err := expandMinMaxAt(rawURI, prefix)
		if err != nil {
			return fmt.Errorf("%s %s: %w", t.Name, rawURI, err)
		}
		if multiple {
			c.log.Warn("Control strategy URI contains its population marker more than once, used the first occurrence",
				slog.String("uri", rawURI), slog.String("marker", prefix))
		}

		uri := nq.SSMURI(uris.Avg)
		pkg := nq.SSMURI(packageResource(row.Get(packageCol)))

		c.quad(uri, nq.RDFURI(ssm.RDFType), nq.SSMURI(ssm.CoreControlStrategy))
		c.quad(uri, nq.SSMURI(ssm.CoreInPackage), pkg)
		c.quad(uri, nq.RDFSURI(ssm.RDFSComment), nq.String(row.Get(commentCol)))
		c.quad(uri, nq.RDFSURI(ssm.RDFSLabel), nq.String(row.Get(labelCol)))
		c.quad(uri, nq.SSMURI(ssm.CoreHasBlockingEffect), nq.SSMURI(row.Get(blockingCol)))
		if riskFlags {
			currentRisk, err := nq.Boolean(row.Get(currentRiskCol))
			if err != nil {
				return fmt.Errorf("%s %s: %w", t.Name, rawURI, err)
			}
			futureRisk, err := nq.Boolean(row.Get(futureRiskCol))
			if err != nil {
				return fmt.Errorf("%s %s: %w", t.Name, rawURI, err)
			}
			c.quad(uri, nq.SSMURI(ssm.CoreIsCurrentRisk), currentRisk)
			c.quad(uri, nq.SSMURI(ssm.CoreIsFutureRisk), futureRisk)
		}
		if c.expandPopulation {
			c.quad(uri, nq.SSMURI(ssm.CoreHasMin), nq.SSMURI(uris.Min))
			c.quad(uri, nq.SSMURI(ssm.CoreHasMax), nq.SSMURI(uris.Max))
		}

		c.spacer()
	}

	c.spacer()

	return c.convertControlStrategyControls()
}

func (c *Converter) convertControlStrategyControls() error {
	t, err := tables.Open(c.opts.Input, "ControlStrategyControls.csv")
	if err != nil {
		return err
	}
	packageCol, err := t.Bind("package")
	if err != nil {
		return err
	}
	uriCol, err := t.Bind("URI")
	if err != nil {
		return err
	}
	setCol, err := t.Bind("hasControlSet")
	if err != nil {
		return err
	}
	optionalCol, err := t.Bind("optional")
	if err != nil {
		return err
	}

	for _, row := range t.Rows() {
		if !c.inPackage(row.Get(packageCol)) {
			continue
		}
		predicate := ssm.CoreHasMandatoryCS
		if strings.EqualFold(row.Get(optionalCol), "true") {
			predicate = ssm.CoreHasOptionalCS
		}
		c.quad(nq.SSMURI(row.Get(uriCol)), nq.SSMURI(predicate), nq.SSMURI(row.Get(setCol)))

		if err := c.noteSet(row.Get(setCol), ControlSetKind); err != nil {
			return err
		}
	}

	c.spacer()
	return nil
}
