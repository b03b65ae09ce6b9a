package convert

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Spyderisk/domain-csv2nq/nq"
	"github.com/Spyderisk/domain-csv2nq/tables"
	"github.com/Spyderisk/domain-csv2nq/vocabulary/ssm"
)

// convertThreatCategories converts ThreatCategory.csv. Threat categories
// are not packaged, they belong to the core.
func (c *Converter) convertThreatCategories(heading string) error {
	c.section(heading)

	t, err := tables.Open(c.opts.Input, "ThreatCategory.csv")
	if err != nil {
		return err
	}
	uriCol, err := t.Bind("URI")
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

	for _, row := range t.Rows() {
		uri := nq.SSMURI(row.Get(uriCol))

		c.quad(uri, nq.RDFURI(ssm.RDFType), nq.SSMURI(ssm.CoreThreatCategory))
		c.quad(uri, nq.RDFSURI(ssm.RDFSLabel), nq.String(row.Get(labelCol)))
		c.quad(uri, nq.RDFSURI(ssm.RDFSComment), nq.String(row.Get(commentCol)))

		c.spacer()
	}

	c.spacer()
	return nil
}

// convertComplianceSets converts ComplianceSet.csv and its threat
// membership table.
func (c *Converter) convertComplianceSets(heading string) error {
	c.section(heading)

	t, err := tables.Open(c.opts.Input, "ComplianceSet.csv")
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

	for _, row := range t.Rows() {
		if !c.inPackage(row.Get(packageCol)) {
			continue
		}
		uri := nq.SSMURI(row.Get(uriCol))

		c.quad(uri, nq.RDFURI(ssm.RDFType), nq.SSMURI(ssm.CoreComplianceSet))
		c.quad(uri, nq.RDFSURI(ssm.RDFSLabel), nq.String(row.Get(labelCol)))
		c.quad(uri, nq.RDFSURI(ssm.RDFSComment), nq.String(row.Get(commentCol)))

		c.spacer()
	}

	c.spacer()

	return c.convertReferenceTable("ComplianceSetThreats.csv", "requiresTreatmentOf", nq.SSMURI(ssm.CoreRequiresTreatmentOf))
}

// threatPopulationPrefix returns the disambiguating prefix for min/max
// expansion of a threat identifier. Threat URIs take the form
// domain#Target.Effect.Pattern.Tail and the suffixes are inserted after
// the Target.Effect part.
func threatPopulationPrefix(uri string) (string, error) {
	bits := strings.Split(strings.TrimPrefix(uri, "domain#"), ".")
	if len(bits) < 4 {
		return "", fmt.Errorf("threat URI has invalid form (needs at least 3 fullstops): %s", uri)
	}
	return bits[0] + "." + bits[1], nil
}

// convertThreats converts Threat.csv and the entry point, secondary effect
// condition, effect and control strategy relationship tables. Entry points
// imply both a trustworthiness attribute set and, via the TWIS mapping, the
// misbehaviour set eroding it, so both caches are fed here.
func (c *Converter) convertThreats(heading string) error {
	c.section(heading)

	t, err := tables.Open(c.opts.Input, "Threat.csv")
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
	categoryCol, err := t.Bind("hasCategory")
	if err != nil {
		return err
	}
	appliesToCol, err := t.Bind("appliesTo")
	if err != nil {
		return err
	}
	threatensCol, err := t.Bind("threatens")
	if err != nil {
		return err
	}
	frequencyCol, err := t.Bind("hasFrequency")
	if err != nil {
		return err
	}
	currentRiskCol, err := t.Bind("currentRisk")
	if err != nil {
		return err
	}
	futureRiskCol, err := t.Bind("futureRisk")
	if err != nil {
		return err
	}
	riskFlags := c.features.Has(ssm.FeatureRiskTypeFlags)
	threatFlags := c.features.Has(ssm.FeatureThreatTypeFlags)
	var secondaryCol, normalOpCol tables.Column
	if threatFlags {
		if secondaryCol, err = t.Bind("secondaryThreat"); err != nil {
			return err
		}
		if normalOpCol, err = t.Bind("normalOperation"); err != nil {
			return err
		}
	}

	for _, row := range t.Rows() {
		if !c.inPackage(row.Get(packageCol)) {
			continue
		}
		rawURI := row.Get(uriCol)
		prefix, err := threatPopulationPrefix(rawURI)
		if err != nil {
			return err
		}
		uris, multiple, err := expandMinMaxAt(rawURI, prefix)
		if err != nil {
			return fmt.Errorf("%s %s: %w", t.Name, rawURI, err)
		}
		if multiple {
			c.log.Warn("Threat URI contains its population marker more than once, used the first occurrence",
				slog.String("uri", rawURI), slog.String("marker", prefix))
		}

		uri := nq.SSMURI(uris.Avg)
		pkg := nq.SSMURI(packageResource(row.Get(packageCol)))

		c.quad(uri, nq.RDFURI(ssm.RDFType), nq.SSMURI(ssm.CoreThreat))
		c.quad(uri, nq.SSMURI(ssm.CoreInPackage), pkg)
		c.quad(uri, nq.RDFSURI(ssm.RDFSLabel), nq.String(row.Get(labelCol)))
		c.quad(uri, nq.RDFSURI(ssm.RDFSComment), nq.String(row.Get(commentCol)))
		c.quad(uri, nq.SSMURI(ssm.CoreHasCategory), nq.SSMURI(row.Get(categoryCol)))
		c.quad(uri, nq.SSMURI(ssm.CoreAppliesTo), nq.SSMURI(row.Get(appliesToCol)))
		c.quad(uri, nq.SSMURI(ssm.CoreThreatens), nq.SSMURI(row.Get(threatensCol)))

		// Compliance threats carry no frequency and none of the flags.
		if row.Get(frequencyCol) != "" {
			c.quad(uri, nq.SSMURI(ssm.CoreHasFrequency), nq.SSMURI(row.Get(frequencyCol)))
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
			if threatFlags {
				secondary, err := nq.Boolean(row.Get(secondaryCol))
				if err != nil {
					return fmt.Errorf("%s %s: %w", t.Name, rawURI, err)
				}
				normalOp, err := nq.Boolean(row.Get(normalOpCol))
				if err != nil {
					return fmt.Errorf("%s %s: %w", t.Name, rawURI, err)
				}
				c.quad(uri, nq.SSMURI(ssm.CoreIsSecondaryThreat), secondary)
				c.quad(uri, nq.SSMURI(ssm.CoreIsNormalOp), normalOp)
			}
			if c.expandPopulation {
				c.quad(uri, nq.SSMURI(ssm.CoreHasMin), nq.SSMURI(uris.Min))
				c.quad(uri, nq.SSMURI(ssm.CoreHasMax), nq.SSMURI(uris.Max))
			}
		}

		c.spacer()
	}

	c.spacer()

	if err := c.convertThreatEntryPoints(); err != nil {
		return err
	}
	if err := c.convertThreatSECs(); err != nil {
		return err
	}
	if err := c.convertThreatEffects(); err != nil {
		return err
	}

	if err := c.convertReferenceTable("ControlStrategyBlocks.csv", "blocks", nq.SSMURI(ssm.CoreBlocks)); err != nil {
		return err
	}
	if err := c.convertReferenceTable("ControlStrategyMitigates.csv", "mitigates", nq.SSMURI(ssm.CoreMitigates)); err != nil {
		return err
	}
	return c.convertReferenceTable("ControlStrategyTriggers.csv", "triggers", nq.SSMURI(ssm.CoreTriggers))
}

func (c *Converter) convertThreatEntryPoints() error {
	t, err := tables.Open(c.opts.Input, "ThreatEntryPoints.csv")
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
	entryCol, err := t.Bind("hasEntryPoint")
	if err != nil {
		return err
	}

	for _, row := range t.Rows() {
		if !c.inPackage(row.Get(packageCol)) {
			continue
		}
		twasURI := row.Get(entryCol)

		c.quad(nq.SSMURI(row.Get(uriCol)), nq.SSMURI(ssm.CoreHasEntryPoint), nq.SSMURI(twasURI))

		if err := c.noteSet(twasURI, TWASetKind); err != nil {
			return err
		}

		// The misbehaviour eroding the entry point's attribute defines a
		// misbehaviour set at the same role, needed by the validator.
		set, _ := c.twaSets.Get(twasURI)
		misbehaviour, ok := c.twaMisbehaviour[set.Entity]
		if !ok {
			return fmt.Errorf("trustworthiness attribute %s has no impact set defining its misbehaviour", set.Entity)
		}
		twasPrefix := strings.Replace(set.Entity, "domain#", "domain#TWAS-", 1)
		msPrefix := strings.Replace(misbehaviour, "domain#", "domain#MS-", 1)
		msURI := strings.Replace(twasURI, twasPrefix, msPrefix, 1)
		if err := c.noteSet(msURI, MisbehaviourSetKind); err != nil {
			return err
		}
	}

	c.spacer()
	return nil
}

func (c *Converter) convertThreatSECs() error {
	return c.convertMisbehaviourSetTable("ThreatSEC.csv", "hasSecondaryEffectCondition", ssm.CoreHasSecondaryEffectCondition)
}

func (c *Converter) convertThreatEffects() error {
	return c.convertMisbehaviourSetTable("ThreatEffects.csv", "causesMisbehaviour", ssm.CoreCausesMisbehaviour)
}

// convertMisbehaviourSetTable converts a threat relationship table whose
// object column names a misbehaviour set, noting each set for emission.
func (c *Converter) convertMisbehaviourSetTable(filename, column, predicate string) error {
	t, err := tables.Open(c.opts.Input, filename)
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
	setCol, err := t.Bind(column)
	if err != nil {
		return err
	}

	for _, row := range t.Rows() {
		if !c.inPackage(row.Get(packageCol)) {
			continue
		}
		c.quad(nq.SSMURI(row.Get(uriCol)), nq.SSMURI(predicate), nq.SSMURI(row.Get(setCol)))

		if err := c.noteSet(row.Get(setCol), MisbehaviourSetKind); err != nil {
			return err
		}
	}

	c.spacer()
	return nil
}
