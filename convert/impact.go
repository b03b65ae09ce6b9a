package convert

import (
	"strings"

	"github.com/Spyderisk/domain-csv2nq/nq"
	"github.com/Spyderisk/domain-csv2nq/tables"
	"github.com/Spyderisk/domain-csv2nq/vocabulary/ssm"
)

// convertTWIS converts TWIS.csv, recording for later threat entry point
// derivation which misbehaviour erodes each trustworthiness attribute. When
// population expansion is on, the crossed min and max variants are emitted
// as well: a minimum attribute is affected by the maximum misbehaviour and
// vice versa.
func (c *Converter) convertTWIS(heading string) error {
	c.section(heading)

	t, err := tables.Open(c.opts.Input, "TWIS.csv")
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
	affectedByCol, err := t.Bind("affectedBy")
	if err != nil {
		return err
	}
	affectsCol, err := t.Bind("affects")
	if err != nil {
		return err
	}

	typ := nq.SSMURI(ssm.CoreTrustworthinessImpactSet)

	for _, row := range t.Rows() {
		if !c.inPackage(row.Get(packageCol)) {
			continue
		}
		uri := nq.SSMURI(row.Get(uriCol))
		affectedBy := row.Get(affectedByCol)
		affects := row.Get(affectsCol)

		c.twaMisbehaviour[affects] = affectedBy

		c.quad(uri, nq.RDFURI(ssm.RDFType), typ)
		c.quad(uri, nq.SSMURI(ssm.CoreAffectedBy), nq.SSMURI(affectedBy))
		c.quad(uri, nq.SSMURI(ssm.CoreAffects), nq.SSMURI(affects))

		if c.expandPopulation {
			affectedByRef := strings.TrimPrefix(affectedBy, "domain#")
			affectsRef := strings.TrimPrefix(affects, "domain#")

			minAffects := affectsRef + ssm.MinSuffix
			maxAffects := affectsRef + ssm.MaxSuffix
			minAffectedBy := affectedByRef + ssm.MinSuffix
			maxAffectedBy := affectedByRef + ssm.MaxSuffix

			crossed := nq.SSMURI("domain#TWIS-" + minAffects + "-" + maxAffectedBy)
			c.quad(crossed, nq.RDFURI(ssm.RDFType), typ)
			c.quad(crossed, nq.SSMURI(ssm.CoreAffects), nq.SSMURI("domain#"+minAffects))
			c.quad(crossed, nq.SSMURI(ssm.CoreAffectedBy), nq.SSMURI("domain#"+maxAffectedBy))

			crossed = nq.SSMURI("domain#TWIS-" + maxAffects + "-" + minAffectedBy)
			c.quad(crossed, nq.RDFURI(ssm.RDFType), typ)
			c.quad(crossed, nq.SSMURI(ssm.CoreAffects), nq.SSMURI("domain#"+maxAffects))
			c.quad(crossed, nq.SSMURI(ssm.CoreAffectedBy), nq.SSMURI("domain#"+minAffectedBy))
		}

		c.spacer()
	}

	c.spacer()
	return nil
}

// convertMIS converts MIS.csv. Only the average variant is emitted, the
// validator expands the population variants itself.
func (c *Converter) convertMIS(heading string) error {
	c.section(heading)

	t, err := tables.Open(c.opts.Input, "MIS.csv")
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
	inhibitedCol, err := t.Bind("inhibited")
	if err != nil {
		return err
	}
	inhibitedByCol, err := t.Bind("inhibitedBy")
	if err != nil {
		return err
	}

	for _, row := range t.Rows() {
		if !c.inPackage(row.Get(packageCol)) {
			continue
		}
		uri := nq.SSMURI(row.Get(uriCol))

		c.quad(uri, nq.RDFURI(ssm.RDFType), nq.SSMURI(ssm.CoreMisbehaviourInhibitionSet))
		c.quad(uri, nq.SSMURI(ssm.CoreInhibited), nq.SSMURI(row.Get(inhibitedCol)))
		c.quad(uri, nq.SSMURI(ssm.CoreInhibitedBy), nq.SSMURI(row.Get(inhibitedByCol)))
	}

	c.spacer()
	return nil
}
