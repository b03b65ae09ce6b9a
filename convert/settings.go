package convert

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Spyderisk/domain-csv2nq/nq"
	"github.com/Spyderisk/domain-csv2nq/tables"
	"github.com/Spyderisk/domain-csv2nq/vocabulary/ssm"
)

// convertCASettings converts CASetting.csv. The modelling tool needs an
// isAssertable property on every control variant, so with population
// expansion the min and max coverage settings are written out too.
func (c *Converter) convertCASettings(heading string) error {
	c.section(heading)

	t, err := tables.Open(c.opts.Input, "CASetting.csv")
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
	controlCol, err := t.Bind("hasControl")
	if err != nil {
		return err
	}
	assertableCol, err := t.Bind("isAssertable")
	if err != nil {
		return err
	}
	levelCol, err := t.Bind("hasLevel")
	if err != nil {
		return err
	}
	independentCol, err := t.Bind("independentLevels")
	if err != nil {
		return err
	}

	typ := nq.SSMURI(ssm.CoreCASetting)

	for _, row := range t.Rows() {
		if !c.inPackage(row.Get(packageCol)) {
			continue
		}
		rawURI := row.Get(uriCol)
		control := strings.TrimPrefix(row.Get(controlCol), "domain#")
		uris, multiple, err := expandMinMaxAt(rawURI, control)
		if err != nil {
			return fmt.Errorf("%s %s: %w", t.Name, rawURI, err)
		}
		if multiple {
			c.log.Warn("Setting URI contains its control reference more than once, used the first occurrence",
				slog.String("uri", rawURI), slog.String("marker", control))
		}
		controls := expandMinMax(row.Get(controlCol))

		asset := nq.SSMURI(row.Get(locCol))
		isAssertable, err := nq.Boolean(row.Get(assertableCol))
		if err != nil {
			return fmt.Errorf("%s %s: %w", t.Name, rawURI, err)
		}
		hasLevel := nq.SSMURI(row.Get(levelCol))
		independentLevels, err := c.independentLevels(row.Get(independentCol))
		if err != nil {
			return fmt.Errorf("%s %s: %w", t.Name, rawURI, err)
		}

		variants := []struct{ uri, control string }{{uris.Avg, controls.Avg}}
		if c.expandPopulation {
			variants = append(variants,
				struct{ uri, control string }{uris.Min, controls.Min},
				struct{ uri, control string }{uris.Max, controls.Max})
		}
		for _, v := range variants {
			uri := nq.SSMURI(v.uri)
			c.quad(uri, nq.RDFURI(ssm.RDFType), typ)
			c.quad(uri, nq.SSMURI(ssm.CoreHasControl), nq.SSMURI(v.control))
			c.quad(uri, nq.SSMURI(ssm.CoreMetaLocatedAt), asset)
			c.quad(uri, nq.SSMURI(ssm.CoreIsAssertable), isAssertable)
			c.quad(uri, nq.SSMURI(ssm.CoreHasLevel), hasLevel)
			c.quad(uri, nq.SSMURI(ssm.CoreIndependentLevels), independentLevels)
		}

		c.spacer()
	}

	c.spacer()
	return nil
}

// independentLevels encodes the level distribution flag. Without population
// expansion the column value is ignored and false is written, the property
// is meaningless for singleton assets.
func (c *Converter) independentLevels(value string) (string, error) {
	if !c.expandPopulation {
		return nq.Boolean("false")
	}
	return nq.Boolean(value)
}

// convertMADefaultSettings converts MADefaultSetting.csv. No population
// expansion is needed, the validator derives the variants itself.
func (c *Converter) convertMADefaultSettings(heading string) error {
	c.section(heading)

	t, err := tables.Open(c.opts.Input, "MADefaultSetting.csv")
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
	locCol, err := t.Bind("metaLocatedAt")
	if err != nil {
		return err
	}
	misbehaviourCol, err := t.Bind("hasMisbehaviour")
	if err != nil {
		return err
	}
	levelCol, err := t.Bind("hasLevel")
	if err != nil {
		return err
	}

	for _, row := range t.Rows() {
		if !c.inPackage(row.Get(packageCol)) {
			continue
		}
		uri := nq.SSMURI(row.Get(uriCol))

		c.quad(uri, nq.RDFURI(ssm.RDFType), nq.SSMURI(ssm.CoreMADefaultSetting))
		c.quad(uri, nq.SSMURI(ssm.CoreMetaLocatedAt), nq.SSMURI(row.Get(locCol)))
		c.quad(uri, nq.SSMURI(ssm.CoreHasMisbehaviour), nq.SSMURI(row.Get(misbehaviourCol)))
		c.quad(uri, nq.SSMURI(ssm.CoreHasLevel), nq.SSMURI(row.Get(levelCol)))

		c.spacer()
	}

	c.spacer()
	return nil
}

// convertTWAADefaultSettings converts TWAADefaultSetting.csv. As with
// misbehaviour defaults the variants are derived downstream.
func (c *Converter) convertTWAADefaultSettings(heading string) error {
	c.section(heading)

	t, err := tables.Open(c.opts.Input, "TWAADefaultSetting.csv")
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
	twaCol, err := t.Bind("hasTrustworthinessAttribute")
	if err != nil {
		return err
	}
	levelCol, err := t.Bind("hasLevel")
	if err != nil {
		return err
	}
	independentCol, err := t.Bind("independentLevels")
	if err != nil {
		return err
	}

	for _, row := range t.Rows() {
		if !c.inPackage(row.Get(packageCol)) {
			continue
		}
		rawURI := row.Get(uriCol)
		independentLevels, err := c.independentLevels(row.Get(independentCol))
		if err != nil {
			return fmt.Errorf("%s %s: %w", t.Name, rawURI, err)
		}
		uri := nq.SSMURI(rawURI)

		c.quad(uri, nq.RDFURI(ssm.RDFType), nq.SSMURI(ssm.CoreTWAADefaultSetting))
		c.quad(uri, nq.SSMURI(ssm.CoreMetaLocatedAt), nq.SSMURI(row.Get(locCol)))
		c.quad(uri, nq.SSMURI(ssm.CoreHasTrustworthinessAttribute), nq.SSMURI(row.Get(twaCol)))
		c.quad(uri, nq.SSMURI(ssm.CoreHasLevel), nq.SSMURI(row.Get(levelCol)))
		c.quad(uri, nq.SSMURI(ssm.CoreIndependentLevels), independentLevels)

		c.spacer()
	}

	c.spacer()
	return nil
}
