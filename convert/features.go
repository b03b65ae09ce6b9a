package convert

import (
	"log/slog"
	"strings"

	"github.com/Spyderisk/domain-csv2nq/nq"
	"github.com/Spyderisk/domain-csv2nq/tables"
	"github.com/Spyderisk/domain-csv2nq/vocabulary/ssm"
)

// loadFeatures reads DomainFeature.csv, if present, into the active feature
// set. A PopulationModel row is forced unsupported when expansion was not
// requested on the command line, so the declared feature list never
// promises triplets the output does not carry.
func (c *Converter) loadFeatures() error {
	if !tables.Exists(c.opts.Input, "DomainFeature.csv") {
		return nil
	}
	t, err := tables.Open(c.opts.Input, "DomainFeature.csv")
	if err != nil {
		return err
	}
	uriCol, err := t.Bind("URI")
	if err != nil {
		return err
	}
	if _, err := t.Bind("comment"); err != nil {
		return err
	}
	supportedCol, err := t.Bind("supported")
	if err != nil {
		return err
	}

	for _, row := range t.Rows() {
		uri := row.Get(uriCol)
		var supported bool
		if uri == ssm.FeaturePopulationModel && !c.opts.Expanded {
			c.log.Warn("Domain model specifies population support, but this was suppressed by the command line")
		} else {
			supported = strings.EqualFold(row.Get(supportedCol), "true")
		}
		if supported {
			c.features.Add(uri)
		} else {
			c.log.Warn("Feature is included but not supported", slog.String("uri", uri))
		}
	}

	if c.opts.Expanded && !c.features.Has(ssm.FeaturePopulationModel) {
		c.log.Warn("Population support was selected via the command line, but is not supported by this domain model")
	}
	return nil
}

// convertPackages reads Packages.csv, emits one resource per package and
// records the enabled ones. Enablement defaults to true; only when the
// OptionalPackages feature is active does the Enabled column govern.
func (c *Converter) convertPackages() error {
	t, err := tables.Open(c.opts.Input, "Packages.csv")
	if err != nil {
		return err
	}
	uriCol, err := t.Bind("URI")
	if err != nil {
		return err
	}
	labelCol, err := t.Bind("Label")
	if err != nil {
		return err
	}
	commentCol, err := t.Bind("Description")
	if err != nil {
		return err
	}
	optional := c.features.Has(ssm.FeatureOptionalPackages)
	var enabledCol tables.Column
	if optional {
		if enabledCol, err = t.Bind("Enabled"); err != nil {
			return err
		}
	}

	for _, row := range t.Rows() {
		rawURI := row.Get(uriCol)
		uri := nq.SSMURI(packageResource(rawURI))
		label := nq.String(row.Get(labelCol))
		comment := nq.String(row.Get(commentCol))

		isEnabled := true
		if optional {
			isEnabled = strings.EqualFold(row.Get(enabledCol), "true")
		}
		var enabled string
		if isEnabled {
			c.packages.Add(rawURI)
			enabled, _ = nq.Boolean("true")
		} else {
			c.log.Warn("Package is included but not enabled", slog.String("uri", rawURI))
			enabled, _ = nq.Boolean("false")
		}

		c.quad(uri, nq.RDFURI(ssm.RDFType), nq.SSMURI(ssm.CoreModelPackage))
		c.quad(uri, nq.RDFSURI(ssm.RDFSLabel), label)
		c.quad(uri, nq.RDFSURI(ssm.RDFSComment), comment)
		if optional {
			c.quad(uri, nq.SSMURI(ssm.CoreEnabled), enabled)
		}
	}

	c.log.Info("Domain model packages enabled", slog.Any("packages", c.packages.Keys()))
	c.spacer()
	return nil
}

// packageResource rewrites a package# reference to its resource form under
// the domain namespace.
func packageResource(uri string) string {
	return strings.Replace(uri, "package#", "domain#Package-", 1)
}
