package convert

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Spyderisk/domain-csv2nq/nq"
	"github.com/Spyderisk/domain-csv2nq/tables"
	"github.com/Spyderisk/domain-csv2nq/vocabulary/ssm"
)

// convertDomainModel loads the feature set, converts the DomainModel.csv
// header row (which decides the named graph for the whole run), declares
// the supported features and converts the package table.
func (c *Converter) convertDomainModel(heading string) error {
	c.section(heading)

	if err := c.loadFeatures(); err != nil {
		return err
	}

	t, err := tables.Open(c.opts.Input, "DomainModel.csv")
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
	graphCol, err := t.Bind("domainGraph")
	if err != nil {
		return err
	}
	reasonerCol, err := t.Bind("reasonerClass")
	if err != nil {
		return err
	}
	rows := t.Rows()
	if len(rows) == 0 {
		return fmt.Errorf("table %s has no data row", t.Name)
	}
	row := rows[0]

	uri := nq.SSMURI(row.Get(uriCol))

	domainGraph := row.Get(graphCol)
	if c.opts.GraphName != "" {
		frags := strings.Split(domainGraph, "/")
		frags[len(frags)-1] = c.opts.GraphName
		domainGraph = strings.Join(frags, "/")
	}
	label := row.Get(labelCol)
	if c.opts.Label != "" {
		label = c.opts.Label
	}

	if !c.opts.Expanded && c.features.Has(ssm.FeaturePopulationModel) {
		// Unreachable once loadFeatures has forced suppression; kept so
		// the unexpanded-model header contract survives any future
		// change to that forcing.
		domainGraph += "-unexpanded"
		label += "-UNEXPANDED"
		c.features.Remove(ssm.FeaturePopulationModel)
	}

	versionInfo := c.opts.VersionInfo
	if c.opts.Unfiltered {
		versionInfo += "-unfiltered"
	}

	c.nqw.SetGraph(domainGraph)

	c.quad(uri, nq.OWLURI(ssm.OWLImports), nq.SSMURI("core"))
	c.quad(uri, nq.RDFURI(ssm.RDFType), nq.OWLURI(ssm.OWLOntology))
	c.quad(uri, nq.SSMURI(ssm.CoreDomainGraph), fmt.Sprintf("<%s>", domainGraph))
	c.quad(uri, nq.OWLURI(ssm.OWLVersionInfo), nq.String(versionInfo))
	c.quad(uri, nq.SSMURI(ssm.CoreReasonerClass), nq.String(row.Get(reasonerCol)))
	c.quad(uri, nq.RDFSURI(ssm.RDFSLabel), nq.String(label))
	c.quad(uri, nq.RDFSURI(ssm.RDFSComment), nq.String(row.Get(commentCol)))

	c.spacer()

	c.log.Info("Domain model feature list", slog.Any("features", c.features.Keys()))
	for _, featureRef := range c.features.Keys() {
		feature := nq.SSMURI(strings.Replace(featureRef, "feature#", "domain#Feature-", 1))
		c.quad(feature, nq.RDFURI(ssm.RDFType), nq.SSMURI(ssm.CoreModelFeature))
	}

	c.spacer()

	return c.convertPackages()
}
