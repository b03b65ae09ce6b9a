package convert

import (
	"fmt"
	"strings"

	"github.com/Spyderisk/domain-csv2nq/nq"
	"github.com/Spyderisk/domain-csv2nq/tables"
	"github.com/Spyderisk/domain-csv2nq/vocabulary/ssm"
)

// convertConstructionPatterns converts ConstructionPattern.csv with its
// inferred node, include and link tables. With the construction dependency
// feature, priorities come from the computed sequence ranks instead of the
// hasPriority column, and rows flagged as marker patterns are dropped from
// the output.
func (c *Converter) convertConstructionPatterns(heading string) error {
	c.section(heading)

	dependencies := c.features.Has(ssm.FeatureConstructionDependencies)
	if dependencies {
		if err := c.buildConstructionSequence(); err != nil {
			return err
		}
		if c.trace != nil {
			if err := c.writeSequenceTrace("Construction pattern sequence"); err != nil {
				return err
			}
		}
	}

	t, err := tables.Open(c.opts.Input, "ConstructionPattern.csv")
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
	matchingCol, err := t.Bind("hasMatchingPattern")
	if err != nil {
		return err
	}
	var priorityCol, markerCol tables.Column
	useMarker := false
	if dependencies {
		if useMarker = t.HasColumn("marker"); useMarker {
			if markerCol, err = t.Bind("marker"); err != nil {
				return err
			}
		}
	} else {
		if priorityCol, err = t.Bind("hasPriority"); err != nil {
			return err
		}
	}
	iterateCol, err := t.Bind("iterate")
	if err != nil {
		return err
	}
	maxIterCol, err := t.Bind("maxIterations")
	if err != nil {
		return err
	}

	for _, row := range t.Rows() {
		if !c.inPackage(row.Get(packageCol)) {
			continue
		}
		rawURI := row.Get(uriCol)

		var hasPriority string
		if dependencies {
			rank, ok := c.cpSequence.Get(rawURI)
			if !ok {
				return fmt.Errorf("construction pattern %s has no sequence rank", rawURI)
			}
			hasPriority = nq.IntegerValue(rank)
			if useMarker && strings.EqualFold(row.Get(markerCol), "true") {
				continue
			}
		} else {
			if hasPriority, err = nq.Integer(row.Get(priorityCol)); err != nil {
				return fmt.Errorf("%s %s: %w", t.Name, rawURI, err)
			}
		}
		iterate, err := nq.Boolean(row.Get(iterateCol))
		if err != nil {
			return fmt.Errorf("%s %s: %w", t.Name, rawURI, err)
		}
		maxIterations, err := nq.Integer(row.Get(maxIterCol))
		if err != nil {
			return fmt.Errorf("%s %s: %w", t.Name, rawURI, err)
		}

		uri := nq.SSMURI(rawURI)
		pkg := nq.SSMURI(packageResource(row.Get(packageCol)))

		c.quad(uri, nq.RDFURI(ssm.RDFType), nq.SSMURI(ssm.CoreConstructionPattern))
		c.quad(uri, nq.SSMURI(ssm.CoreInPackage), pkg)
		c.quad(uri, nq.RDFSURI(ssm.RDFSLabel), nq.String(row.Get(labelCol)))
		c.quad(uri, nq.RDFSURI(ssm.RDFSComment), nq.String(row.Get(commentCol)))
		c.quad(uri, nq.SSMURI(ssm.CoreHasMatchingPattern), nq.SSMURI(row.Get(matchingCol)))
		c.quad(uri, nq.SSMURI(ssm.CoreHasPriority), hasPriority)
		c.quad(uri, nq.SSMURI(ssm.CoreIterate), iterate)
		c.quad(uri, nq.SSMURI(ssm.CoreMaxIterations), maxIterations)

		c.spacer()
	}

	c.spacer()

	if err := c.convertInferredNodeSettings(); err != nil {
		return err
	}
	if err := c.convertReferenceTable("InferredNodeSettingIncludes.csv", "includesNodeInURI", nq.SSMURI(ssm.CoreIncludesNodeInURI)); err != nil {
		return err
	}
	return c.convertInferredLinks()
}

func (c *Converter) convertInferredNodeSettings() error {
	t, err := tables.Open(c.opts.Input, "InferredNodeSetting.csv")
	if err != nil {
		return err
	}
	packageCol, err := t.Bind("package")
	if err != nil {
		return err
	}
	patternCol, err := t.Bind("inPattern")
	if err != nil {
		return err
	}
	nodeCol, err := t.Bind("hasNode")
	if err != nil {
		return err
	}
	settingCol, err := t.Bind("hasSetting")
	if err != nil {
		return err
	}
	atNodeCol, err := t.Bind("displayedAtNode")
	if err != nil {
		return err
	}
	if _, err := t.Bind("displayedAtLink"); err != nil {
		return err
	}
	atCol, err := t.Bind("displayedAt")
	if err != nil {
		return err
	}

	for _, row := range t.Rows() {
		if !c.inPackage(row.Get(packageCol)) {
			continue
		}
		inPattern := nq.SSMURI(row.Get(patternCol))
		hasNode := nq.SSMURI(row.Get(nodeCol))
		hasSetting := nq.SSMURI(row.Get(settingCol))
		displayedAt := nq.SSMURI(row.Get(atCol))

		c.quad(inPattern, nq.SSMURI(ssm.CoreHasInferredNode), hasNode)
		c.quad(inPattern, nq.SSMURI(ssm.CoreHasInferredNodeSetting), hasSetting)
		c.quad(hasSetting, nq.RDFURI(ssm.RDFType), nq.SSMURI(ssm.CoreInferredNodeSetting))
		c.quad(hasSetting, nq.SSMURI(ssm.CoreHasNode), hasNode)
		if strings.EqualFold(row.Get(atNodeCol), "true") {
			c.quad(hasSetting, nq.SSMURI(ssm.CoreDisplayedAtNode), displayedAt)
		} else {
			c.quad(hasSetting, nq.SSMURI(ssm.CoreDisplayedAtLink), displayedAt)
		}

		if err := c.noteNode(row.Get(nodeCol)); err != nil {
			return err
		}

		c.spacer()
	}

	c.spacer()
	return nil
}

func (c *Converter) convertInferredLinks() error {
	t, err := tables.Open(c.opts.Input, "ConstructionPatternLinks.csv")
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
	linkCol, err := t.Bind("hasInferredLink")
	if err != nil {
		return err
	}

	for _, row := range t.Rows() {
		if !c.inPackage(row.Get(packageCol)) {
			continue
		}
		c.quad(nq.SSMURI(row.Get(uriCol)), nq.SSMURI(ssm.CoreHasInferredLink), nq.SSMURI(row.Get(linkCol)))

		if err := c.noteLink(row.Get(linkCol)); err != nil {
			return err
		}
	}

	c.spacer()
	return nil
}
