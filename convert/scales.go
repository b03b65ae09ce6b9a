package convert

import (
	"fmt"
	"strconv"

	"github.com/Spyderisk/domain-csv2nq/nq"
	"github.com/Spyderisk/domain-csv2nq/tables"
	"github.com/Spyderisk/domain-csv2nq/vocabulary/ssm"
)

// convertScale converts one level scale table (likelihood, impact, risk,
// population, cost, performance or trustworthiness). It returns the saved
// end of the scale: the highest level when saveHighest is set, otherwise
// the level whose value is zero. Scale tables are not packaged.
func (c *Converter) convertScale(saveHighest bool, filename, entity, heading string) (string, error) {
	c.section(heading)

	t, err := tables.Open(c.opts.Input, filename)
	if err != nil {
		return "", err
	}
	uriCol, err := t.Bind("URI")
	if err != nil {
		return "", err
	}
	labelCol, err := t.Bind("label")
	if err != nil {
		return "", err
	}
	commentCol, err := t.Bind("comment")
	if err != nil {
		return "", err
	}
	levelCol, err := t.Bind("levelValue")
	if err != nil {
		return "", err
	}

	savedValue := -1
	savedURI := ""

	for _, row := range t.Rows() {
		rawURI := row.Get(uriCol)
		levelValue, err := nq.Integer(row.Get(levelCol))
		if err != nil {
			return "", fmt.Errorf("%s %s: %w", t.Name, rawURI, err)
		}
		newValue, _ := strconv.Atoi(row.Get(levelCol))

		if saveHighest {
			if savedValue < newValue {
				savedValue = newValue
				savedURI = rawURI
			}
		} else if newValue == 0 {
			savedURI = rawURI
		}

		uri := nq.SSMURI(rawURI)
		c.quad(uri, nq.RDFURI(ssm.RDFType), nq.SSMURI("core#"+entity))
		c.quad(uri, nq.RDFSURI(ssm.RDFSLabel), nq.String(row.Get(labelCol)))
		c.quad(uri, nq.RDFSURI(ssm.RDFSComment), nq.String(row.Get(commentCol)))
		c.quad(uri, nq.SSMURI(ssm.CoreLevelValue), levelValue)

		c.spacer()
	}

	c.spacer()
	return savedURI, nil
}
