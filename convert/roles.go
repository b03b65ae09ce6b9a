package convert

import (
	"strings"

	"github.com/Spyderisk/domain-csv2nq/nq"
	"github.com/Spyderisk/domain-csv2nq/tables"
	"github.com/Spyderisk/domain-csv2nq/vocabulary/ssm"
)

// convertRoles converts Role.csv and RoleLocations.csv, populating the role
// catalog that anchors every composite identifier parse.
func (c *Converter) convertRoles(heading string) error {
	c.section(heading)

	t, err := tables.Open(c.opts.Input, "Role.csv")
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
		rawURI := row.Get(uriCol)
		uri := nq.SSMURI(rawURI)
		pkg := nq.SSMURI(packageResource(row.Get(packageCol)))

		c.quad(uri, nq.RDFURI(ssm.RDFType), nq.SSMURI(ssm.CoreRole))
		c.quad(uri, nq.SSMURI(ssm.CoreInPackage), pkg)
		c.quad(uri, nq.RDFSURI(ssm.RDFSLabel), nq.String(row.Get(labelCol)))
		c.quad(uri, nq.RDFSURI(ssm.RDFSComment), nq.String(row.Get(commentCol)))

		c.spacer()

		c.roles.Put(rawURI, strings.TrimPrefix(rawURI, "domain#Role_"))
	}

	c.spacer()

	return c.convertReferenceTable("RoleLocations.csv", "metaLocatedAt", nq.SSMURI(ssm.CoreMetaLocatedAt))
}
