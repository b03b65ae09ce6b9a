package convert

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/Spyderisk/domain-csv2nq/tables"
	"github.com/Spyderisk/domain-csv2nq/vocabulary/ssm"
)

// iconMapping is the JSON document consumed by the modelling tool GUI,
// pairing asset classes with their icons.
type iconMapping struct {
	Ontology          string            `json:"ontology"`
	Graph             string            `json:"graph"`
	DefaultUserAccess bool              `json:"defaultUserAccess"`
	Icons             map[string]string `json:"icons"`
}

// WriteMapping writes the icon mapping document for the converted model.
// It must run after Run so the named graph is known.
func (c *Converter) WriteMapping(out io.Writer) error {
	t, err := tables.Open(c.opts.Input, "DomainAsset.csv")
	if err != nil {
		return err
	}
	uriCol, err := t.Bind("URI")
	if err != nil {
		return err
	}
	iconCol, err := t.Bind("icon")
	if err != nil {
		return err
	}

	graph := c.Graph()
	frags := strings.Split(graph, "/")
	doc := iconMapping{
		Ontology:          frags[len(frags)-1],
		Graph:             graph,
		DefaultUserAccess: true,
		Icons:             make(map[string]string),
	}
	for _, row := range t.Rows() {
		if icon := row.Get(iconCol); icon != "" {
			doc.Icons[ssm.SSMPrefix+"/"+row.Get(uriCol)] = icon
		}
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "    ")
	return enc.Encode(doc)
}
