package nq

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Spyderisk/domain-csv2nq/vocabulary/ssm"
)

// Boolean encodes a case-insensitive "true"/"false" string as a typed
// xsd:boolean literal. Any other value is an error.
func Boolean(b string) (string, error) {
	switch strings.ToLower(b) {
	case "true":
		return fmt.Sprintf("%q^^<%s#boolean>", "true", ssm.XMLPrefix), nil
	case "false":
		return fmt.Sprintf("%q^^<%s#boolean>", "false", ssm.XMLPrefix), nil
	default:
		return "", fmt.Errorf("cannot encode %q as a boolean", b)
	}
}

// Integer encodes integer text as a typed xsd:integer literal, preserving
// the source spelling.
func Integer(i string) (string, error) {
	if _, err := strconv.Atoi(i); err != nil {
		return "", fmt.Errorf("cannot encode %q as an integer", i)
	}
	return fmt.Sprintf("%q^^<%s#integer>", i, ssm.XMLPrefix), nil
}

// IntegerValue encodes a computed integer, used for scheduler-assigned
// construction pattern priorities.
func IntegerValue(i int) string {
	return fmt.Sprintf("%q^^<%s#integer>", strconv.Itoa(i), ssm.XMLPrefix)
}

// String encodes a plain string literal.
func String(s string) string {
	return fmt.Sprintf("%q", s)
}

// URI encoders return "" for empty input so that optional references (a
// compliance threat's missing frequency, for example) stay recognisably
// absent after encoding.

// RDFSURI encodes an rdf-schema# fragment under the RDFS prefix.
func RDFSURI(r string) string {
	if r == "" {
		return ""
	}
	return fmt.Sprintf("<%s/%s>", ssm.RDFSPrefix, r)
}

// RDFURI encodes a 22-rdf-syntax-ns# fragment under the RDF prefix.
func RDFURI(r string) string {
	if r == "" {
		return ""
	}
	return fmt.Sprintf("<%s/%s>", ssm.RDFPrefix, r)
}

// OWLURI encodes an owl# fragment under the OWL prefix.
func OWLURI(r string) string {
	if r == "" {
		return ""
	}
	return fmt.Sprintf("<%s/%s>", ssm.OWLPrefix, r)
}

// SSMURI encodes a core# or domain# fragment under the SSM prefix.
func SSMURI(r string) string {
	if r == "" {
		return ""
	}
	return fmt.Sprintf("<%s/%s>", ssm.SSMPrefix, r)
}
