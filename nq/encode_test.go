package nq_test

import (
	"strings"
	"testing"

	"github.com/Spyderisk/domain-csv2nq/nq"
)

func TestBoolean(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"true", `"true"^^<http://www.w3.org/2001/XMLSchema#boolean>`},
		{"TRUE", `"true"^^<http://www.w3.org/2001/XMLSchema#boolean>`},
		{"False", `"false"^^<http://www.w3.org/2001/XMLSchema#boolean>`},
	}
	for _, tt := range tests {
		got, err := nq.Boolean(tt.in)
		if err != nil {
			t.Fatalf("Boolean(%q) failed: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("Boolean(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestBooleanRejectsOtherValues(t *testing.T) {
	for _, in := range []string{"", "yes", "1", "truthy"} {
		if _, err := nq.Boolean(in); err == nil {
			t.Errorf("Boolean(%q) should fail", in)
		}
	}
}

func TestInteger(t *testing.T) {
	got, err := nq.Integer("42")
	if err != nil {
		t.Fatalf("Integer failed: %v", err)
	}
	want := `"42"^^<http://www.w3.org/2001/XMLSchema#integer>`
	if got != want {
		t.Errorf("Integer(42) = %s, want %s", got, want)
	}

	if _, err := nq.Integer("4.2"); err == nil {
		t.Error("Integer should reject non-integer text")
	}
	if _, err := nq.Integer(""); err == nil {
		t.Error("Integer should reject empty text")
	}
}

func TestIntegerValueMatchesInteger(t *testing.T) {
	fromText, err := nq.Integer("7")
	if err != nil {
		t.Fatalf("Integer failed: %v", err)
	}
	if got := nq.IntegerValue(7); got != fromText {
		t.Errorf("IntegerValue(7) = %s, want %s", got, fromText)
	}
}

func TestStringEscapesQuotes(t *testing.T) {
	got := nq.String(`say "hello"`)
	if got != `"say \"hello\""` {
		t.Errorf("String escaping wrong: %s", got)
	}
}

func TestURIEncoders(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) string
		in   string
		want string
	}{
		{"ssm domain", nq.SSMURI, "domain#Host", "<http://it-innovation.soton.ac.uk/ontologies/trustworthiness/domain#Host>"},
		{"ssm core", nq.SSMURI, "core#Threat", "<http://it-innovation.soton.ac.uk/ontologies/trustworthiness/core#Threat>"},
		{"rdfs", nq.RDFSURI, "rdf-schema#label", "<http://www.w3.org/2000/01/rdf-schema#label>"},
		{"rdf", nq.RDFURI, "22-rdf-syntax-ns#type", "<http://www.w3.org/1999/02/22-rdf-syntax-ns#type>"},
		{"owl", nq.OWLURI, "owl#Ontology", "<http://www.w3.org/2002/07/owl#Ontology>"},
	}
	for _, tt := range tests {
		if got := tt.fn(tt.in); got != tt.want {
			t.Errorf("%s: got %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestURIEncodersKeepEmptyReferencesEmpty(t *testing.T) {
	for _, fn := range []func(string) string{nq.SSMURI, nq.RDFSURI, nq.RDFURI, nq.OWLURI} {
		if got := fn(""); got != "" {
			t.Errorf("empty reference encoded to %q, want empty", got)
		}
	}
	if strings.Contains(nq.SSMURI(""), "<") {
		t.Error("empty reference must not produce an angle-bracketed URI")
	}
}
