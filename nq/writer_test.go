package nq_test

import (
	"strings"
	"testing"

	"github.com/Spyderisk/domain-csv2nq/nq"
)

func TestWriterQuadFormat(t *testing.T) {
	var buf strings.Builder
	w := nq.NewWriter(&buf)
	w.SetGraph("http://example.org/domain-test")

	w.WriteQuad("<s>", "<p>", `"o"`)
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	want := "<s> <p> \"o\" <http://example.org/domain-test> .\n"
	if buf.String() != want {
		t.Errorf("quad line = %q, want %q", buf.String(), want)
	}
}

func TestWriterComments(t *testing.T) {
	var buf strings.Builder
	w := nq.NewWriter(&buf)

	w.WriteComment("Domain asset definitions")
	w.WriteComment("")
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	want := "# Domain asset definitions\n# \n"
	if buf.String() != want {
		t.Errorf("comments = %q, want %q", buf.String(), want)
	}
}

func TestWriterGraphRoundTrip(t *testing.T) {
	w := nq.NewWriter(&strings.Builder{})
	w.SetGraph("http://example.org/g")
	if w.Graph() != "http://example.org/g" {
		t.Errorf("Graph() = %q", w.Graph())
	}
}
