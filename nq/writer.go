package nq

import (
	"bufio"
	"fmt"
	"io"
)

// Writer streams quads and section comments to an N-Quads file. The graph
// term is set once, by the domain model header conversion, before any quad
// is written.
type Writer struct {
	w     *bufio.Writer
	graph string
}

// NewWriter wraps the destination stream.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// SetGraph records the bare (unbracketed) named graph URI for all
// subsequent quads.
func (w *Writer) SetGraph(graph string) {
	w.graph = graph
}

// Graph returns the bare named graph URI.
func (w *Writer) Graph() string {
	return w.graph
}

// WriteQuad writes one pre-encoded subject/predicate/object line in the
// writer's graph. Write errors latch in the buffer and surface from Flush.
func (w *Writer) WriteQuad(subject, predicate, object string) {
	fmt.Fprintf(w.w, "%s %s %s <%s> .\n", subject, predicate, object, w.graph)
}

// WriteComment writes a cosmetic section heading or spacer line. Downstream
// consumers must not depend on these.
func (w *Writer) WriteComment(text string) {
	fmt.Fprintf(w.w, "# %s\n", text)
}

// Flush drains buffered output and reports any latched write error.
func (w *Writer) Flush() error {
	return w.w.Flush()
}
