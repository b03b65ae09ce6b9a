package convert

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/Spyderisk/domain-csv2nq/tables"
)

// buildConstructionSequence computes the execution rank of every
// construction pattern from the predecessor and successor tables. Patterns
// with no remaining predecessors are removed round by round, each round's
// removals sharing a rank. Patterns caught in a dependency cycle keep rank
// zero and are reported, not fatal.
func (c *Converter) buildConstructionSequence() error {
	t, err := tables.Open(c.opts.Input, "ConstructionPattern.csv")
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
	for _, row := range t.Rows() {
		if !c.inPackage(row.Get(packageCol)) {
			continue
		}
		uri := row.Get(uriCol)
		c.cpPredecessors[uri] = []string{}
		c.cpSequence.Put(uri, 0)
	}

	if err := c.loadSequenceEdges("ConstructionPredecessor.csv", "hasPredecessor", false); err != nil {
		return err
	}
	if err := c.loadSequenceEdges("ConstructionSuccessor.csv", "hasSuccessor", true); err != nil {
		return err
	}

	// Rank on a working copy so the seeded predecessor lists survive for
	// the sequence trace.
	pending := make(map[string][]string, len(c.cpPredecessors))
	for uri, preds := range c.cpPredecessors {
		pending[uri] = append([]string(nil), preds...)
	}

	for round := 1; ; round++ {
		var removed []string
		for _, uri := range c.cpSequence.Keys() {
			rank, _ := c.cpSequence.Get(uri)
			if rank == 0 && len(pending[uri]) == 0 {
				removed = append(removed, uri)
			}
		}
		if len(removed) == 0 {
			break
		}
		for _, uri := range removed {
			c.cpSequence.Put(uri, round)
			for cp, preds := range pending {
				for i, p := range preds {
					if p == uri {
						pending[cp] = append(preds[:i], preds[i+1:]...)
						break
					}
				}
			}
		}
	}

	for _, uri := range c.cpSequence.Keys() {
		if rank, _ := c.cpSequence.Get(uri); rank == 0 {
			c.log.Warn("Construction pattern is part of a dependency cycle",
				slog.String("pattern", strings.TrimPrefix(uri, "domain#CP-")))
		}
	}
	return nil
}

// loadSequenceEdges reads one dependency table. Rows flagged fake are
// ordering hints for the table editor and carry no real dependency. For a
// successor table the edge direction is reversed.
func (c *Converter) loadSequenceEdges(filename, column string, reverse bool) error {
	t, err := tables.Open(c.opts.Input, filename)
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
	otherCol, err := t.Bind(column)
	if err != nil {
		return err
	}
	fakeCol, err := t.Bind("fake")
	if err != nil {
		return err
	}

	for _, row := range t.Rows() {
		if !c.inPackage(row.Get(packageCol)) {
			continue
		}
		if strings.EqualFold(row.Get(fakeCol), "true") {
			continue
		}
		pattern, predecessor := row.Get(uriCol), row.Get(otherCol)
		if reverse {
			pattern, predecessor = predecessor, pattern
		}
		if _, ok := c.cpPredecessors[pattern]; !ok {
			c.log.Warn("Dependency names an unknown construction pattern",
				slog.String("table", t.Name), slog.String("pattern", pattern))
			continue
		}
		found := false
		for _, p := range c.cpPredecessors[pattern] {
			if p == predecessor {
				found = true
				break
			}
		}
		if !found {
			c.cpPredecessors[pattern] = append(c.cpPredecessors[pattern], predecessor)
		}
	}
	return nil
}

// writeSequenceTrace writes the computed sequence with each pattern's
// predecessors to the trace stream, sorted by pattern name.
func (c *Converter) writeSequenceTrace(header string) error {
	uris := append([]string(nil), c.cpSequence.Keys()...)
	sort.Strings(uris)

	short := func(uri string) string { return strings.TrimPrefix(uri, "domain#CP-") }

	if _, err := fmt.Fprintf(c.trace, "%s\n", header); err != nil {
		return err
	}
	for _, uri := range uris {
		rank, _ := c.cpSequence.Get(uri)
		if _, err := fmt.Fprintf(c.trace, "%s: %d", short(uri), rank); err != nil {
			return err
		}
		preds := c.cpPredecessors[uri]
		if len(preds) == 0 {
			if _, err := fmt.Fprint(c.trace, ", no predecessors\n"); err != nil {
				return err
			}
			continue
		}
		names := make([]string, len(preds))
		for i, p := range preds {
			names[i] = short(p)
		}
		if _, err := fmt.Fprintf(c.trace, ", predecessors: %s\n", strings.Join(names, ", ")); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(c.trace)
	return err
}
