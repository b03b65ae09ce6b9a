package convert

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Spyderisk/domain-csv2nq/config"
)

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func sequenceConverter(t *testing.T, patterns, predecessors, successors string) *Converter {
	t.Helper()
	dir := t.TempDir()
	writeFixture(t, dir, "ConstructionPattern.csv", patterns)
	writeFixture(t, dir, "ConstructionPredecessor.csv", predecessors)
	writeFixture(t, dir, "ConstructionSuccessor.csv", successors)

	opts := config.Default()
	opts.Input = dir
	c := New(opts, nil)
	c.packages.Add("package#Main")
	return c
}

const patternHeader = "URI,package,label,comment,hasMatchingPattern,iterate,maxIterations\n"

func patternRows(uris ...string) string {
	var b strings.Builder
	b.WriteString(patternHeader)
	for _, uri := range uris {
		b.WriteString(uri + ",package#Main,L,C,domain#MP,FALSE,1\n")
	}
	return b.String()
}

func TestBuildConstructionSequenceRanks(t *testing.T) {
	c := sequenceConverter(t,
		patternRows("domain#CP-A", "domain#CP-B", "domain#CP-C"),
		"URI,package,hasPredecessor,fake\n"+
			"domain#CP-B,package#Main,domain#CP-A,FALSE\n"+
			"domain#CP-C,package#Main,domain#CP-B,FALSE\n",
		"URI,package,hasSuccessor,fake\n")

	require.NoError(t, c.buildConstructionSequence())

	rankA, _ := c.cpSequence.Get("domain#CP-A")
	rankB, _ := c.cpSequence.Get("domain#CP-B")
	rankC, _ := c.cpSequence.Get("domain#CP-C")
	assert.Equal(t, 1, rankA)
	assert.Equal(t, 2, rankB)
	assert.Equal(t, 3, rankC)
}

func TestBuildConstructionSequenceSuccessorEdges(t *testing.T) {
	c := sequenceConverter(t,
		patternRows("domain#CP-A", "domain#CP-B"),
		"URI,package,hasPredecessor,fake\n",
		"URI,package,hasSuccessor,fake\n"+
			"domain#CP-A,package#Main,domain#CP-B,FALSE\n")

	require.NoError(t, c.buildConstructionSequence())

	rankA, _ := c.cpSequence.Get("domain#CP-A")
	rankB, _ := c.cpSequence.Get("domain#CP-B")
	assert.Equal(t, 1, rankA)
	assert.Equal(t, 2, rankB)
}

func TestBuildConstructionSequenceIgnoresFakeEdges(t *testing.T) {
	c := sequenceConverter(t,
		patternRows("domain#CP-A", "domain#CP-B"),
		"URI,package,hasPredecessor,fake\n"+
			"domain#CP-B,package#Main,domain#CP-A,TRUE\n",
		"URI,package,hasSuccessor,fake\n")

	require.NoError(t, c.buildConstructionSequence())

	rankA, _ := c.cpSequence.Get("domain#CP-A")
	rankB, _ := c.cpSequence.Get("domain#CP-B")
	assert.Equal(t, 1, rankA)
	assert.Equal(t, 1, rankB, "a fake edge must not impose ordering")
}

func TestBuildConstructionSequenceCycleTerminates(t *testing.T) {
	c := sequenceConverter(t,
		patternRows("domain#CP-A", "domain#CP-B", "domain#CP-C"),
		"URI,package,hasPredecessor,fake\n"+
			"domain#CP-A,package#Main,domain#CP-B,FALSE\n"+
			"domain#CP-B,package#Main,domain#CP-A,FALSE\n",
		"URI,package,hasSuccessor,fake\n")

	require.NoError(t, c.buildConstructionSequence())

	rankA, _ := c.cpSequence.Get("domain#CP-A")
	rankB, _ := c.cpSequence.Get("domain#CP-B")
	rankC, _ := c.cpSequence.Get("domain#CP-C")
	assert.Equal(t, 0, rankA, "cycle members keep rank zero")
	assert.Equal(t, 0, rankB, "cycle members keep rank zero")
	assert.Equal(t, 1, rankC)
}

func TestWriteSequenceTrace(t *testing.T) {
	c := sequenceConverter(t,
		patternRows("domain#CP-B", "domain#CP-A"),
		"URI,package,hasPredecessor,fake\n"+
			"domain#CP-B,package#Main,domain#CP-A,FALSE\n",
		"URI,package,hasSuccessor,fake\n")
	require.NoError(t, c.buildConstructionSequence())

	var buf strings.Builder
	c.trace = &buf
	require.NoError(t, c.writeSequenceTrace("Construction pattern sequence"))

	out := buf.String()
	assert.Contains(t, out, "Construction pattern sequence\n")
	assert.Contains(t, out, "A: 1, no predecessors\n")
	assert.Contains(t, out, "B: 2, predecessors: A\n")
	idxA := strings.Index(out, "A: 1")
	idxB := strings.Index(out, "B: 2")
	assert.Less(t, idxA, idxB, "trace is sorted by pattern name")
}
