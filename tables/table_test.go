package tables_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Spyderisk/domain-csv2nq/tables"
)

func writeTable(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestOpenDropsDefaultValuesRow(t *testing.T) {
	dir := t.TempDir()
	writeTable(t, dir, "Role.csv",
		"URI,package,label,comment\n"+
			"domain#000000,package#000,default,default\n"+
			"domain#Role_Host,package#Main,Host,A host role\n")

	tbl, err := tables.Open(dir, "Role.csv")
	require.NoError(t, err)

	require.Len(t, tbl.Rows(), 1)
	uri, err := tbl.Bind("URI")
	require.NoError(t, err)
	assert.Equal(t, "domain#Role_Host", tbl.Rows()[0].Get(uri))
}

func TestBindFailsFastOnMissingColumn(t *testing.T) {
	dir := t.TempDir()
	writeTable(t, dir, "Role.csv", "URI,package\n")

	tbl, err := tables.Open(dir, "Role.csv")
	require.NoError(t, err)

	_, err = tbl.Bind("label")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Role.csv")
	assert.Contains(t, err.Error(), "label")
}

func TestRowGetToleratesShortRows(t *testing.T) {
	dir := t.TempDir()
	writeTable(t, dir, "Threat.csv",
		"URI,package,hasFrequency\n"+
			"\"domain#T.A.B.C\",package#Main\n")

	tbl, err := tables.Open(dir, "Threat.csv")
	require.NoError(t, err)

	freq, err := tbl.Bind("hasFrequency")
	require.NoError(t, err)
	assert.Equal(t, "", tbl.Rows()[0].Get(freq))
}

func TestOpenMissingTable(t *testing.T) {
	_, err := tables.Open(t.TempDir(), "Nothing.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Nothing.csv")
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, tables.Exists(dir, "DomainFeature.csv"))
	writeTable(t, dir, "DomainFeature.csv", "URI,comment,supported\n")
	assert.True(t, tables.Exists(dir, "DomainFeature.csv"))
}

func TestHasColumn(t *testing.T) {
	dir := t.TempDir()
	writeTable(t, dir, "ConstructionPattern.csv", "URI,package,marker\n")

	tbl, err := tables.Open(dir, "ConstructionPattern.csv")
	require.NoError(t, err)
	assert.True(t, tbl.HasColumn("marker"))
	assert.False(t, tbl.HasColumn("hasPriority"))
}
