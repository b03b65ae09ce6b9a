package tables

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Spyderisk/domain-csv2nq/vocabulary/ssm"
)

// Table is one fully loaded CSV table: a header row mapping column names to
// positions, and the data rows in file order.
type Table struct {
	// Name is the table's file name, used in error messages.
	Name string

	header map[string]int
	rows   []Row
}

// Column is a bound accessor for one named column of one table.
type Column struct {
	name  string
	index int
}

// Row is one data row of a table.
type Row []string

// Get returns the cell for a bound column, or "" when the row is shorter
// than the header (ragged rows are tolerated, as in the source tables).
func (r Row) Get(c Column) string {
	if c.index >= len(r) {
		return ""
	}
	return r[c.index]
}

// Open loads the named table from dir. Rows containing the default-values
// sentinel URI are dropped here so no consumer sees them.
func Open(dir, name string) (*Table, error) {
	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("open table %s: %w", name, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read table %s: %w", name, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("table %s has no header row", name)
	}

	t := &Table{Name: name, header: make(map[string]int, len(records[0]))}
	for i, col := range records[0] {
		t.header[col] = i
	}
	for _, rec := range records[1:] {
		if isDefaultValuesRow(rec) {
			continue
		}
		t.rows = append(t.rows, Row(rec))
	}
	return t, nil
}

// Exists reports whether the named table is present in dir. Only
// DomainFeature.csv is optional; every other table is required.
func Exists(dir, name string) bool {
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}

// Bind resolves a required column name to an accessor. A missing column is
// a fatal configuration error for the whole conversion.
func (t *Table) Bind(name string) (Column, error) {
	i, ok := t.header[name]
	if !ok {
		return Column{}, fmt.Errorf("table %s has no %q column", t.Name, name)
	}
	return Column{name: name, index: i}, nil
}

// HasColumn reports whether the header carries the named column, for
// feature-gated optional columns.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.header[name]
	return ok
}

// Rows returns the data rows in file order, sentinel row excluded.
func (t *Table) Rows() []Row {
	return t.rows
}

func isDefaultValuesRow(rec []string) bool {
	for _, cell := range rec {
		if cell == ssm.DummyURI {
			return true
		}
	}
	return false
}
