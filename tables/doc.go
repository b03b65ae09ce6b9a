// Package tables reads domain model CSV tables and binds their header
// columns to typed accessors. Binding fails fast on a missing column, so a
// malformed table aborts a conversion before any of its rows are consumed.
// The default-values sentinel row used by the table editor is filtered out.
package tables
