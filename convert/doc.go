// Package convert implements the domain model conversion engine: it reads
// the CSV tables of one cyber-security domain model in dependency order and
// emits the equivalent quads into a single named graph, expanding
// population triplets, reverse-parsing composite identifiers against the
// entity catalogs, and sequencing construction patterns from their
// predecessor relationships.
//
// All run state (catalogs, active feature and package sets, derived-entity
// caches, dependency maps) is owned by one Converter and discarded with it;
// nothing persists between runs.
package convert
