// Package nq encodes RDF terms and streams N-Quads scoped to a single
// named graph. Encoders are pure; the Writer holds only the destination
// stream and the graph decided by the domain model header.
package nq
