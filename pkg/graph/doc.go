// Package graph defines the graph contract consumed by the codec layer and
// provides Memory, an in-memory reference implementation.
//
// The codec packages (pkg/codec, pkg/render) never store graphs themselves.
// They operate on small interfaces:
//
//   - [Source] exposes nodes, outgoing arrows, symmetric-edge checks, and
//     arrow weights. Every writer consumes a Source.
//   - [Builder] accepts node and arrow registrations. The XML reader applies
//     parsed mutations through a Builder.
//   - [HyperSource] extends Source with hyperedges for the hypergraph
//     visualization.
//
// Any graph container satisfying these interfaces can be serialized; Memory
// exists so the CLI, the HTTP service, and the tests have a concrete
// collaborator without pulling in a graph database.
//
// # Identifiers
//
// Node identifiers are strings. They must be unique within a graph and are
// compared with the natural string order where the codec needs a total
// order (undirected edge deduplication).
package graph
