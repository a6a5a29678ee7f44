// Package codec converts graphs to and from textual exchange formats.
//
// Two families of formats are supported:
//
//   - XML markup ([FormatXML]): a round-trippable document with one element
//     per node and one element per outgoing arrow. This is the only format
//     [Read] accepts; writing a graph and reading it back into an empty
//     graph reconstructs the same node set and the same arrows.
//   - Graphviz DOT ([FormatDOT], [FormatDOTWeighted], [FormatDOTHypergraph]):
//     write-only visualization descriptions. DOT output is never parsed back
//     into a graph.
//
// # Dialect detection
//
// The DOT writer renders the whole graph in one dialect. It scans every
// arrow once: if any arrow lacks a reverse counterpart the graph is emitted
// as a digraph with "->" connectors; otherwise it is emitted as an
// undirected graph with "--" connectors, each symmetric arrow pair collapsed
// into a single connector line. One asymmetric arrow therefore switches the
// entire rendering to the directed dialect.
//
// # Errors
//
// [Write] and [Read] fail with [ErrUnsupportedFormat] for format values
// outside the supported set, and [Write] fails with [ErrNotHypergraph] when
// [FormatDOTHypergraph] is requested for a source without hyperedges. Read
// failures caused by malformed input wrap the underlying XML or numeric
// parse error; mutations applied before the failure remain in the target
// graph.
package codec
