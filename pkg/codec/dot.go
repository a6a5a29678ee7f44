package codec

import (
	"bytes"
	"fmt"

	"github.com/mhersch/graphio/pkg/graph"
)

// writeDOT serializes g in the DOT language, picking the dialect first.
//
// The detection pass is global and all-or-nothing: a single arrow without a
// reverse counterpart renders the whole graph as a digraph, including every
// true edge it contains. Mixed per-edge rendering is deliberately not
// attempted.
func writeDOT(g graph.Source, labeled bool) string {
	for _, node := range g.Nodes() {
		for _, target := range g.Neighbors(node) {
			if !g.HasEdge(node, target) {
				return writeDOTDigraph(g, labeled)
			}
		}
	}
	return writeDOTGraph(g, labeled)
}

// writeDOTGraph renders the undirected dialect. Each symmetric arrow pair
// appears as exactly one "--" connector: the connector is emitted only from
// the endpoint with the lower identifier, which requires identifiers to be
// totally ordered.
func writeDOTGraph(g graph.Source, labeled bool) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")

	for _, node := range g.Nodes() {
		fmt.Fprintf(&buf, "  %q;\n", node)
		for _, target := range g.Neighbors(node) {
			if !g.HasEdge(node, target) || node >= target {
				continue
			}
			if labeled {
				fmt.Fprintf(&buf, "  %q -- %q [label=%s];\n", node, target, formatWeight(g.Weight(node, target)))
			} else {
				fmt.Fprintf(&buf, "  %q -- %q;\n", node, target)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// writeDOTDigraph renders the directed dialect: one "->" connector per
// arrow, no deduplication and no symmetry checks.
func writeDOTDigraph(g graph.Source, labeled bool) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")

	for _, node := range g.Nodes() {
		fmt.Fprintf(&buf, "  %q;\n", node)
		for _, target := range g.Neighbors(node) {
			if labeled {
				fmt.Fprintf(&buf, "  %q -> %q [label=%s];\n", node, target, formatWeight(g.Weight(node, target)))
			} else {
				fmt.Fprintf(&buf, "  %q -> %q;\n", node, target)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// writeDOTHypergraph renders hyperedges as point-shaped markers with one
// connector per (node, incident hyperedge) pair. Weights and labels do not
// apply to hyperedges.
func writeDOTHypergraph(g graph.HyperSource) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")

	for _, hyperedge := range g.Hyperedges() {
		fmt.Fprintf(&buf, "  %q [shape=point];\n", hyperedge)
	}
	for _, node := range g.Nodes() {
		for _, hyperedge := range g.Incident(node) {
			fmt.Fprintf(&buf, "  %q -- %q;\n", node, hyperedge)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}
