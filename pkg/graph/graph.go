package graph

// DefaultWeight is the weight assigned to arrows added without an explicit
// weight. It matches the reader-side reconstruction default: an arrow always
// has a retrievable weight.
const DefaultWeight = 1.0

// Source is the read side of the graph contract. Writers walk a Source to
// produce a textual representation.
//
// Enumeration order of Nodes and Neighbors is owned by the implementation;
// the codec preserves whatever order the Source yields.
type Source interface {
	// Nodes returns all node identifiers.
	Nodes() []string

	// Neighbors returns the targets of the outgoing arrows of the node.
	Neighbors(id string) []string

	// HasEdge reports whether a and b are connected by a true (symmetric)
	// edge, i.e. arrows exist in both directions between them.
	HasEdge(a, b string) bool

	// Weight returns the weight of the arrow from→to.
	// Implementations return DefaultWeight for arrows added without one.
	Weight(from, to string) float64
}

// Builder is the write side of the graph contract. The XML reader applies
// parsed mutations to a caller-supplied Builder in place.
type Builder interface {
	// AddNodes registers the given identifiers. Re-adding an identifier
	// that is already present must be a no-op, not an error.
	AddNodes(ids ...string)

	// AddArrow adds a directed arrow from→to with the given weight.
	AddArrow(from, to string, weight float64)
}

// HyperSource is a Source whose nodes can additionally be connected through
// hyperedges. The hypergraph visualization renders each hyperedge as a
// point-shaped marker linked to its member nodes.
type HyperSource interface {
	Source

	// Hyperedges returns all hyperedge identifiers.
	Hyperedges() []string

	// Incident returns the hyperedges touching the node.
	Incident(node string) []string
}
