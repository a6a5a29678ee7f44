package graph

import "slices"

// arrowKey identifies a directed arrow by its endpoints.
type arrowKey struct {
	from, to string
}

// Memory is an in-memory weighted directed graph with optional hyperedges.
// It keeps insertion order for nodes, neighbors, and hyperedges so that
// serialized output is deterministic.
//
// The zero value is not usable - use NewMemory. Memory is not safe for
// concurrent use without external synchronization.
type Memory struct {
	order    []string            // node insertion order
	present  map[string]bool     // node membership
	out      map[string][]string // nodeID -> neighbor IDs, insertion order
	weights  map[arrowKey]float64
	hyper    []string            // hyperedge insertion order
	incident map[string][]string // nodeID -> hyperedge IDs
}

// NewMemory creates an empty graph.
func NewMemory() *Memory {
	return &Memory{
		present:  make(map[string]bool),
		out:      make(map[string][]string),
		weights:  make(map[arrowKey]float64),
		incident: make(map[string][]string),
	}
}

// AddNodes registers the given identifiers, skipping any that are already
// present. Empty identifiers are ignored.
func (m *Memory) AddNodes(ids ...string) {
	for _, id := range ids {
		if id == "" || m.present[id] {
			continue
		}
		m.present[id] = true
		m.order = append(m.order, id)
	}
}

// AddArrow adds a directed arrow from→to with the given weight.
// Unknown endpoints are registered automatically. Adding an arrow that
// already exists overwrites its weight.
func (m *Memory) AddArrow(from, to string, weight float64) {
	m.AddNodes(from, to)
	key := arrowKey{from, to}
	if _, exists := m.weights[key]; !exists {
		m.out[from] = append(m.out[from], to)
	}
	m.weights[key] = weight
}

// AddEdge adds a true (undirected) edge between a and b by adding both
// arrows with DefaultWeight.
func (m *Memory) AddEdge(a, b string) {
	m.AddArrow(a, b, DefaultWeight)
	m.AddArrow(b, a, DefaultWeight)
}

// AddWeightedEdge adds a true (undirected) edge with the given weight on
// both arrows.
func (m *Memory) AddWeightedEdge(a, b string, weight float64) {
	m.AddArrow(a, b, weight)
	m.AddArrow(b, a, weight)
}

// AddHyperedge registers a hyperedge and connects it to the given member
// nodes. Unknown members are registered automatically. Re-adding a known
// hyperedge only appends the new members.
func (m *Memory) AddHyperedge(id string, members ...string) {
	if id == "" {
		return
	}
	if !slices.Contains(m.hyper, id) {
		m.hyper = append(m.hyper, id)
	}
	for _, member := range members {
		m.AddNodes(member)
		if !slices.Contains(m.incident[member], id) {
			m.incident[member] = append(m.incident[member], id)
		}
	}
}

// Nodes returns all node identifiers in insertion order.
// The returned slice is a copy and can be modified freely.
func (m *Memory) Nodes() []string { return slices.Clone(m.order) }

// Has reports whether the node is present.
func (m *Memory) Has(id string) bool { return m.present[id] }

// Neighbors returns the targets of the node's outgoing arrows in insertion
// order. Returns nil for unknown nodes or nodes without outgoing arrows.
func (m *Memory) Neighbors(id string) []string { return slices.Clone(m.out[id]) }

// HasArrow reports whether the directed arrow from→to exists.
func (m *Memory) HasArrow(from, to string) bool {
	_, ok := m.weights[arrowKey{from, to}]
	return ok
}

// HasEdge reports whether a and b are connected by a true edge, i.e.
// arrows exist in both directions.
func (m *Memory) HasEdge(a, b string) bool {
	return m.HasArrow(a, b) && m.HasArrow(b, a)
}

// Weight returns the weight of the arrow from→to, or DefaultWeight if the
// arrow does not exist.
func (m *Memory) Weight(from, to string) float64 {
	if w, ok := m.weights[arrowKey{from, to}]; ok {
		return w
	}
	return DefaultWeight
}

// NodeCount returns the number of nodes.
func (m *Memory) NodeCount() int { return len(m.order) }

// ArrowCount returns the number of directed arrows. A true edge counts as
// two arrows.
func (m *Memory) ArrowCount() int { return len(m.weights) }

// Hyperedges returns all hyperedge identifiers in insertion order.
func (m *Memory) Hyperedges() []string { return slices.Clone(m.hyper) }

// Incident returns the hyperedges touching the node in insertion order.
// Returns nil for nodes without hyperedges.
func (m *Memory) Incident(node string) []string { return slices.Clone(m.incident[node]) }

// Interface conformance.
var (
	_ Source      = (*Memory)(nil)
	_ Builder     = (*Memory)(nil)
	_ HyperSource = (*Memory)(nil)
)
