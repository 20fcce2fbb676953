package graph

import (
	"fmt"

	"archlens/internal/errors"
)

// Metadata describes the analyzed codebase as a whole.
type Metadata struct {
	BasePackage   string `json:"basePackage"`
	LanguageLevel string `json:"languageLevel,omitempty"`
	SourceUnits   int    `json:"sourceUnits"`
	Style         Style  `json:"style"`
}

// Graph owns all nodes and edges of the analyzed codebase.
//
// Invariants:
//   - an edge's endpoints must already exist as nodes when it is added
//   - node ids are unique; adding a duplicate fails
//   - iteration order is deterministic for identical input (the builder
//     inserts types sorted by qualified name; edges keep insertion order)
//   - DERIVED edges always carry a proof, RAW edges never do
//
// The graph is append-only: nodes and edges are never mutated or removed.
type Graph struct {
	nodes     map[NodeId]Node
	nodeOrder []NodeId
	edges     []Edge
	edgeKeys  map[edgeKey]struct{}
	indexes   *Indexes
	metadata  Metadata
}

type edgeKey struct {
	from NodeId
	to   NodeId
	kind EdgeKind
}

// New creates an empty graph with the given metadata.
func New(metadata Metadata) *Graph {
	return &Graph{
		nodes:    make(map[NodeId]Node),
		edgeKeys: make(map[edgeKey]struct{}),
		indexes:  newIndexes(),
		metadata: metadata,
	}
}

// AddNode adds a node to the graph. It fails with an invariant error if a
// node with the same id already exists.
func (g *Graph) AddNode(node Node) error {
	if node == nil {
		return errors.Invariant("cannot add nil node")
	}
	id := node.ID()
	if _, exists := g.nodes[id]; exists {
		return errors.Invariant("duplicate node id: %s", id)
	}

	g.nodes[id] = node
	g.nodeOrder = append(g.nodeOrder, id)
	g.indexes.indexNode(node)
	return nil
}

// AddEdge adds an edge to the graph. It fails with an invariant error if an
// endpoint is missing or the origin/proof pairing is inconsistent.
func (g *Graph) AddEdge(edge Edge) error {
	if _, ok := g.nodes[edge.From]; !ok {
		return errors.Invariant("edge %s from unknown node: %s", edge.Kind, edge.From)
	}
	if _, ok := g.nodes[edge.To]; !ok {
		return errors.Invariant("edge %s to unknown node: %s", edge.Kind, edge.To)
	}
	if edge.Origin == OriginDerived && edge.Proof == nil {
		return errors.Invariant("derived edge %s->%s (%s) is missing a proof", edge.From, edge.To, edge.Kind)
	}
	if edge.Origin == OriginRaw && edge.Proof != nil {
		return errors.Invariant("raw edge %s->%s (%s) must not carry a proof", edge.From, edge.To, edge.Kind)
	}

	g.edges = append(g.edges, edge)
	g.edgeKeys[edgeKey{edge.From, edge.To, edge.Kind}] = struct{}{}
	g.indexes.indexEdge(edge)
	return nil
}

// MustAddNode adds a node and panics on invariant violation. For tests and
// builders that construct graphs from already-validated facts.
func (g *Graph) MustAddNode(node Node) {
	if err := g.AddNode(node); err != nil {
		panic(err)
	}
}

// MustAddEdge adds an edge and panics on invariant violation.
func (g *Graph) MustAddEdge(edge Edge) {
	if err := g.AddEdge(edge); err != nil {
		panic(err)
	}
}

// === Node access ===

// Node returns the node with the given id.
func (g *Graph) Node(id NodeId) (Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// ContainsNode reports whether a node with the given id exists.
func (g *Graph) ContainsNode(id NodeId) bool {
	_, ok := g.nodes[id]
	return ok
}

// TypeNode returns the type node with the given id.
func (g *Graph) TypeNode(id NodeId) (*TypeNode, bool) {
	t, ok := g.nodes[id].(*TypeNode)
	return t, ok
}

// TypeByName returns the type node with the given qualified name.
func (g *Graph) TypeByName(qualifiedName string) (*TypeNode, bool) {
	return g.TypeNode(TypeId(qualifiedName))
}

// FieldNode returns the field node with the given id.
func (g *Graph) FieldNode(id NodeId) (*FieldNode, bool) {
	f, ok := g.nodes[id].(*FieldNode)
	return f, ok
}

// MethodNode returns the method node with the given id.
func (g *Graph) MethodNode(id NodeId) (*MethodNode, bool) {
	m, ok := g.nodes[id].(*MethodNode)
	return m, ok
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, len(g.nodeOrder))
	for _, id := range g.nodeOrder {
		out = append(out, g.nodes[id])
	}
	return out
}

// TypeNodes returns all type nodes in insertion order.
func (g *Graph) TypeNodes() []*TypeNode {
	var out []*TypeNode
	for _, id := range g.nodeOrder {
		if t, ok := g.nodes[id].(*TypeNode); ok {
			out = append(out, t)
		}
	}
	return out
}

// === Edge access ===

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []Edge {
	return g.edges
}

// EdgesByKind returns all edges of the given kind.
func (g *Graph) EdgesByKind(kind EdgeKind) []Edge {
	var out []Edge
	for _, e := range g.edges {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// EdgesFrom returns all edges leaving the given node.
func (g *Graph) EdgesFrom(id NodeId) []Edge {
	var out []Edge
	for _, e := range g.edges {
		if e.From == id {
			out = append(out, e)
		}
	}
	return out
}

// EdgesTo returns all edges entering the given node.
func (g *Graph) EdgesTo(id NodeId) []Edge {
	var out []Edge
	for _, e := range g.edges {
		if e.To == id {
			out = append(out, e)
		}
	}
	return out
}

// RawEdges returns all RAW edges.
func (g *Graph) RawEdges() []Edge {
	var out []Edge
	for _, e := range g.edges {
		if e.IsRaw() {
			out = append(out, e)
		}
	}
	return out
}

// DerivedEdges returns all DERIVED edges.
func (g *Graph) DerivedEdges() []Edge {
	var out []Edge
	for _, e := range g.edges {
		if e.IsDerived() {
			out = append(out, e)
		}
	}
	return out
}

// ContainsEdge reports whether an edge with the given endpoints and kind
// already exists, regardless of origin.
func (g *Graph) ContainsEdge(from, to NodeId, kind EdgeKind) bool {
	_, ok := g.edgeKeys[edgeKey{from, to, kind}]
	return ok
}

// === Indexes, metadata, statistics ===

// Indexes returns the graph indexes for fast lookups.
func (g *Graph) Indexes() *Indexes {
	return g.indexes
}

// Query returns a read-only query facade over this graph.
func (g *Graph) Query() *Query {
	return &Query{graph: g}
}

// Metadata returns the graph metadata.
func (g *Graph) Metadata() Metadata {
	return g.metadata
}

// SetStyle records the detected package-organization style. Called by the
// builder after style detection; not for external use.
func (g *Graph) SetStyle(style Style) {
	g.metadata.Style = style
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// TypeCount returns the number of type nodes.
func (g *Graph) TypeCount() int { return g.indexes.typeCount() }

func (g *Graph) String() string {
	return fmt.Sprintf("Graph[nodes=%d, edges=%d, types=%d]", g.NodeCount(), g.EdgeCount(), g.TypeCount())
}
