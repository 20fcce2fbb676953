package graph

import "sort"

// Query is a read-only facade over a graph, backed by its indexes.
// It is the view handed to classification criteria so they cannot
// mutate the graph.
type Query struct {
	graph *Graph
}

// Graph returns the underlying graph.
func (q *Query) Graph() *Graph {
	return q.graph
}

// Type returns the type node with the given qualified name.
func (q *Query) Type(qualifiedName string) (*TypeNode, bool) {
	return q.graph.TypeByName(qualifiedName)
}

// TypeById returns the type node with the given id.
func (q *Query) TypeById(id NodeId) (*TypeNode, bool) {
	return q.graph.TypeNode(id)
}

// TypesInPackage returns all types declared in the given package,
// sorted by qualified name.
func (q *Query) TypesInPackage(pkg string) []*TypeNode {
	return q.resolveTypes(q.graph.indexes.TypesInPackage(pkg))
}

// Interfaces returns all interface types.
func (q *Query) Interfaces() []*TypeNode {
	return q.resolveTypes(q.graph.indexes.TypesByForm(FormInterface))
}

// Classes returns all class types.
func (q *Query) Classes() []*TypeNode {
	return q.resolveTypes(q.graph.indexes.TypesByForm(FormClass))
}

// TypesAnnotatedWith returns all types carrying an annotation with the
// given simple name.
func (q *Query) TypesAnnotatedWith(simpleName string) []*TypeNode {
	return q.resolveTypes(q.graph.indexes.TypesByAnnotation(simpleName))
}

// Packages returns all package names in sorted order.
func (q *Query) Packages() []string {
	pkgs := q.graph.indexes.Packages()
	sort.Strings(pkgs)
	return pkgs
}

// FieldsOf returns the fields declared by the given type.
func (q *Query) FieldsOf(t *TypeNode) []*FieldNode {
	var out []*FieldNode
	for _, id := range q.graph.indexes.MembersOf(t.ID()) {
		if f, ok := q.graph.FieldNode(id); ok {
			out = append(out, f)
		}
	}
	return out
}

// MethodsOf returns the methods declared by the given type.
func (q *Query) MethodsOf(t *TypeNode) []*MethodNode {
	var out []*MethodNode
	for _, id := range q.graph.indexes.MembersOf(t.ID()) {
		if m, ok := q.graph.MethodNode(id); ok {
			out = append(out, m)
		}
	}
	return out
}

// SupertypeOf returns the declared supertype of the given type, if it is
// part of the analyzed codebase.
func (q *Query) SupertypeOf(t *TypeNode) (*TypeNode, bool) {
	for _, id := range q.graph.indexes.SupertypesOf(t.ID()) {
		if super, ok := q.graph.TypeNode(id); ok {
			return super, true
		}
	}
	return nil, false
}

// SubtypesOf returns the in-codebase types extending the given type.
func (q *Query) SubtypesOf(t *TypeNode) []*TypeNode {
	return q.resolveTypes(q.graph.indexes.SubtypesOf(t.ID()))
}

// FieldHoldersOf returns the in-codebase types declaring a field whose
// type is the given type.
func (q *Query) FieldHoldersOf(t *TypeNode) []*TypeNode {
	return q.resolveTypes(q.graph.indexes.FieldHolders(t.ID()))
}

// InterfacesOf returns the in-codebase interfaces implemented by the type.
func (q *Query) InterfacesOf(t *TypeNode) []*TypeNode {
	return q.resolveTypes(q.graph.indexes.InterfacesOf(t.ID()))
}

// ImplementorsOf returns the in-codebase types implementing the interface.
func (q *Query) ImplementorsOf(t *TypeNode) []*TypeNode {
	return q.resolveTypes(q.graph.indexes.ImplementorsOf(t.ID()))
}

// DeclaringTypeOf returns the type declaring the given member id.
func (q *Query) DeclaringTypeOf(memberId NodeId) (*TypeNode, bool) {
	declaring, ok := q.graph.indexes.DeclaringTypeOf(memberId)
	if !ok {
		return nil, false
	}
	return q.graph.TypeNode(declaring)
}

// EdgesFrom returns all edges leaving the given node.
func (q *Query) EdgesFrom(id NodeId) []Edge {
	return q.graph.EdgesFrom(id)
}

// EdgesTo returns all edges entering the given node.
func (q *Query) EdgesTo(id NodeId) []Edge {
	return q.graph.EdgesTo(id)
}

func (q *Query) resolveTypes(ids []NodeId) []*TypeNode {
	out := make([]*TypeNode, 0, len(ids))
	for _, id := range ids {
		if t, ok := q.graph.TypeNode(id); ok {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Qualified < out[j].Qualified
	})
	return out
}
