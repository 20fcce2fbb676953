package graph

import (
	"testing"

	"archlens/internal/facts"
)

func shopFacts() *facts.Facts {
	return &facts.Facts{
		BasePackage: "com.shop",
		Types: []facts.TypeDecl{
			{
				QualifiedName: "com.shop.order.domain.Order",
				Form:          "class",
				Fields: []facts.FieldDecl{
					{Name: "id", Type: facts.TypeRefDecl{Name: "com.shop.order.domain.OrderId"}, Modifiers: []string{"private", "final"}},
					{Name: "lines", Type: facts.TypeRefDecl{Name: "java.util.List", TypeArgs: []facts.TypeRefDecl{{Name: "com.shop.order.domain.OrderLine"}}}},
				},
			},
			{
				QualifiedName: "com.shop.order.domain.OrderId",
				Form:          "record",
				Fields: []facts.FieldDecl{
					{Name: "value", Type: facts.TypeRefDecl{Name: "java.util.UUID"}, Modifiers: []string{"private", "final"}},
				},
			},
			{
				QualifiedName: "com.shop.order.domain.OrderLine",
				Form:          "class",
			},
			{
				QualifiedName: "com.shop.order.port.OrderRepository",
				Form:          "interface",
				Methods: []facts.MethodDecl{
					{Name: "save", ReturnType: facts.TypeRefDecl{Name: "void"}, Params: []facts.TypeRefDecl{{Name: "com.shop.order.domain.Order"}}},
					{Name: "findById", ReturnType: facts.TypeRefDecl{Name: "java.util.Optional", TypeArgs: []facts.TypeRefDecl{{Name: "com.shop.order.domain.Order"}}}, Params: []facts.TypeRefDecl{{Name: "com.shop.order.domain.OrderId"}}},
				},
			},
		},
	}
}

func buildShopGraph(t *testing.T) *Graph {
	t.Helper()
	g, err := NewBuilder(nil).Build(shopFacts())
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	return g
}

func TestBuildInsertsTypesSorted(t *testing.T) {
	g := buildShopGraph(t)
	types := g.TypeNodes()
	if len(types) != 4 {
		t.Fatalf("type count = %d, want 4", len(types))
	}
	for i := 1; i < len(types); i++ {
		if types[i-1].Qualified >= types[i].Qualified {
			t.Errorf("types out of order: %s before %s", types[i-1].Qualified, types[i].Qualified)
		}
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	first := buildShopGraph(t)
	second := buildShopGraph(t)

	firstNodes := first.Nodes()
	secondNodes := second.Nodes()
	if len(firstNodes) != len(secondNodes) {
		t.Fatalf("node counts differ: %d vs %d", len(firstNodes), len(secondNodes))
	}
	for i := range firstNodes {
		if firstNodes[i].ID() != secondNodes[i].ID() {
			t.Errorf("node %d differs: %s vs %s", i, firstNodes[i].ID(), secondNodes[i].ID())
		}
	}

	firstEdges := first.Edges()
	secondEdges := second.Edges()
	if len(firstEdges) != len(secondEdges) {
		t.Fatalf("edge counts differ: %d vs %d", len(firstEdges), len(secondEdges))
	}
	for i := range firstEdges {
		a, b := firstEdges[i], secondEdges[i]
		if a.From != b.From || a.To != b.To || a.Kind != b.Kind {
			t.Errorf("edge %d differs: %+v vs %+v", i, a, b)
		}
	}
}

func TestBuildRawEdges(t *testing.T) {
	g := buildShopGraph(t)
	order := TypeId("com.shop.order.domain.Order")
	orderId := TypeId("com.shop.order.domain.OrderId")
	orderLine := TypeId("com.shop.order.domain.OrderLine")
	repo := TypeId("com.shop.order.port.OrderRepository")

	tests := []struct {
		name string
		from NodeId
		to   NodeId
		kind EdgeKind
	}{
		{"field type", order, orderId, EdgeFieldType},
		{"type argument", order, orderLine, EdgeTypeArgument},
		{"parameter type", repo, order, EdgeParameterType},
		{"references rollup", order, orderId, EdgeReferences},
		{"references from port", repo, orderId, EdgeReferences},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !g.ContainsEdge(tt.from, tt.to, tt.kind) {
				t.Errorf("expected %s edge %s -> %s", tt.kind, tt.from, tt.to)
			}
		})
	}
}

func TestBuildSkipsExternalReferences(t *testing.T) {
	g := buildShopGraph(t)
	// java.util.UUID is not declared in the facts; no node, no edge.
	if g.ContainsNode(TypeId("java.util.UUID")) {
		t.Error("external type should not become a node")
	}
	for _, e := range g.Edges() {
		if e.To == TypeId("java.util.UUID") {
			t.Errorf("unexpected edge to external type: %+v", e)
		}
	}
}

func TestBuildDeclaresMembers(t *testing.T) {
	g := buildShopGraph(t)
	order := TypeId("com.shop.order.domain.Order")
	members := g.Indexes().MembersOf(order)
	if len(members) != 2 {
		t.Fatalf("members of Order = %d, want 2", len(members))
	}
	for _, m := range members {
		if !g.ContainsEdge(order, m, EdgeDeclares) {
			t.Errorf("missing DECLARES edge to %s", m)
		}
	}
}

func TestDetectStyle(t *testing.T) {
	tests := []struct {
		name     string
		packages []string
		want     Style
	}{
		{"hexagonal", []string{"com.shop.order.domain", "com.shop.order.port", "com.shop.order.adapter"}, StyleHexagonal},
		{"layered", []string{"com.shop.web", "com.shop.service", "com.shop.repository"}, StyleLayered},
		{"single package", []string{"com.shop"}, StyleFlat},
		{"no markers", []string{"com.shop.a", "com.shop.b"}, StyleFlat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectStyle(tt.packages); got != tt.want {
				t.Errorf("DetectStyle(%v) = %s, want %s", tt.packages, got, tt.want)
			}
		})
	}
}
