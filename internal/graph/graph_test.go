package graph

import (
	"strings"
	"testing"

	"archlens/internal/errors"
)

func newType(qualified string, form TypeForm) *TypeNode {
	return &TypeNode{Qualified: qualified, Form: form}
}

func TestAddNodeRejectsDuplicateId(t *testing.T) {
	g := New(Metadata{})
	if err := g.AddNode(newType("com.example.Order", FormClass)); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	err := g.AddNode(newType("com.example.Order", FormClass))
	if err == nil {
		t.Fatal("expected duplicate node to be rejected")
	}
	if !errors.IsCode(err, errors.InvariantViolation) {
		t.Errorf("expected INVARIANT_VIOLATION, got %v", err)
	}
	if !strings.Contains(err.Error(), "com.example.Order") {
		t.Errorf("error should name the offending id, got %q", err.Error())
	}
}

func TestAddEdgeRejectsMissingEndpoints(t *testing.T) {
	tests := []struct {
		name string
		from NodeId
		to   NodeId
	}{
		{"missing from", TypeId("com.example.Ghost"), TypeId("com.example.Order")},
		{"missing to", TypeId("com.example.Order"), TypeId("com.example.Ghost")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(Metadata{})
			g.MustAddNode(newType("com.example.Order", FormClass))
			err := g.AddEdge(Raw(tt.from, tt.to, EdgeReferences))
			if err == nil {
				t.Fatal("expected edge with missing endpoint to be rejected")
			}
			if !errors.IsCode(err, errors.InvariantViolation) {
				t.Errorf("expected INVARIANT_VIOLATION, got %v", err)
			}
		})
	}
}

func TestAddEdgeEnforcesProofPairing(t *testing.T) {
	g := New(Metadata{})
	g.MustAddNode(newType("a.A", FormInterface))
	g.MustAddNode(newType("a.B", FormClass))

	derivedWithoutProof := Edge{From: TypeId("a.A"), To: TypeId("a.B"), Kind: EdgeUsesInSignature, Origin: OriginDerived}
	if err := g.AddEdge(derivedWithoutProof); err == nil {
		t.Error("expected derived edge without proof to be rejected")
	}

	rawWithProof := Edge{
		From: TypeId("a.A"), To: TypeId("a.B"), Kind: EdgeReferences, Origin: OriginRaw,
		Proof: &Proof{SourceNode: TypeId("a.A"), Via: "field", Rule: RuleSignatureUsage},
	}
	if err := g.AddEdge(rawWithProof); err == nil {
		t.Error("expected raw edge with proof to be rejected")
	}

	ok := Derived(TypeId("a.A"), TypeId("a.B"), EdgeUsesInSignature, Proof{
		SourceNode: TypeId("a.A"), Via: "return", Rule: RuleSignatureUsage,
	})
	if err := g.AddEdge(ok); err != nil {
		t.Errorf("valid derived edge rejected: %v", err)
	}
}

func TestContainsEdge(t *testing.T) {
	g := New(Metadata{})
	g.MustAddNode(newType("a.A", FormClass))
	g.MustAddNode(newType("a.B", FormClass))
	g.MustAddEdge(Raw(TypeId("a.A"), TypeId("a.B"), EdgeFieldType))

	if !g.ContainsEdge(TypeId("a.A"), TypeId("a.B"), EdgeFieldType) {
		t.Error("edge should be present")
	}
	if g.ContainsEdge(TypeId("a.B"), TypeId("a.A"), EdgeFieldType) {
		t.Error("reversed edge should not be present")
	}
	if g.ContainsEdge(TypeId("a.A"), TypeId("a.B"), EdgeReferences) {
		t.Error("other kind should not be present")
	}
}

func TestRawDerivedPartitions(t *testing.T) {
	g := New(Metadata{})
	g.MustAddNode(newType("a.A", FormInterface))
	g.MustAddNode(newType("a.B", FormClass))
	g.MustAddEdge(Raw(TypeId("a.A"), TypeId("a.B"), EdgeReferences))
	g.MustAddEdge(Derived(TypeId("a.A"), TypeId("a.B"), EdgeUsesInSignature, Proof{
		SourceNode: TypeId("a.A"), Via: "return", Rule: RuleSignatureUsage,
	}))

	if got := len(g.RawEdges()); got != 1 {
		t.Errorf("raw edges = %d, want 1", got)
	}
	if got := len(g.DerivedEdges()); got != 1 {
		t.Errorf("derived edges = %d, want 1", got)
	}
	if got := g.EdgeCount(); got != 2 {
		t.Errorf("edge count = %d, want 2", got)
	}
}

func TestNodeIdEncoding(t *testing.T) {
	tests := []struct {
		name      string
		id        NodeId
		kind      NodeKind
		qualified string
	}{
		{"type", TypeId("com.example.Order"), KindType, "com.example.Order"},
		{"field", FieldId("com.example.Order", "id"), KindField, "com.example.Order"},
		{"method", MethodId("com.example.Order", "total", ""), KindMethod, "com.example.Order"},
		{"ctor", ConstructorId("com.example.Order", "OrderId"), KindConstructor, "com.example.Order"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.id.Kind(); got != tt.kind {
				t.Errorf("Kind() = %q, want %q", got, tt.kind)
			}
			if got := tt.id.QualifiedName(); got != tt.qualified {
				t.Errorf("QualifiedName() = %q, want %q", got, tt.qualified)
			}
		})
	}
}

func TestIndexLookups(t *testing.T) {
	g := New(Metadata{})
	order := newType("com.shop.order.Order", FormClass)
	order.Annots = []AnnotationRef{{Name: "com.shop.AggregateRoot"}}
	repo := newType("com.shop.order.OrderRepository", FormInterface)
	g.MustAddNode(order)
	g.MustAddNode(repo)
	g.MustAddNode(&FieldNode{Name: "id", DeclaringType: "com.shop.order.Order", Type: TypeRef{Name: "long"}})

	ix := g.Indexes()
	if got := len(ix.TypesInPackage("com.shop.order")); got != 2 {
		t.Errorf("types in package = %d, want 2", got)
	}
	if got := len(ix.TypesByForm(FormInterface)); got != 1 {
		t.Errorf("interfaces = %d, want 1", got)
	}
	if got := len(ix.TypesByAnnotation("AggregateRoot")); got != 1 {
		t.Errorf("annotated types = %d, want 1", got)
	}
	if got := len(ix.MembersOf(order.ID())); got != 1 {
		t.Errorf("members of Order = %d, want 1", got)
	}
	declaring, ok := ix.DeclaringTypeOf(FieldId("com.shop.order.Order", "id"))
	if !ok || declaring != order.ID() {
		t.Errorf("declaring type = %v (%v), want %v", declaring, ok, order.ID())
	}
}
