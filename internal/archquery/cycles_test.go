package archquery

import (
	"reflect"
	"testing"

	"archlens/internal/graph"
)

// refGraph builds a graph of class types wired with REFERENCES edges.
func refGraph(t *testing.T, types []string, refs [][2]string) *graph.Graph {
	t.Helper()
	g := graph.New(graph.Metadata{})
	for _, name := range types {
		g.MustAddNode(&graph.TypeNode{Qualified: name, Form: graph.FormClass})
	}
	for _, ref := range refs {
		g.MustAddEdge(graph.Raw(graph.TypeId(ref[0]), graph.TypeId(ref[1]), graph.EdgeReferences))
	}
	return g
}

func TestCyclesSimpleTriangle(t *testing.T) {
	g := refGraph(t,
		[]string{"x.A", "x.B", "x.C"},
		[][2]string{{"x.A", "x.B"}, {"x.B", "x.C"}, {"x.C", "x.A"}},
	)
	cycles := Cycles(g, CycleTypes)
	if len(cycles) != 1 {
		t.Fatalf("cycles = %d, want 1", len(cycles))
	}
	want := []string{"x.A", "x.B", "x.C", "x.A"}
	if !reflect.DeepEqual(cycles[0].Path, want) {
		t.Errorf("path = %v, want %v", cycles[0].Path, want)
	}
	if cycles[0].Kind != CycleTypes {
		t.Errorf("kind = %s, want TYPE", cycles[0].Kind)
	}
}

func TestCyclesAcyclicGraph(t *testing.T) {
	g := refGraph(t,
		[]string{"x.A", "x.B", "x.C"},
		[][2]string{{"x.A", "x.B"}, {"x.B", "x.C"}, {"x.A", "x.C"}},
	)
	if cycles := Cycles(g, CycleTypes); len(cycles) != 0 {
		t.Errorf("cycles = %v, want none", cycles)
	}
}

func TestCyclesSelfReferenceIgnored(t *testing.T) {
	g := graph.New(graph.Metadata{})
	g.MustAddNode(&graph.TypeNode{Qualified: "x.Tree", Form: graph.FormClass})
	g.MustAddEdge(graph.Raw(graph.TypeId("x.Tree"), graph.TypeId("x.Tree"), graph.EdgeReferences))
	if cycles := Cycles(g, CycleTypes); len(cycles) != 0 {
		t.Errorf("self reference reported as cycle: %v", cycles)
	}
}

func TestCyclesTwoNodeCycle(t *testing.T) {
	g := refGraph(t,
		[]string{"x.A", "x.B"},
		[][2]string{{"x.A", "x.B"}, {"x.B", "x.A"}},
	)
	cycles := Cycles(g, CycleTypes)
	if len(cycles) != 1 {
		t.Fatalf("cycles = %d, want 1", len(cycles))
	}
	want := []string{"x.A", "x.B", "x.A"}
	if !reflect.DeepEqual(cycles[0].Path, want) {
		t.Errorf("path = %v, want %v", cycles[0].Path, want)
	}
}

func TestCyclesPackageGranularity(t *testing.T) {
	g := refGraph(t,
		[]string{"com.x.a.One", "com.x.a.Two", "com.x.b.Three"},
		[][2]string{
			{"com.x.a.One", "com.x.b.Three"},
			{"com.x.b.Three", "com.x.a.Two"},
			// Inside one package: must not surface at package granularity.
			{"com.x.a.One", "com.x.a.Two"},
		},
	)
	cycles := Cycles(g, CyclePackages)
	if len(cycles) != 1 {
		t.Fatalf("package cycles = %d, want 1", len(cycles))
	}
	want := []string{"com.x.a", "com.x.b", "com.x.a"}
	if !reflect.DeepEqual(cycles[0].Path, want) {
		t.Errorf("path = %v, want %v", cycles[0].Path, want)
	}
}

func TestCyclesContextGranularity(t *testing.T) {
	g := refGraph(t,
		[]string{"com.shop.order.domain.Order", "com.shop.billing.domain.Invoice"},
		[][2]string{
			{"com.shop.order.domain.Order", "com.shop.billing.domain.Invoice"},
			{"com.shop.billing.domain.Invoice", "com.shop.order.domain.Order"},
		},
	)
	cycles := Cycles(g, CycleContexts)
	if len(cycles) != 1 {
		t.Fatalf("context cycles = %d, want 1", len(cycles))
	}
	want := []string{"billing", "order", "billing"}
	if !reflect.DeepEqual(cycles[0].Path, want) {
		t.Errorf("path = %v, want %v", cycles[0].Path, want)
	}
}

func TestCyclesDeduplicated(t *testing.T) {
	// Two entry points into the same cycle must report it once.
	g := refGraph(t,
		[]string{"x.A", "x.B", "x.C", "x.D"},
		[][2]string{
			{"x.A", "x.C"},
			{"x.B", "x.C"},
			{"x.C", "x.D"},
			{"x.D", "x.C"},
		},
	)
	cycles := Cycles(g, CycleTypes)
	if len(cycles) != 1 {
		t.Errorf("cycles = %d, want 1 (deduplicated)", len(cycles))
	}
}
