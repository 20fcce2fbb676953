package archquery

import (
	"testing"

	"archlens/internal/graph"
)

func TestCouplingEmptyPackage(t *testing.T) {
	g := refGraph(t, []string{"x.A"}, nil)
	c := Coupling(g, "does.not.exist")
	if c.Ca != 0 || c.Ce != 0 || c.Instability != 0 || c.Abstractness != 0 || c.Distance != 0 {
		t.Errorf("empty package coupling = %+v, want zeros", c)
	}
	if c.Zone != "" {
		t.Errorf("empty package zone = %q, want none", c.Zone)
	}
}

func TestCouplingCounts(t *testing.T) {
	// pkg a: One, Two. pkg b: Three references One and Two; Two references
	// Three and an external-package type Four.
	g := refGraph(t,
		[]string{"com.x.a.One", "com.x.a.Two", "com.x.b.Three", "com.x.c.Four"},
		[][2]string{
			{"com.x.b.Three", "com.x.a.One"},
			{"com.x.b.Three", "com.x.a.Two"},
			{"com.x.a.Two", "com.x.b.Three"},
			{"com.x.a.Two", "com.x.c.Four"},
		},
	)
	c := Coupling(g, "com.x.a")
	// One incoming type (Three), two outgoing (Three, Four).
	if c.Ca != 1 {
		t.Errorf("Ca = %d, want 1", c.Ca)
	}
	if c.Ce != 2 {
		t.Errorf("Ce = %d, want 2", c.Ce)
	}
	if !almostEqual(c.Instability, 2.0/3.0) {
		t.Errorf("I = %v, want 2/3", c.Instability)
	}
	if c.Abstractness != 0 {
		t.Errorf("A = %v, want 0 (all concrete)", c.Abstractness)
	}
}

func TestCouplingAbstractness(t *testing.T) {
	g := graph.New(graph.Metadata{})
	g.MustAddNode(&graph.TypeNode{Qualified: "x.Port", Form: graph.FormInterface})
	g.MustAddNode(&graph.TypeNode{Qualified: "x.Base", Form: graph.FormClass, Mods: []graph.Modifier{graph.ModAbstract}})
	g.MustAddNode(&graph.TypeNode{Qualified: "x.Impl", Form: graph.FormClass})
	g.MustAddNode(&graph.TypeNode{Qualified: "x.Other", Form: graph.FormClass})

	c := Coupling(g, "x")
	if !almostEqual(c.Abstractness, 0.5) {
		t.Errorf("A = %v, want 0.5 (interface + abstract class out of 4)", c.Abstractness)
	}
}

func TestZoneClassification(t *testing.T) {
	tests := []struct {
		name         string
		instability  float64
		abstractness float64
		want         Zone
	}{
		{"pain", 0.1, 0.1, ZonePain},
		{"uselessness", 0.9, 0.9, ZoneUselessness},
		{"main sequence", 0.5, 0.55, ZoneMainSequence},
		{"near main sequence", 0.5, 0.7, ZoneNearMainSequence},
		{"off sequence", 0.5, 0.0, ZoneOffSequence},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			distance := tt.abstractness + tt.instability - 1
			if distance < 0 {
				distance = -distance
			}
			if got := zoneFor(tt.instability, tt.abstractness, distance); got != tt.want {
				t.Errorf("zoneFor(%v, %v) = %s, want %s", tt.instability, tt.abstractness, got, tt.want)
			}
		})
	}
}

func TestAllCouplingsSorted(t *testing.T) {
	g := refGraph(t, []string{"com.x.b.One", "com.x.a.Two", "com.x.c.Three"}, nil)
	all := AllCouplings(g)
	if len(all) != 3 {
		t.Fatalf("packages = %d, want 3", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Package >= all[i].Package {
			t.Errorf("packages out of order: %s before %s", all[i-1].Package, all[i].Package)
		}
	}
}
