package archquery

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLakosSingleType(t *testing.T) {
	g := refGraph(t, []string{"x.A"}, nil)
	m := NewLakos(g).Global()
	if m.Types != 1 || m.CCD != 0 || m.ACD != 0 || m.NCCD != 0 || m.RACD != 0 {
		t.Errorf("single type metrics = %+v, want zeros", m)
	}
}

func TestLakosIndependentTypes(t *testing.T) {
	g := refGraph(t, []string{"x.A", "x.B", "x.C", "x.D"}, nil)
	m := NewLakos(g).Global()
	if m.Types != 4 {
		t.Fatalf("types = %d, want 4", m.Types)
	}
	if m.CCD != 0 {
		t.Errorf("CCD = %d, want 0 (no dependencies)", m.CCD)
	}
	if m.ACD != 0 || m.NCCD != 0 || m.RACD != 0 {
		t.Errorf("derived metrics should be zero: %+v", m)
	}
}

func TestLakosChain(t *testing.T) {
	// A -> B -> C -> D: DependsOn 3, 2, 1, 0.
	g := refGraph(t,
		[]string{"x.A", "x.B", "x.C", "x.D"},
		[][2]string{{"x.A", "x.B"}, {"x.B", "x.C"}, {"x.C", "x.D"}},
	)
	l := NewLakos(g)

	tests := []struct {
		typ  string
		want int
	}{
		{"x.A", 3},
		{"x.B", 2},
		{"x.C", 1},
		{"x.D", 0},
	}
	for _, tt := range tests {
		if got := l.DependsOn(tt.typ); got != tt.want {
			t.Errorf("DependsOn(%s) = %d, want %d", tt.typ, got, tt.want)
		}
	}

	m := l.Global()
	if m.CCD != 6 {
		t.Errorf("CCD = %d, want 6", m.CCD)
	}
	if !almostEqual(m.ACD, 1.5) {
		t.Errorf("ACD = %v, want 1.5", m.ACD)
	}
	// n=4: log2(4)=2, NCCD = 6/(4*2), RACD = 1.5/2.
	if !almostEqual(m.NCCD, 0.75) {
		t.Errorf("NCCD = %v, want 0.75", m.NCCD)
	}
	if !almostEqual(m.RACD, 0.75) {
		t.Errorf("RACD = %v, want 0.75", m.RACD)
	}
}

func TestLakosToleratesCycles(t *testing.T) {
	g := refGraph(t,
		[]string{"x.A", "x.B"},
		[][2]string{{"x.A", "x.B"}, {"x.B", "x.A"}},
	)
	l := NewLakos(g)
	if got := l.DependsOn("x.A"); got != 1 {
		t.Errorf("DependsOn(A) = %d, want 1", got)
	}
	if got := l.DependsOn("x.B"); got != 1 {
		t.Errorf("DependsOn(B) = %d, want 1", got)
	}
}

func TestLakosUnknownType(t *testing.T) {
	g := refGraph(t, []string{"x.A"}, nil)
	if got := NewLakos(g).DependsOn("x.Ghost"); got != 0 {
		t.Errorf("DependsOn(unknown) = %d, want 0", got)
	}
}

func TestLakosCachedLookupsStable(t *testing.T) {
	g := refGraph(t,
		[]string{"x.A", "x.B", "x.C"},
		[][2]string{{"x.A", "x.B"}, {"x.B", "x.C"}},
	)
	l := NewLakos(g)
	first := l.DependsOn("x.A")
	second := l.DependsOn("x.A")
	if first != second || first != 2 {
		t.Errorf("repeated lookups = %d then %d, want 2 both times", first, second)
	}
}

func TestLakosPackageRestricted(t *testing.T) {
	// The cross-package dependency must not count inside the package view.
	g := refGraph(t,
		[]string{"com.x.a.One", "com.x.a.Two", "com.x.b.Three"},
		[][2]string{{"com.x.a.One", "com.x.a.Two"}, {"com.x.a.Two", "com.x.b.Three"}},
	)
	m := NewLakos(g).Package("com.x.a")
	if m.Types != 2 {
		t.Fatalf("types = %d, want 2", m.Types)
	}
	if m.CCD != 1 {
		t.Errorf("CCD = %d, want 1 (only the in-package dependency)", m.CCD)
	}
}
