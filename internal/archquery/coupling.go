package archquery

import (
	"math"
	"sort"

	"archlens/internal/graph"
)

// Zone places a package relative to the main sequence of the
// instability/abstractness plane.
type Zone string

const (
	// ZonePain holds concrete, hard-to-change packages everything
	// depends on.
	ZonePain Zone = "PAIN"
	// ZoneUselessness holds abstract packages nothing depends on.
	ZoneUselessness      Zone = "USELESSNESS"
	ZoneMainSequence     Zone = "MAIN_SEQUENCE"
	ZoneNearMainSequence Zone = "NEAR_MAIN_SEQUENCE"
	ZoneOffSequence      Zone = "OFF_SEQUENCE"
)

// PackageCoupling is Robert Martin's coupling measurement for one package.
type PackageCoupling struct {
	Package      string  `json:"package"`
	Ca           int     `json:"afferentCoupling"`
	Ce           int     `json:"efferentCoupling"`
	Instability  float64 `json:"instability"`
	Abstractness float64 `json:"abstractness"`
	Distance     float64 `json:"distance"`
	Zone         Zone    `json:"zone"`
}

// Coupling measures one package. An empty or unknown package reports zeros
// with no zone.
func Coupling(g *graph.Graph, pkg string) PackageCoupling {
	members := g.Indexes().TypesInPackage(pkg)
	if len(members) == 0 {
		return PackageCoupling{Package: pkg}
	}

	inside := make(map[graph.NodeId]struct{}, len(members))
	for _, id := range members {
		inside[id] = struct{}{}
	}

	afferent := make(map[graph.NodeId]struct{})
	efferent := make(map[graph.NodeId]struct{})
	for _, e := range g.EdgesByKind(graph.EdgeReferences) {
		_, fromInside := inside[e.From]
		_, toInside := inside[e.To]
		switch {
		case fromInside && !toInside:
			efferent[e.To] = struct{}{}
		case !fromInside && toInside:
			afferent[e.From] = struct{}{}
		}
	}

	abstract := 0
	for _, id := range members {
		if t, ok := g.TypeNode(id); ok && (t.IsInterface() || t.IsAbstract()) {
			abstract++
		}
	}

	ca, ce := len(afferent), len(efferent)
	instability := 0.0
	if ca+ce > 0 {
		instability = float64(ce) / float64(ca+ce)
	}
	abstractness := float64(abstract) / float64(len(members))
	distance := math.Abs(abstractness + instability - 1)

	return PackageCoupling{
		Package:      pkg,
		Ca:           ca,
		Ce:           ce,
		Instability:  instability,
		Abstractness: abstractness,
		Distance:     distance,
		Zone:         zoneFor(instability, abstractness, distance),
	}
}

// AllCouplings measures every package, sorted by package name.
func AllCouplings(g *graph.Graph) []PackageCoupling {
	pkgs := g.Indexes().Packages()
	sort.Strings(pkgs)
	out := make([]PackageCoupling, 0, len(pkgs))
	for _, pkg := range pkgs {
		out = append(out, Coupling(g, pkg))
	}
	return out
}

func zoneFor(instability, abstractness, distance float64) Zone {
	switch {
	case instability < 0.3 && abstractness < 0.3:
		return ZonePain
	case instability > 0.7 && abstractness > 0.7:
		return ZoneUselessness
	case distance < 0.1:
		return ZoneMainSequence
	case distance < 0.3:
		return ZoneNearMainSequence
	default:
		return ZoneOffSequence
	}
}
