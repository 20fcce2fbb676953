package archquery

import (
	"sort"

	"archlens/internal/graph"
)

// StabilityViolation is a dependency pointing the wrong way: a type
// depending on something less stable than itself.
type StabilityViolation struct {
	From            string  `json:"from"`
	To              string  `json:"to"`
	FromInstability float64 `json:"fromInstability"`
	ToInstability   float64 `json:"toInstability"`
}

// StabilityViolations finds REFERENCES edges whose target is less stable
// (higher per-type instability) than their source. Results are sorted by
// source, then target.
func StabilityViolations(g *graph.Graph) []StabilityViolation {
	instability := typeInstability(g)

	var out []StabilityViolation
	for _, e := range g.EdgesByKind(graph.EdgeReferences) {
		from := e.From.QualifiedName()
		to := e.To.QualifiedName()
		if instability[to] > instability[from] {
			out = append(out, StabilityViolation{
				From:            from,
				To:              to,
				FromInstability: instability[from],
				ToInstability:   instability[to],
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})
	return out
}

// typeInstability computes Ce/(Ca+Ce) per type over REFERENCES edges.
func typeInstability(g *graph.Graph) map[string]float64 {
	in := make(map[string]int)
	out := make(map[string]int)
	for _, e := range g.EdgesByKind(graph.EdgeReferences) {
		out[e.From.QualifiedName()]++
		in[e.To.QualifiedName()]++
	}

	result := make(map[string]float64)
	for _, t := range g.TypeNodes() {
		ca := in[t.Qualified]
		ce := out[t.Qualified]
		if ca+ce > 0 {
			result[t.Qualified] = float64(ce) / float64(ca+ce)
		}
	}
	return result
}
