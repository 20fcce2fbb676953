package archquery

import (
	"math"
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"

	"archlens/internal/graph"
)

// LakosMetrics are John Lakos' cumulative dependency metrics for a set of
// types. Sets of one or fewer types have no meaningful dependency structure
// and report zeros throughout.
type LakosMetrics struct {
	Types int     `json:"types"`
	CCD   int     `json:"ccd"`
	ACD   float64 `json:"acd"`
	NCCD  float64 `json:"nccd"`
	RACD  float64 `json:"racd"`
}

const closureCacheSize = 4096

// Lakos computes dependency metrics over REFERENCES edges. Full-graph
// closure sizes are memoized, so repeated queries over the same graph do
// not recompute the reachability of hot types.
type Lakos struct {
	adj   map[string][]string
	types []string
	cache *lru.Cache[string, int]
}

// NewLakos prepares the computation for a graph.
func NewLakos(g *graph.Graph) *Lakos {
	adj := dependencyAdjacency(g, CycleTypes)
	types := make([]string, 0, len(adj))
	for name := range adj {
		types = append(types, name)
	}
	sort.Strings(types)

	cache, _ := lru.New[string, int](closureCacheSize)
	return &Lakos{adj: adj, types: types, cache: cache}
}

// DependsOn returns the number of types the given type transitively depends
// on, itself excluded. Unknown types depend on nothing.
func (l *Lakos) DependsOn(qualified string) int {
	if _, ok := l.adj[qualified]; !ok {
		return 0
	}
	if v, ok := l.cache.Get(qualified); ok {
		return v
	}
	v := closureSize(qualified, l.adj, nil)
	l.cache.Add(qualified, v)
	return v
}

// Global computes the metrics over every type in the graph.
func (l *Lakos) Global() LakosMetrics {
	return l.metrics(l.types, func(t string) int { return l.DependsOn(t) })
}

// Package computes the metrics over the types of one package, with
// dependencies restricted to that package.
func (l *Lakos) Package(pkg string) LakosMetrics {
	var members []string
	for _, t := range l.types {
		if packageOf(t) == pkg {
			members = append(members, t)
		}
	}
	return l.ForTypes(members)
}

// ForTypes computes the metrics over an arbitrary set of types, with
// dependencies restricted to that set.
func (l *Lakos) ForTypes(types []string) LakosMetrics {
	restrict := make(map[string]struct{}, len(types))
	for _, t := range types {
		if _, ok := l.adj[t]; ok {
			restrict[t] = struct{}{}
		}
	}
	members := make([]string, 0, len(restrict))
	for t := range restrict {
		members = append(members, t)
	}
	sort.Strings(members)
	return l.metrics(members, func(t string) int {
		return closureSize(t, l.adj, restrict)
	})
}

func (l *Lakos) metrics(types []string, dependsOn func(string) int) LakosMetrics {
	n := len(types)
	if n <= 1 {
		return LakosMetrics{Types: n}
	}
	ccd := 0
	for _, t := range types {
		ccd += dependsOn(t)
	}
	fn := float64(n)
	logN := math.Log2(fn)
	acd := float64(ccd) / fn
	return LakosMetrics{
		Types: n,
		CCD:   ccd,
		ACD:   acd,
		NCCD:  float64(ccd) / (fn * logN),
		RACD:  acd / logN,
	}
}

// closureSize walks the reachable set of a type, tolerating cycles, and
// returns its size minus the type itself, floored at zero. A non-nil
// restrict set limits the walk to its members.
func closureSize(start string, adj map[string][]string, restrict map[string]struct{}) int {
	visited := map[string]struct{}{start: {}}
	stack := []string{start}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, next := range adj[current] {
			if restrict != nil {
				if _, ok := restrict[next]; !ok {
					continue
				}
			}
			if _, ok := visited[next]; ok {
				continue
			}
			visited[next] = struct{}{}
			stack = append(stack, next)
		}
	}
	if len(visited) <= 1 {
		return 0
	}
	return len(visited) - 1
}
