package archquery

import (
	"sort"
	"strings"

	"archlens/internal/graph"
)

// CycleKind is the granularity a cycle was detected at.
type CycleKind string

const (
	CycleTypes    CycleKind = "TYPE"
	CyclePackages CycleKind = "PACKAGE"
	CycleContexts CycleKind = "CONTEXT"
)

// Cycle is one dependency cycle. The path starts and ends with the same
// element, e.g. [A B C A].
type Cycle struct {
	Kind CycleKind `json:"kind"`
	Path []string  `json:"path"`
}

// Cycles detects dependency cycles over REFERENCES edges at the given
// granularity. Results are deterministic: nodes and neighbors are visited
// in sorted order, and each cycle is reported once.
func Cycles(g *graph.Graph, kind CycleKind) []Cycle {
	adj := dependencyAdjacency(g, kind)
	return findCycles(adj, kind)
}

// dependencyAdjacency projects REFERENCES edges onto the requested
// granularity. Self-dependencies after projection are dropped.
func dependencyAdjacency(g *graph.Graph, kind CycleKind) map[string][]string {
	project := func(qualified string) string {
		switch kind {
		case CyclePackages:
			return packageOf(qualified)
		case CycleContexts:
			return BoundedContextOf(qualified)
		default:
			return qualified
		}
	}

	adj := make(map[string]map[string]struct{})
	for _, t := range g.TypeNodes() {
		if name := project(t.Qualified); name != "" {
			if _, ok := adj[name]; !ok {
				adj[name] = make(map[string]struct{})
			}
		}
	}
	for _, e := range g.EdgesByKind(graph.EdgeReferences) {
		from := project(e.From.QualifiedName())
		to := project(e.To.QualifiedName())
		if from == "" || to == "" || from == to {
			continue
		}
		adj[from][to] = struct{}{}
	}

	out := make(map[string][]string, len(adj))
	for name, targets := range adj {
		sorted := make([]string, 0, len(targets))
		for t := range targets {
			sorted = append(sorted, t)
		}
		sort.Strings(sorted)
		out[name] = sorted
	}
	return out
}

func findCycles(adj map[string][]string, kind CycleKind) []Cycle {
	names := make([]string, 0, len(adj))
	for name := range adj {
		names = append(names, name)
	}
	sort.Strings(names)

	visited := make(map[string]bool)
	onStack := make(map[string]bool)
	seen := make(map[string]struct{})
	var path []string
	var cycles []Cycle

	var visit func(name string)
	visit = func(name string) {
		visited[name] = true
		onStack[name] = true
		path = append(path, name)

		for _, next := range adj[name] {
			if onStack[next] {
				cycle := closeCycle(path, next)
				if key := canonicalCycleKey(cycle); key != "" {
					if _, dup := seen[key]; !dup {
						seen[key] = struct{}{}
						cycles = append(cycles, Cycle{Kind: kind, Path: cycle})
					}
				}
				continue
			}
			if !visited[next] {
				visit(next)
			}
		}

		path = path[:len(path)-1]
		onStack[name] = false
	}

	for _, name := range names {
		if !visited[name] {
			visit(name)
		}
	}
	return cycles
}

// closeCycle truncates the path at the first occurrence of the repeated
// node and closes it: path [X A B C] with repeat A yields [A B C A].
func closeCycle(path []string, repeat string) []string {
	start := 0
	for i, name := range path {
		if name == repeat {
			start = i
			break
		}
	}
	cycle := make([]string, 0, len(path)-start+1)
	cycle = append(cycle, path[start:]...)
	cycle = append(cycle, repeat)
	return cycle
}

// canonicalCycleKey rotates the cycle to start at its smallest element so
// the same cycle found from different entry points deduplicates.
func canonicalCycleKey(cycle []string) string {
	if len(cycle) < 2 {
		return ""
	}
	body := cycle[:len(cycle)-1]
	min := 0
	for i := range body {
		if body[i] < body[min] {
			min = i
		}
	}
	rotated := make([]string, 0, len(body))
	rotated = append(rotated, body[min:]...)
	rotated = append(rotated, body[:min]...)
	return strings.Join(rotated, "->")
}

func packageOf(qualified string) string {
	if i := strings.LastIndexByte(qualified, '.'); i >= 0 {
		return qualified[:i]
	}
	return ""
}
