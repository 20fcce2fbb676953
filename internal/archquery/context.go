package archquery

import (
	"sort"
	"strings"

	"archlens/internal/graph"
)

// BoundedContextInfo describes one inferred bounded context.
type BoundedContextInfo struct {
	Name        string   `json:"name"`
	RootPackage string   `json:"rootPackage"`
	Types       []string `json:"types"`
}

// BoundedContextOf infers the bounded context of a type from its package:
// the third package segment, by the convention <org>.<system>.<context>.
// Types whose package has fewer than three segments have no inferable
// context and yield "".
func BoundedContextOf(qualified string) string {
	segments := strings.Split(packageOf(qualified), ".")
	if len(segments) < 3 {
		return ""
	}
	return segments[2]
}

// BoundedContexts groups all types by inferred context, sorted by name.
// Types without an inferable context are left out.
func BoundedContexts(g *graph.Graph) []BoundedContextInfo {
	byName := make(map[string]*BoundedContextInfo)
	for _, t := range g.TypeNodes() {
		name := BoundedContextOf(t.Qualified)
		if name == "" {
			continue
		}
		info, ok := byName[name]
		if !ok {
			segments := strings.Split(packageOf(t.Qualified), ".")
			info = &BoundedContextInfo{
				Name:        name,
				RootPackage: strings.Join(segments[:3], "."),
			}
			byName[name] = info
		}
		info.Types = append(info.Types, t.Qualified)
	}

	out := make([]BoundedContextInfo, 0, len(byName))
	for _, info := range byName {
		sort.Strings(info.Types)
		out = append(out, *info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
