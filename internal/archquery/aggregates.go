package archquery

import (
	"math"
	"sort"
	"strings"

	"archlens/internal/classify"
	"archlens/internal/graph"
)

// MemberRole is the role a type plays inside an aggregate.
type MemberRole string

const (
	MemberEntity      MemberRole = "ENTITY"
	MemberValueObject MemberRole = "VALUE_OBJECT"
	MemberUnknown     MemberRole = "UNKNOWN"
)

// AggregateMember is one type belonging to an aggregate.
type AggregateMember struct {
	Type string     `json:"type"`
	Role MemberRole `json:"role"`
}

// Aggregate is a consistency boundary: a root, the types reachable from it
// by one structural step, and the repository managing it.
type Aggregate struct {
	Root       string            `json:"root"`
	Repository string            `json:"repository,omitempty"`
	Members    []AggregateMember `json:"members"`
	Cohesion   float64           `json:"cohesion"`
}

// Structural edge kinds that pull a type into an aggregate boundary.
// Method return and parameter types stay outside: a root merely mentioning
// a type in a signature does not own it.
var memberEdgeKinds = map[graph.EdgeKind]struct{}{
	graph.EdgeFieldType:               {},
	graph.EdgeTypeArgument:            {},
	graph.EdgeUsesAsCollectionElement: {},
}

// Aggregates discovers aggregate boundaries. Roots are found through the
// classification when available: types a REPOSITORY port mentions in its
// signatures. Without a usable classification the "*Repository" interface
// naming convention decides. Results are sorted by root name.
func Aggregates(g *graph.Graph, c *classify.Classification) []Aggregate {
	roots := aggregateRoots(g, c)

	out := make([]Aggregate, 0, len(roots))
	for _, root := range sortedKeys(roots) {
		agg := Aggregate{Root: root, Repository: roots[root]}
		members := collectMembers(g, root)
		for _, member := range members {
			agg.Members = append(agg.Members, AggregateMember{
				Type: member,
				Role: memberRole(g, member),
			})
		}
		agg.Cohesion = cohesion(g, members)
		out = append(out, agg)
	}
	return out
}

// MembershipMap maps every member type to the root of its aggregate.
// A type reachable from several roots maps to the lexicographically
// smallest one.
func MembershipMap(g *graph.Graph, c *classify.Classification) map[string]string {
	out := make(map[string]string)
	for _, agg := range Aggregates(g, c) {
		for _, m := range agg.Members {
			if existing, ok := out[m.Type]; !ok || agg.Root < existing {
				out[m.Type] = agg.Root
			}
		}
	}
	return out
}

// RepositoryFor returns the repository managing the given root type.
func RepositoryFor(g *graph.Graph, c *classify.Classification, root string) (string, bool) {
	repo, ok := aggregateRoots(g, c)[root]
	return repo, ok && repo != ""
}

// aggregateRoots maps root qualified names to their repository.
func aggregateRoots(g *graph.Graph, c *classify.Classification) map[string]string {
	roots := make(map[string]string)
	for _, t := range g.TypeNodes() {
		if !t.IsInterface() || !isRepository(t, c) {
			continue
		}
		for _, e := range g.EdgesFrom(t.ID()) {
			if e.Kind != graph.EdgeUsesInSignature {
				continue
			}
			target, ok := g.TypeNode(e.To)
			if !ok || !isRootCandidate(g, target, c) {
				continue
			}
			if existing, dup := roots[target.Qualified]; !dup || t.Qualified < existing {
				roots[target.Qualified] = t.Qualified
			}
		}
	}
	return roots
}

func isRepository(t *graph.TypeNode, c *classify.Classification) bool {
	if c != nil {
		if kind, ok := c.PortKindOf(t.ID()); ok {
			return kind == classify.PortRepository
		}
	}
	return strings.HasSuffix(t.SimpleName(), "Repository")
}

// isRootCandidate keeps identifiers and value objects out of the root set:
// a repository's signatures mention the id type too.
func isRootCandidate(g *graph.Graph, t *graph.TypeNode, c *classify.Classification) bool {
	if t.IsInterface() {
		return false
	}
	if c != nil {
		if kind, ok := c.DomainKindOf(t.ID()); ok {
			return kind == classify.AggregateRoot || kind == classify.Entity
		}
	}
	return hasIdentityField(g, t)
}

// collectMembers gathers the root and every type one structural edge away.
func collectMembers(g *graph.Graph, root string) []string {
	members := map[string]struct{}{root: {}}
	rootId := graph.TypeId(root)
	for _, e := range g.EdgesFrom(rootId) {
		if _, ok := memberEdgeKinds[e.Kind]; !ok {
			continue
		}
		if target, ok := g.TypeNode(e.To); ok {
			members[target.Qualified] = struct{}{}
		}
	}
	return sortedMemberSet(members)
}

func memberRole(g *graph.Graph, qualified string) MemberRole {
	t, ok := g.TypeByName(qualified)
	if !ok {
		return MemberUnknown
	}
	if hasIdentityField(g, t) {
		return MemberEntity
	}
	if isImmutableValue(g, t) {
		return MemberValueObject
	}
	return MemberUnknown
}

// cohesion is the share of possible internal links actually present:
// min(1, internal/max(1, m-1)), rounded to two decimals. A single-member
// aggregate is fully cohesive. The root references every member by
// construction, so internal is at least m-1 and the capped ratio always
// saturates at 1.0 for member sets produced by collectMembers; the score
// does not discriminate between tightly and loosely linked members.
func cohesion(g *graph.Graph, members []string) float64 {
	if len(members) <= 1 {
		return 1.0
	}
	inside := make(map[graph.NodeId]struct{}, len(members))
	for _, m := range members {
		inside[graph.TypeId(m)] = struct{}{}
	}
	internal := 0
	for _, e := range g.EdgesByKind(graph.EdgeReferences) {
		if _, from := inside[e.From]; !from {
			continue
		}
		if _, to := inside[e.To]; to {
			internal++
		}
	}
	ratio := math.Min(1, float64(internal)/float64(len(members)-1))
	return math.Round(ratio*100) / 100
}

func hasIdentityField(g *graph.Graph, t *graph.TypeNode) bool {
	for _, id := range g.Indexes().MembersOf(t.ID()) {
		if f, ok := g.FieldNode(id); ok {
			if f.Name == "id" || strings.HasSuffix(f.Name, "Id") {
				return true
			}
		}
	}
	return false
}

func isImmutableValue(g *graph.Graph, t *graph.TypeNode) bool {
	if t.IsRecord() {
		return true
	}
	fields := 0
	for _, id := range g.Indexes().MembersOf(t.ID()) {
		if f, ok := g.FieldNode(id); ok {
			fields++
			if !f.IsFinal() {
				return false
			}
		}
	}
	return fields > 0
}

func sortedKeys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedMemberSet(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
