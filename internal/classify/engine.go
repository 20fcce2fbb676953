package classify

import (
	"sort"

	"archlens/internal/graph"
)

// Status is the outcome of classifying one type.
type Status string

const (
	StatusClassified   Status = "CLASSIFIED"
	StatusUnclassified Status = "UNCLASSIFIED"
	// StatusConflict means incompatible kinds matched with equal authority
	// and no winner can honestly be picked.
	StatusConflict Status = "CONFLICT"
)

// Severity grades a losing contribution.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityWarning Severity = "WARNING"
)

// Conflict records a losing contribution kept on the result.
type Conflict[K comparable] struct {
	Kind          K               `json:"kind"`
	CriterionName string          `json:"criterion"`
	Severity      Severity        `json:"severity"`
	Confidence    ConfidenceLevel `json:"confidence"`
	Justification string          `json:"justification"`
}

// Result is the classification of one type.
type Result[K comparable] struct {
	Node          graph.NodeId      `json:"node"`
	Status        Status            `json:"status"`
	Kind          K                 `json:"kind,omitempty"`
	Confidence    ConfidenceLevel   `json:"confidence,omitempty"`
	Justification string            `json:"justification,omitempty"`
	Evidence      []Evidence        `json:"evidence,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
	Conflicts     []Conflict[K]     `json:"conflicts,omitempty"`
}

// Engine evaluates a fixed criteria set against types and decides a single
// kind per type. Classification is total: a type no criterion matches is
// UNCLASSIFIED, never an error.
type Engine[K comparable] struct {
	criteria []Criterion[K]
	compat   CompatibilityPolicy[K]
	profile  *Profile
}

// NewEngine creates an engine. A nil profile means no priority overrides;
// a nil policy treats all distinct kinds as incompatible.
func NewEngine[K comparable](criteria []Criterion[K], compat CompatibilityPolicy[K], profile *Profile) *Engine[K] {
	if compat == nil {
		compat = NoneCompatible[K]()
	}
	return &Engine[K]{criteria: criteria, compat: compat, profile: profile}
}

// Classify evaluates every criterion against the type and decides.
func (e *Engine[K]) Classify(t *graph.TypeNode, q *graph.Query) Result[K] {
	contributions := e.contributions(t, q)
	return e.decide(t, contributions)
}

func (e *Engine[K]) contributions(t *graph.TypeNode, q *graph.Query) []Contribution[K] {
	var out []Contribution[K]
	for _, c := range e.criteria {
		m := c.Evaluate(t, q)
		if !m.Matched {
			continue
		}
		out = append(out, Contribution[K]{
			Kind:          c.Kind(),
			Priority:      e.profile.PriorityFor(c.ID(), c.Priority()),
			Confidence:    m.Confidence,
			Justification: m.Justification,
			Evidence:      m.Evidence,
			CriterionName: c.Name(),
			CriterionID:   c.ID(),
			Metadata:      m.Metadata,
		})
	}
	return out
}

// decide ranks contributions by priority, then confidence weight, then
// criterion name ascending. Names are unique per engine, so the ranking
// always produces a single winner for the same input.
func (e *Engine[K]) decide(t *graph.TypeNode, contributions []Contribution[K]) Result[K] {
	if len(contributions) == 0 {
		return Result[K]{Node: t.ID(), Status: StatusUnclassified}
	}

	ranked := make([]Contribution[K], len(contributions))
	copy(ranked, contributions)
	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		if a.Confidence != b.Confidence {
			return a.Confidence.Weight() > b.Confidence.Weight()
		}
		return a.CriterionName < b.CriterionName
	})

	winner := ranked[0]
	var conflicts []Conflict[K]
	conflicted := false
	for _, c := range ranked[1:] {
		if c.Kind == winner.Kind {
			continue
		}
		incompatible := !e.compat.Compatible(winner.Kind, c.Kind)
		if incompatible && c.Priority == winner.Priority {
			conflicted = true
		}
		severity := SeverityWarning
		if incompatible {
			severity = SeverityError
		}
		conflicts = append(conflicts, Conflict[K]{
			Kind:          c.Kind,
			CriterionName: c.CriterionName,
			Severity:      severity,
			Confidence:    c.Confidence,
			Justification: "Also matched with " + c.Justification,
		})
	}

	if conflicted {
		return Result[K]{Node: t.ID(), Status: StatusConflict, Conflicts: conflicts}
	}
	return Result[K]{
		Node:          t.ID(),
		Status:        StatusClassified,
		Kind:          winner.Kind,
		Confidence:    winner.Confidence,
		Justification: winner.Justification,
		Evidence:      winner.Evidence,
		Metadata:      winner.Metadata,
		Conflicts:     conflicts,
	}
}
