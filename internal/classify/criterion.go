package classify

import "archlens/internal/graph"

// MatchResult is the outcome of evaluating one criterion against one type.
type MatchResult struct {
	Matched       bool
	Confidence    ConfidenceLevel
	Justification string
	Evidence      []Evidence
	// Metadata carries criterion-specific attributes of the match,
	// e.g. the direction of a port.
	Metadata map[string]string
}

// NoMatch reports that the criterion does not apply.
func NoMatch() MatchResult {
	return MatchResult{}
}

// Match reports a positive result with the given confidence and evidence.
func Match(confidence ConfidenceLevel, justification string, evidence ...Evidence) MatchResult {
	return MatchResult{
		Matched:       true,
		Confidence:    confidence,
		Justification: justification,
		Evidence:      evidence,
	}
}

// WithMetadata attaches a metadata attribute to the result.
func (r MatchResult) WithMetadata(key, value string) MatchResult {
	if r.Metadata == nil {
		r.Metadata = make(map[string]string)
	}
	r.Metadata[key] = value
	return r
}

// Criterion votes for a single kind K when its rule applies to a type.
// Priority expresses how authoritative the rule is: explicit markers sit at
// 100, strong structural and naming rules around 80, inherited traits at 75,
// graph-shape rules at 70, weak naming fallbacks at 50.
type Criterion[K comparable] interface {
	// Name is the unique, human-readable rule name. Ranking ties break on
	// it, so names must be unique within an engine.
	Name() string
	// ID is the stable identifier used for profile priority overrides.
	ID() string
	Priority() int
	Kind() K
	Evaluate(t *graph.TypeNode, q *graph.Query) MatchResult
}

// Contribution is one positive vote produced by a criterion, with the
// effective priority after profile overrides.
type Contribution[K comparable] struct {
	Kind          K                 `json:"kind"`
	Priority      int               `json:"priority"`
	Confidence    ConfidenceLevel   `json:"confidence"`
	Justification string            `json:"justification"`
	Evidence      []Evidence        `json:"evidence,omitempty"`
	CriterionName string            `json:"criterion"`
	CriterionID   string            `json:"criterionId"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}
