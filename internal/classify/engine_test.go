package classify

import (
	"testing"

	"archlens/internal/graph"
)

type testKind string

func fixedRule(name, id string, priority int, kind testKind, conf ConfidenceLevel) Criterion[testKind] {
	return &rule[testKind]{
		name:     name,
		id:       id,
		priority: priority,
		kind:     kind,
		eval: func(t *graph.TypeNode, q *graph.Query) MatchResult {
			return Match(conf, "matched by "+name)
		},
	}
}

func silentRule(name, id string, priority int, kind testKind) Criterion[testKind] {
	return &rule[testKind]{
		name:     name,
		id:       id,
		priority: priority,
		kind:     kind,
		eval: func(t *graph.TypeNode, q *graph.Query) MatchResult {
			return NoMatch()
		},
	}
}

func engineTarget(t *testing.T) (*graph.TypeNode, *graph.Query) {
	t.Helper()
	g := graph.New(graph.Metadata{})
	node := &graph.TypeNode{Qualified: "a.Subject", Form: graph.FormClass}
	g.MustAddNode(node)
	return node, g.Query()
}

func TestClassifyNoContributions(t *testing.T) {
	node, q := engineTarget(t)
	engine := NewEngine([]Criterion[testKind]{
		silentRule("never", "test.never", 80, "A"),
	}, nil, nil)

	r := engine.Classify(node, q)
	if r.Status != StatusUnclassified {
		t.Errorf("status = %s, want UNCLASSIFIED", r.Status)
	}
}

func TestClassifyHigherPriorityWins(t *testing.T) {
	node, q := engineTarget(t)
	engine := NewEngine([]Criterion[testKind]{
		fixedRule("weak naming", "test.naming", 50, "A", High),
		fixedRule("explicit marker", "test.marker", 100, "B", Explicit),
	}, nil, nil)

	r := engine.Classify(node, q)
	if r.Status != StatusClassified || r.Kind != "B" {
		t.Fatalf("got %s/%s, want CLASSIFIED/B", r.Status, r.Kind)
	}
	if len(r.Conflicts) != 1 {
		t.Fatalf("conflicts = %d, want 1", len(r.Conflicts))
	}
	if r.Conflicts[0].Severity != SeverityError {
		t.Errorf("severity = %s, want ERROR (none compatible)", r.Conflicts[0].Severity)
	}
	if got := r.Conflicts[0].Justification; got != "Also matched with matched by weak naming" {
		t.Errorf("justification = %q", got)
	}
}

func TestClassifyConfidenceBreaksPriorityTie(t *testing.T) {
	node, q := engineTarget(t)
	engine := NewEngine([]Criterion[testKind]{
		fixedRule("low rule", "test.low", 80, "A", Low),
		fixedRule("high rule", "test.high", 80, "A", High),
	}, nil, nil)

	r := engine.Classify(node, q)
	if r.Justification != "matched by high rule" {
		t.Errorf("winner = %q, want the higher-confidence rule", r.Justification)
	}
}

func TestClassifyNameBreaksFullTie(t *testing.T) {
	node, q := engineTarget(t)
	compat := NewPairCompatibility([2]testKind{"A", "B"})
	engine := NewEngine([]Criterion[testKind]{
		fixedRule("beta", "test.beta", 80, "B", High),
		fixedRule("alpha", "test.alpha", 80, "A", High),
	}, compat, nil)

	r := engine.Classify(node, q)
	if r.Status != StatusClassified || r.Kind != "A" {
		t.Fatalf("got %s/%s, want CLASSIFIED/A (lexicographically smaller name)", r.Status, r.Kind)
	}
	// Compatible loser is only a warning.
	if len(r.Conflicts) != 1 || r.Conflicts[0].Severity != SeverityWarning {
		t.Errorf("conflicts = %+v, want one WARNING", r.Conflicts)
	}
}

func TestClassifyIncompatibleTieIsConflict(t *testing.T) {
	node, q := engineTarget(t)
	engine := NewEngine([]Criterion[testKind]{
		fixedRule("alpha", "test.alpha", 80, "A", High),
		fixedRule("beta", "test.beta", 80, "B", High),
	}, NoneCompatible[testKind](), nil)

	r := engine.Classify(node, q)
	if r.Status != StatusConflict {
		t.Fatalf("status = %s, want CONFLICT", r.Status)
	}
	if len(r.Conflicts) == 0 {
		t.Error("conflict result should keep the losing contributions")
	}
}

func TestClassifyLowerPriorityIncompatibleIsNotConflict(t *testing.T) {
	node, q := engineTarget(t)
	engine := NewEngine([]Criterion[testKind]{
		fixedRule("alpha", "test.alpha", 80, "A", High),
		fixedRule("beta", "test.beta", 70, "B", High),
	}, NoneCompatible[testKind](), nil)

	r := engine.Classify(node, q)
	if r.Status != StatusClassified || r.Kind != "A" {
		t.Fatalf("got %s/%s, want CLASSIFIED/A", r.Status, r.Kind)
	}
	if len(r.Conflicts) != 1 || r.Conflicts[0].Severity != SeverityError {
		t.Errorf("conflicts = %+v, want one ERROR", r.Conflicts)
	}
}

func TestClassifyProfileOverridesPriority(t *testing.T) {
	node, q := engineTarget(t)
	profile := &Profile{Priorities: map[string]int{"test.naming": 100}}
	engine := NewEngine([]Criterion[testKind]{
		fixedRule("naming", "test.naming", 50, "A", High),
		fixedRule("structural", "test.structural", 80, "B", High),
	}, NoneCompatible[testKind](), profile)

	r := engine.Classify(node, q)
	if r.Kind != "A" {
		t.Errorf("kind = %s, want A (boosted by profile)", r.Kind)
	}
}

func TestClassifyDeterministicAcrossCriteriaOrder(t *testing.T) {
	node, q := engineTarget(t)
	criteria := []Criterion[testKind]{
		fixedRule("alpha", "test.alpha", 80, "A", High),
		fixedRule("beta", "test.beta", 80, "A", High),
		fixedRule("gamma", "test.gamma", 50, "A", Explicit),
	}
	reversed := []Criterion[testKind]{criteria[2], criteria[1], criteria[0]}

	first := NewEngine(criteria, nil, nil).Classify(node, q)
	second := NewEngine(reversed, nil, nil).Classify(node, q)
	if first.Justification != second.Justification {
		t.Errorf("criteria order changed the winner: %q vs %q", first.Justification, second.Justification)
	}
	if first.Justification != "matched by alpha" {
		t.Errorf("winner = %q, want alpha", first.Justification)
	}
}
