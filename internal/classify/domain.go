package classify

import (
	"fmt"
	"strings"

	"archlens/internal/graph"
)

// DomainKind is the tactical DDD role of a domain type.
type DomainKind string

const (
	AggregateRoot      DomainKind = "AGGREGATE_ROOT"
	Entity             DomainKind = "ENTITY"
	ValueObject        DomainKind = "VALUE_OBJECT"
	Identifier         DomainKind = "IDENTIFIER"
	DomainEvent        DomainKind = "DOMAIN_EVENT"
	DomainService      DomainKind = "DOMAIN_SERVICE"
	ApplicationService DomainKind = "APPLICATION_SERVICE"
)

// rule is a criterion defined by a closure. All built-in criteria use it.
type rule[K comparable] struct {
	name     string
	id       string
	priority int
	kind     K
	eval     func(t *graph.TypeNode, q *graph.Query) MatchResult
}

func (r *rule[K]) Name() string  { return r.name }
func (r *rule[K]) ID() string    { return r.id }
func (r *rule[K]) Priority() int { return r.priority }
func (r *rule[K]) Kind() K       { return r.kind }

func (r *rule[K]) Evaluate(t *graph.TypeNode, q *graph.Query) MatchResult {
	return r.eval(t, q)
}

// Annotation simple names accepted as explicit role markers.
var explicitDomainMarkers = map[DomainKind][]string{
	AggregateRoot: {"AggregateRoot"},
	Entity:        {"Entity"},
	ValueObject:   {"ValueObject"},
	Identifier:    {"Identity", "Identifier"},
	DomainEvent:   {"DomainEvent"},
	DomainService: {"DomainService", "Service"},
}

// DomainCompatibility returns the default pairing rules for domain kinds:
// a type may honestly be both aggregate root and entity; every other pair
// of distinct kinds is contradictory.
func DomainCompatibility() CompatibilityPolicy[DomainKind] {
	return NewPairCompatibility([2]DomainKind{AggregateRoot, Entity})
}

// NewDomainEngine builds the engine with the built-in domain criteria.
func NewDomainEngine(profile *Profile) *Engine[DomainKind] {
	return NewEngine(DomainCriteria(), DomainCompatibility(), profile)
}

// DomainCriteria returns the built-in domain role criteria.
func DomainCriteria() []Criterion[DomainKind] {
	criteria := make([]Criterion[DomainKind], 0, 16)
	for kind, markers := range explicitDomainMarkers {
		criteria = append(criteria, explicitMarker(kind, markers))
	}
	criteria = append(criteria,
		aggregateRootRepository(),
		identifierWrapper(),
		entityIdentityField(),
		inheritedEntity(),
		embeddedValueObject(),
		domainEventNaming(),
		domainServiceNaming(),
		applicationServiceNaming(),
	)
	return criteria
}

func explicitMarker(kind DomainKind, markers []string) Criterion[DomainKind] {
	lowerKind := strings.ToLower(string(kind))
	return &rule[DomainKind]{
		name:     "explicit " + strings.ReplaceAll(lowerKind, "_", " ") + " marker",
		id:       "domain.explicit." + lowerKind,
		priority: 100,
		kind:     kind,
		eval: func(t *graph.TypeNode, q *graph.Query) MatchResult {
			for _, marker := range markers {
				if t.HasAnnotation(marker) {
					return Match(Explicit,
						fmt.Sprintf("annotated with @%s", marker),
						Annotation(fmt.Sprintf("@%s on %s", marker, t.SimpleName()), t.ID()))
				}
			}
			return NoMatch()
		},
	}
}

// aggregateRootRepository marks types managed by a repository port.
func aggregateRootRepository() Criterion[DomainKind] {
	return &rule[DomainKind]{
		name:     "aggregate root managed by repository",
		id:       "domain.relational.repositoryReference",
		priority: 80,
		kind:     AggregateRoot,
		eval: func(t *graph.TypeNode, q *graph.Query) MatchResult {
			for _, e := range q.EdgesTo(t.ID()) {
				if e.Kind != graph.EdgeUsesInSignature {
					continue
				}
				source, ok := q.TypeById(e.From)
				if !ok || !source.IsInterface() {
					continue
				}
				if !strings.HasSuffix(source.SimpleName(), "Repository") {
					continue
				}
				return Match(High,
					fmt.Sprintf("managed by repository %s", source.SimpleName()),
					Relationship(fmt.Sprintf("%s appears in signatures of %s", t.SimpleName(), source.SimpleName()), t.ID(), source.ID()))
			}
			return NoMatch()
		},
	}
}

// identifierWrapper marks single-field wrapper types named like identities.
func identifierWrapper() Criterion[DomainKind] {
	return &rule[DomainKind]{
		name:     "identifier wrapper",
		id:       "domain.structural.identifier",
		priority: 80,
		kind:     Identifier,
		eval: func(t *graph.TypeNode, q *graph.Query) MatchResult {
			if !strings.HasSuffix(t.SimpleName(), "Id") {
				return NoMatch()
			}
			fields := q.FieldsOf(t)
			if len(fields) != 1 {
				return NoMatch()
			}
			if !t.IsRecord() && !fields[0].IsFinal() {
				return NoMatch()
			}
			return Match(High,
				"single-value wrapper named like an identity",
				Naming(fmt.Sprintf("%s ends with Id", t.SimpleName()), t.ID()),
				Structural(fmt.Sprintf("wraps a single value %s", fields[0].Name), fields[0].ID()))
		},
	}
}

// entityIdentityField marks types carrying an identity field.
func entityIdentityField() Criterion[DomainKind] {
	return &rule[DomainKind]{
		name:     "entity with identity field",
		id:       "domain.structural.identityField",
		priority: 80,
		kind:     Entity,
		eval: func(t *graph.TypeNode, q *graph.Query) MatchResult {
			if strings.HasSuffix(t.SimpleName(), "Id") {
				return NoMatch()
			}
			f, ok := identityField(t, q)
			if !ok {
				return NoMatch()
			}
			return Match(High,
				fmt.Sprintf("carries identity field %s", f.Name),
				Structural(fmt.Sprintf("field %s identifies %s", f.Name, t.SimpleName()), f.ID(), t.ID()))
		},
	}
}

// inheritedEntity marks types extending an identity-bearing supertype.
func inheritedEntity() Criterion[DomainKind] {
	return &rule[DomainKind]{
		name:     "entity by inheritance",
		id:       "domain.inherited.entity",
		priority: 75,
		kind:     Entity,
		eval: func(t *graph.TypeNode, q *graph.Query) MatchResult {
			if t.Supertype == nil {
				return NoMatch()
			}
			super, ok := q.Type(t.Supertype.Name)
			if !ok {
				return NoMatch()
			}
			_, hasIdentity := identityField(super, q)
			marked := super.HasAnnotation("Entity") || super.HasAnnotation("AggregateRoot")
			if !hasIdentity && !marked {
				return NoMatch()
			}
			return Match(Medium,
				fmt.Sprintf("extends entity %s", super.SimpleName()),
				Relationship(fmt.Sprintf("%s extends %s", t.SimpleName(), super.SimpleName()), t.ID(), super.ID()))
		},
	}
}

// embeddedValueObject marks immutable identity-free types embedded in an
// identity-bearing type.
func embeddedValueObject() Criterion[DomainKind] {
	return &rule[DomainKind]{
		name:     "embedded value object",
		id:       "domain.structural.embeddedValueObject",
		priority: 70,
		kind:     ValueObject,
		eval: func(t *graph.TypeNode, q *graph.Query) MatchResult {
			if t.IsInterface() || t.IsEnum() {
				return NoMatch()
			}
			if _, hasIdentity := identityField(t, q); hasIdentity {
				return NoMatch()
			}
			if !immutable(t, q) {
				return NoMatch()
			}
			holders := q.FieldHoldersOf(t)
			for _, e := range q.EdgesTo(t.ID()) {
				if e.Kind != graph.EdgeUsesAsCollectionElement {
					continue
				}
				if holder, ok := q.TypeById(e.From); ok {
					holders = append(holders, holder)
				}
			}
			for _, holder := range holders {
				if _, hasIdentity := identityField(holder, q); !hasIdentity {
					continue
				}
				return Match(High,
					fmt.Sprintf("immutable, identity-free, embedded in %s", holder.SimpleName()),
					Structural(fmt.Sprintf("%s is immutable and has no identity", t.SimpleName()), t.ID()),
					Relationship(fmt.Sprintf("embedded in entity %s", holder.SimpleName()), t.ID(), holder.ID()))
			}
			return NoMatch()
		},
	}
}

func domainEventNaming() Criterion[DomainKind] {
	return &rule[DomainKind]{
		name:     "event name suffix",
		id:       "domain.naming.event",
		priority: 50,
		kind:     DomainEvent,
		eval: func(t *graph.TypeNode, q *graph.Query) MatchResult {
			if !strings.HasSuffix(t.SimpleName(), "Event") {
				return NoMatch()
			}
			return Match(Low,
				"named like a domain event",
				Naming(fmt.Sprintf("%s ends with Event", t.SimpleName()), t.ID()))
		},
	}
}

func domainServiceNaming() Criterion[DomainKind] {
	return &rule[DomainKind]{
		name:     "service name suffix",
		id:       "domain.naming.service",
		priority: 50,
		kind:     DomainService,
		eval: func(t *graph.TypeNode, q *graph.Query) MatchResult {
			name := t.SimpleName()
			if !strings.HasSuffix(name, "Service") || strings.HasSuffix(name, "ApplicationService") {
				return NoMatch()
			}
			if packageSegment(t, "application") {
				return NoMatch()
			}
			return Match(Low,
				"named like a domain service",
				Naming(fmt.Sprintf("%s ends with Service", name), t.ID()))
		},
	}
}

func applicationServiceNaming() Criterion[DomainKind] {
	return &rule[DomainKind]{
		name:     "application service name or package",
		id:       "domain.naming.applicationService",
		priority: 50,
		kind:     ApplicationService,
		eval: func(t *graph.TypeNode, q *graph.Query) MatchResult {
			name := t.SimpleName()
			if strings.HasSuffix(name, "ApplicationService") {
				return Match(Medium,
					"named like an application service",
					Naming(fmt.Sprintf("%s ends with ApplicationService", name), t.ID()))
			}
			if strings.HasSuffix(name, "Service") && packageSegment(t, "application") {
				return Match(Low,
					"service in the application layer",
					Naming(fmt.Sprintf("%s lives in an application package", name), t.ID()))
			}
			return NoMatch()
		},
	}
}

// identityField returns the field identifying the type, if any: a field
// named "id" or ending in "Id".
func identityField(t *graph.TypeNode, q *graph.Query) (*graph.FieldNode, bool) {
	for _, f := range q.FieldsOf(t) {
		if f.Name == "id" || strings.HasSuffix(f.Name, "Id") {
			return f, true
		}
	}
	return nil, false
}

// immutable reports whether the type is a record or a class whose fields
// are all final. Field-less classes are not considered immutable values.
func immutable(t *graph.TypeNode, q *graph.Query) bool {
	if t.IsRecord() {
		return true
	}
	fields := q.FieldsOf(t)
	if len(fields) == 0 {
		return false
	}
	for _, f := range fields {
		if !f.IsFinal() {
			return false
		}
	}
	return true
}

func packageSegment(t *graph.TypeNode, segment string) bool {
	for _, s := range strings.Split(t.PackageName(), ".") {
		if strings.EqualFold(s, segment) {
			return true
		}
	}
	return false
}
