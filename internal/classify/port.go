package classify

import (
	"fmt"
	"strings"

	"archlens/internal/graph"
)

// PortKind is the specialization of a hexagonal port.
type PortKind string

const (
	PortRepository     PortKind = "REPOSITORY"
	PortUseCase        PortKind = "USE_CASE"
	PortEventPublisher PortKind = "EVENT_PUBLISHER"
	PortGateway        PortKind = "GATEWAY"
	PortQuery          PortKind = "QUERY"
	PortCommand        PortKind = "COMMAND"
	PortGeneric        PortKind = "GENERIC"
)

// Direction says which side of the hexagon drives the interaction.
type Direction string

const (
	// Driving ports are called by the outside world.
	Driving Direction = "driving"
	// Driven ports are implemented by the outside world.
	Driven Direction = "driven"
)

// MetadataDirection is the contribution metadata key carrying the direction.
const MetadataDirection = "direction"

// DefaultDirection returns the conventional direction of a port kind.
func (k PortKind) DefaultDirection() Direction {
	switch k {
	case PortRepository, PortEventPublisher, PortGateway:
		return Driven
	default:
		return Driving
	}
}

// NewPortEngine builds the engine with the built-in port criteria. Port
// kinds never coexist, so any tie between distinct kinds is a conflict.
func NewPortEngine(profile *Profile) *Engine[PortKind] {
	return NewEngine(PortCriteria(), NoneCompatible[PortKind](), profile)
}

// PortCriteria returns the built-in port specialization criteria. They only
// ever match interfaces; classes are not ports.
func PortCriteria() []Criterion[PortKind] {
	criteria := []Criterion[PortKind]{
		portMarker(PortRepository, "Repository"),
		portMarker(PortUseCase, "UseCase"),
		portMarker(PortEventPublisher, "EventPublisher"),
		portSuffix(PortRepository, "repository suffix", "port.naming.repository", "Repository"),
		portSuffix(PortUseCase, "use case suffix", "port.naming.useCase", "UseCase"),
		portSuffix(PortEventPublisher, "publisher suffix", "port.naming.publisher", "Publisher", "EventPublisher"),
		portSuffix(PortGateway, "gateway suffix", "port.naming.gateway", "Gateway", "Client"),
		portSuffix(PortQuery, "query suffix", "port.naming.query", "Query", "QueryHandler"),
		portSuffix(PortCommand, "command suffix", "port.naming.command", "Command", "CommandHandler"),
		genericPort(),
	}
	return criteria
}

func portMarker(kind PortKind, marker string) Criterion[PortKind] {
	lowerKind := strings.ToLower(string(kind))
	return &rule[PortKind]{
		name:     "explicit " + strings.ReplaceAll(lowerKind, "_", " ") + " marker",
		id:       "port.explicit." + lowerKind,
		priority: 100,
		kind:     kind,
		eval: func(t *graph.TypeNode, q *graph.Query) MatchResult {
			if !t.IsInterface() || !t.HasAnnotation(marker) {
				return NoMatch()
			}
			return Match(Explicit,
				fmt.Sprintf("annotated with @%s", marker),
				Annotation(fmt.Sprintf("@%s on %s", marker, t.SimpleName()), t.ID())).
				WithMetadata(MetadataDirection, string(kind.DefaultDirection()))
		},
	}
}

func portSuffix(kind PortKind, name, id string, suffixes ...string) Criterion[PortKind] {
	return &rule[PortKind]{
		name:     name,
		id:       id,
		priority: 80,
		kind:     kind,
		eval: func(t *graph.TypeNode, q *graph.Query) MatchResult {
			if !t.IsInterface() {
				return NoMatch()
			}
			for _, suffix := range suffixes {
				if strings.HasSuffix(t.SimpleName(), suffix) {
					return Match(High,
						fmt.Sprintf("named like a %s port", strings.ToLower(string(kind))),
						Naming(fmt.Sprintf("%s ends with %s", t.SimpleName(), suffix), t.ID())).
						WithMetadata(MetadataDirection, string(kind.DefaultDirection()))
				}
			}
			return NoMatch()
		},
	}
}

// genericPort catches interfaces living in a port package that no
// specialized rule recognized.
func genericPort() Criterion[PortKind] {
	return &rule[PortKind]{
		name:     "interface in port package",
		id:       "port.structural.portPackage",
		priority: 50,
		kind:     PortGeneric,
		eval: func(t *graph.TypeNode, q *graph.Query) MatchResult {
			if !t.IsInterface() {
				return NoMatch()
			}
			if !packageSegment(t, "port") && !packageSegment(t, "ports") {
				return NoMatch()
			}
			return Match(Low,
				"interface declared in a port package",
				Structural(fmt.Sprintf("%s is an interface in %s", t.SimpleName(), t.PackageName()), t.ID())).
				WithMetadata(MetadataDirection, string(PortGeneric.DefaultDirection()))
		},
	}
}
