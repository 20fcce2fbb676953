package classify

import "archlens/internal/graph"

// EvidenceKind distinguishes the observation categories evidence can cite.
type EvidenceKind string

const (
	EvidenceNaming       EvidenceKind = "NAMING"
	EvidenceStructural   EvidenceKind = "STRUCTURAL"
	EvidenceRelationship EvidenceKind = "RELATIONSHIP"
	EvidenceAnnotation   EvidenceKind = "ANNOTATION"
)

// Evidence is a concrete observation backing a classification. Every piece
// carries its kind, a human-readable message and the node ids it refers to;
// criteria never report bare strings.
type Evidence struct {
	Kind    EvidenceKind   `json:"kind"`
	Message string         `json:"message"`
	Nodes   []graph.NodeId `json:"nodes,omitempty"`
}

// Naming cites a name or name fragment.
func Naming(message string, nodes ...graph.NodeId) Evidence {
	return Evidence{Kind: EvidenceNaming, Message: message, Nodes: nodes}
}

// Structural cites the shape of a declaration (fields, forms, modifiers).
func Structural(message string, nodes ...graph.NodeId) Evidence {
	return Evidence{Kind: EvidenceStructural, Message: message, Nodes: nodes}
}

// Relationship cites an edge between nodes.
func Relationship(message string, nodes ...graph.NodeId) Evidence {
	return Evidence{Kind: EvidenceRelationship, Message: message, Nodes: nodes}
}

// Annotation cites a declared marker.
func Annotation(message string, nodes ...graph.NodeId) Evidence {
	return Evidence{Kind: EvidenceAnnotation, Message: message, Nodes: nodes}
}
