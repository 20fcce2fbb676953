package graph

// EdgeKind classifies the relationship an edge represents.
type EdgeKind string

const (
	// Structural edges taken directly from declarations
	EdgeExtends       EdgeKind = "EXTENDS"
	EdgeImplements    EdgeKind = "IMPLEMENTS"
	EdgeDeclares      EdgeKind = "DECLARES"
	EdgeFieldType     EdgeKind = "FIELD_TYPE"
	EdgeReturnType    EdgeKind = "RETURN_TYPE"
	EdgeParameterType EdgeKind = "PARAMETER_TYPE"
	EdgeTypeArgument  EdgeKind = "TYPE_ARGUMENT"

	// Derived edges inferred from raw facts
	EdgeUsesInSignature         EdgeKind = "USES_IN_SIGNATURE"
	EdgeUsesAsCollectionElement EdgeKind = "USES_AS_COLLECTION_ELEMENT"

	// Generic type-to-type dependency used by the architecture analyses
	EdgeReferences EdgeKind = "REFERENCES"
)

// EdgeOrigin distinguishes declared facts from inferred ones.
type EdgeOrigin string

const (
	OriginRaw     EdgeOrigin = "RAW"
	OriginDerived EdgeOrigin = "DERIVED"
)

// Derivation rule names recorded in proofs.
const (
	RuleSignatureUsage   = "signature-usage"
	RuleCollectionUnwrap = "collection-unwrap"
	RuleOptionalUnwrap   = "optional-unwrap"
)

// Proof justifies a derived edge: the member it was inferred from, a short
// description of where in that member the reference occurred, and the name
// of the derivation rule that fired.
type Proof struct {
	SourceNode NodeId `json:"sourceNode"`
	Via        string `json:"via"`
	Rule       string `json:"rule"`
}

// Edge is a directed relationship between two nodes. DERIVED edges always
// carry a proof; RAW edges never do.
type Edge struct {
	From   NodeId     `json:"from"`
	To     NodeId     `json:"to"`
	Kind   EdgeKind   `json:"kind"`
	Origin EdgeOrigin `json:"origin"`
	Proof  *Proof     `json:"proof,omitempty"`
}

// Raw creates a RAW edge.
func Raw(from, to NodeId, kind EdgeKind) Edge {
	return Edge{From: from, To: to, Kind: kind, Origin: OriginRaw}
}

// Derived creates a DERIVED edge carrying the given proof.
func Derived(from, to NodeId, kind EdgeKind, proof Proof) Edge {
	return Edge{From: from, To: to, Kind: kind, Origin: OriginDerived, Proof: &proof}
}

// IsRaw reports whether the edge is a declared fact.
func (e Edge) IsRaw() bool { return e.Origin == OriginRaw }

// IsDerived reports whether the edge was inferred.
func (e Edge) IsDerived() bool { return e.Origin == OriginDerived }
