package graph

import (
	"fmt"

	"archlens/internal/logging"
)

// Collection and optional wrapper types recognized by simple name.
var collectionWrappers = map[string]struct{}{
	"List": {}, "Set": {}, "Collection": {}, "Iterable": {},
	"ArrayList": {}, "HashSet": {}, "LinkedList": {},
}

var optionalWrappers = map[string]struct{}{
	"Optional": {},
}

// DerivedEdgeComputer infers derived edges from the raw graph. Running it
// twice on the same graph adds nothing the second time: every candidate edge
// is checked against the edges already present.
type DerivedEdgeComputer struct {
	logger *logging.Logger
}

// NewDerivedEdgeComputer creates a computer logging through the given logger.
func NewDerivedEdgeComputer(logger *logging.Logger) *DerivedEdgeComputer {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &DerivedEdgeComputer{logger: logger}
}

// Compute adds derived edges to the graph:
//
//   - USES_IN_SIGNATURE from an interface to every in-graph type appearing
//     in one of its method signatures, unwrapping one level of type
//     arguments.
//   - USES_AS_COLLECTION_ELEMENT from a type to the in-graph element type
//     of a collection-like or optional-like field.
//
// References to external types, primitives and void are skipped.
func (c *DerivedEdgeComputer) Compute(g *Graph) error {
	added := 0
	for _, t := range g.TypeNodes() {
		if t.IsInterface() {
			n, err := c.signatureUsage(g, t)
			if err != nil {
				return err
			}
			added += n
		}
		n, err := c.collectionElements(g, t)
		if err != nil {
			return err
		}
		added += n
	}
	c.logger.Debug("derived edges computed", map[string]interface{}{
		"added": added,
	})
	return nil
}

func (c *DerivedEdgeComputer) signatureUsage(g *Graph, iface *TypeNode) (int, error) {
	added := 0
	for _, id := range g.Indexes().MembersOf(iface.ID()) {
		m, ok := g.MethodNode(id)
		if !ok {
			continue
		}
		for i, p := range m.Params {
			n, err := c.addSignatureEdges(g, iface, m, p, fmt.Sprintf("param:%d", i))
			if err != nil {
				return added, err
			}
			added += n
		}
		n, err := c.addSignatureEdges(g, iface, m, m.ReturnType, "return")
		if err != nil {
			return added, err
		}
		added += n
	}
	return added, nil
}

// addSignatureEdges handles one parameter or return reference: the reference
// itself, then one level of type arguments.
func (c *DerivedEdgeComputer) addSignatureEdges(g *Graph, iface *TypeNode, m *MethodNode, ref TypeRef, via string) (int, error) {
	added := 0
	if !ref.IsVoid() {
		if target, ok := resolveType(g, ref.Name); ok && target != iface.ID() {
			n, err := addDerived(g, iface.ID(), target, EdgeUsesInSignature, Proof{
				SourceNode: m.ID(),
				Via:        via,
				Rule:       RuleSignatureUsage,
			})
			if err != nil {
				return added, err
			}
			added += n
		}
	}
	rule := unwrapRule(ref)
	for _, arg := range ref.TypeArgs {
		if arg.IsVoid() {
			continue
		}
		target, ok := resolveType(g, arg.Name)
		if !ok || target == iface.ID() {
			continue
		}
		n, err := addDerived(g, iface.ID(), target, EdgeUsesInSignature, Proof{
			SourceNode: m.ID(),
			Via:        via,
			Rule:       rule,
		})
		if err != nil {
			return added, err
		}
		added += n
	}
	return added, nil
}

func (c *DerivedEdgeComputer) collectionElements(g *Graph, t *TypeNode) (int, error) {
	added := 0
	for _, id := range g.Indexes().MembersOf(t.ID()) {
		f, ok := g.FieldNode(id)
		if !ok {
			continue
		}
		simple := f.Type.SimpleName()
		_, isCollection := collectionWrappers[simple]
		_, isOptional := optionalWrappers[simple]
		if !isCollection && !isOptional {
			continue
		}
		rule := RuleCollectionUnwrap
		if isOptional {
			rule = RuleOptionalUnwrap
		}
		for _, arg := range f.Type.TypeArgs {
			if arg.IsVoid() {
				continue
			}
			target, ok := resolveType(g, arg.Name)
			if !ok || target == t.ID() {
				continue
			}
			n, err := addDerived(g, t.ID(), target, EdgeUsesAsCollectionElement, Proof{
				SourceNode: f.ID(),
				Via:        "field",
				Rule:       rule,
			})
			if err != nil {
				return added, err
			}
			added += n
		}
	}
	return added, nil
}

func unwrapRule(ref TypeRef) string {
	if _, ok := optionalWrappers[ref.SimpleName()]; ok {
		return RuleOptionalUnwrap
	}
	if _, ok := collectionWrappers[ref.SimpleName()]; ok {
		return RuleCollectionUnwrap
	}
	return RuleSignatureUsage
}

// addDerived adds a derived edge unless an edge with the same endpoints and
// kind is already present. Returns 1 if an edge was added.
func addDerived(g *Graph, from, to NodeId, kind EdgeKind, proof Proof) (int, error) {
	if g.ContainsEdge(from, to, kind) {
		return 0, nil
	}
	if err := g.AddEdge(Derived(from, to, kind, proof)); err != nil {
		return 0, err
	}
	return 1, nil
}
