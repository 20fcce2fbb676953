package classify

import (
	"archlens/internal/graph"
	"archlens/internal/logging"
)

// Classification holds the decided roles for every type in a graph.
type Classification struct {
	Domain map[graph.NodeId]Result[DomainKind]
	Ports  map[graph.NodeId]Result[PortKind]

	domainOrder []graph.NodeId
	portOrder   []graph.NodeId
}

// DomainKindOf returns the decided domain kind of the type, if classified.
func (c *Classification) DomainKindOf(id graph.NodeId) (DomainKind, bool) {
	r, ok := c.Domain[id]
	if !ok || r.Status != StatusClassified {
		return "", false
	}
	return r.Kind, true
}

// PortKindOf returns the decided port kind of the type, if classified.
func (c *Classification) PortKindOf(id graph.NodeId) (PortKind, bool) {
	r, ok := c.Ports[id]
	if !ok || r.Status != StatusClassified {
		return "", false
	}
	return r.Kind, true
}

// DomainResults returns all domain results in graph order.
func (c *Classification) DomainResults() []Result[DomainKind] {
	out := make([]Result[DomainKind], 0, len(c.domainOrder))
	for _, id := range c.domainOrder {
		out = append(out, c.Domain[id])
	}
	return out
}

// PortResults returns all port results in graph order.
func (c *Classification) PortResults() []Result[PortKind] {
	out := make([]Result[PortKind], 0, len(c.portOrder))
	for _, id := range c.portOrder {
		out = append(out, c.Ports[id])
	}
	return out
}

// Classifier runs the domain and port engines over a whole graph.
type Classifier struct {
	domain *Engine[DomainKind]
	ports  *Engine[PortKind]
	logger *logging.Logger
}

// NewClassifier creates a classifier with the built-in criteria and the
// given profile overrides.
func NewClassifier(profile *Profile, logger *logging.Logger) *Classifier {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &Classifier{
		domain: NewDomainEngine(profile),
		ports:  NewPortEngine(profile),
		logger: logger,
	}
}

// ClassifyGraph classifies every type. Port classification only runs on
// interfaces; interfaces that match a port criterion are considered ports,
// UNCLASSIFIED interfaces are plain domain types. Iteration follows graph
// order, so identical graphs yield identical classifications.
func (c *Classifier) ClassifyGraph(g *graph.Graph) *Classification {
	q := g.Query()
	out := &Classification{
		Domain: make(map[graph.NodeId]Result[DomainKind]),
		Ports:  make(map[graph.NodeId]Result[PortKind]),
	}

	classified, conflicts := 0, 0
	for _, t := range g.TypeNodes() {
		if t.IsInterface() {
			r := c.ports.Classify(t, q)
			out.Ports[t.ID()] = r
			out.portOrder = append(out.portOrder, t.ID())
			if r.Status == StatusClassified {
				classified++
				continue
			}
			if r.Status == StatusConflict {
				conflicts++
				continue
			}
			// Not a port; fall through to the domain engine.
		}
		r := c.domain.Classify(t, q)
		out.Domain[t.ID()] = r
		out.domainOrder = append(out.domainOrder, t.ID())
		switch r.Status {
		case StatusClassified:
			classified++
		case StatusConflict:
			conflicts++
		}
	}

	c.logger.Info("classification finished", map[string]interface{}{
		"types":      g.TypeCount(),
		"classified": classified,
		"conflicts":  conflicts,
	})
	return out
}
