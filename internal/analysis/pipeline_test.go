package analysis

import (
	"testing"

	"archlens/internal/archquery"
	"archlens/internal/classify"
	"archlens/internal/facts"
)

func pipelineFacts() *facts.Facts {
	return &facts.Facts{
		BasePackage: "com.shop",
		SourceUnits: 3,
		Types: []facts.TypeDecl{
			{
				QualifiedName: "com.shop.order.domain.Order",
				Form:          "class",
				Fields: []facts.FieldDecl{
					{Name: "id", Type: facts.TypeRefDecl{Name: "com.shop.order.domain.OrderId"}, Modifiers: []string{"private", "final"}},
				},
			},
			{
				QualifiedName: "com.shop.order.domain.OrderId",
				Form:          "record",
				Fields: []facts.FieldDecl{
					{Name: "value", Type: facts.TypeRefDecl{Name: "java.util.UUID"}, Modifiers: []string{"private", "final"}},
				},
			},
			{
				QualifiedName: "com.shop.order.port.OrderRepository",
				Form:          "interface",
				Methods: []facts.MethodDecl{
					{Name: "save", ReturnType: facts.TypeRefDecl{Name: "void"}, Params: []facts.TypeRefDecl{{Name: "com.shop.order.domain.Order"}}},
				},
			},
		},
	}
}

func TestPipelineRun(t *testing.T) {
	report, g, err := NewPipeline(nil).Run(pipelineFacts(), Options{})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if report.RunID == "" {
		t.Error("run id not set")
	}
	if g.TypeCount() != 3 {
		t.Errorf("types = %d, want 3", g.TypeCount())
	}
	if report.Metadata.BasePackage != "com.shop" {
		t.Errorf("base package = %q", report.Metadata.BasePackage)
	}
	if len(report.Domain)+len(report.Ports) != 3 {
		t.Errorf("results = %d domain + %d ports, want 3 total", len(report.Domain), len(report.Ports))
	}
	if len(report.Coupling) == 0 {
		t.Error("no coupling results")
	}
	if len(report.Aggregates) != 1 {
		t.Errorf("aggregates = %d, want 1", len(report.Aggregates))
	}
	if len(report.Contexts) != 1 || report.Contexts[0].Name != "order" {
		t.Errorf("contexts = %+v, want [order]", report.Contexts)
	}
}

func TestPipelineRunIdsDiffer(t *testing.T) {
	p := NewPipeline(nil)
	first, _, err := p.Run(pipelineFacts(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	second, _, err := p.Run(pipelineFacts(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if first.RunID == second.RunID {
		t.Error("run ids should be unique per run")
	}
}

func TestPipelineCycleGranularity(t *testing.T) {
	f := &facts.Facts{
		Types: []facts.TypeDecl{
			{
				QualifiedName: "com.x.a.One",
				Form:          "class",
				Fields:        []facts.FieldDecl{{Name: "two", Type: facts.TypeRefDecl{Name: "com.x.b.Two"}}},
			},
			{
				QualifiedName: "com.x.b.Two",
				Form:          "class",
				Fields:        []facts.FieldDecl{{Name: "one", Type: facts.TypeRefDecl{Name: "com.x.a.One"}}},
			},
		},
	}
	report, _, err := NewPipeline(nil).Run(f, Options{CycleGranularity: archquery.CyclePackages})
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Cycles) != 1 || report.Cycles[0].Kind != archquery.CyclePackages {
		t.Errorf("cycles = %+v, want one package cycle", report.Cycles)
	}
}

func TestPipelineProfileApplied(t *testing.T) {
	f := &facts.Facts{
		Types: []facts.TypeDecl{
			{
				QualifiedName: "com.shop.order.domain.PaymentService",
				Form:          "class",
				Annotations:   []string{"com.shop.shared.ValueObject"},
			},
		},
	}

	// Without overrides the explicit marker wins.
	report, _, err := NewPipeline(nil).Run(f, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if report.Domain[0].Kind != classify.ValueObject {
		t.Fatalf("default kind = %s, want VALUE_OBJECT", report.Domain[0].Kind)
	}

	// Boosting the naming rule above the marker flips the decision.
	profile := &classify.Profile{Priorities: map[string]int{"domain.naming.service": 150}}
	report, _, err = NewPipeline(nil).Run(f, Options{Profile: profile})
	if err != nil {
		t.Fatal(err)
	}
	if report.Domain[0].Kind != classify.DomainService {
		t.Errorf("overridden kind = %s, want DOMAIN_SERVICE", report.Domain[0].Kind)
	}
}
