package analysis

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"archlens/internal/archquery"
	"archlens/internal/classify"
	"archlens/internal/facts"
	"archlens/internal/graph"
	"archlens/internal/logging"
)

// Options tunes one pipeline run.
type Options struct {
	// Profile overrides criterion priorities; nil runs the defaults.
	Profile *classify.Profile
	// CycleGranularity defaults to type-level cycles.
	CycleGranularity archquery.CycleKind
}

// PackageMetrics pairs a package with its dependency metrics.
type PackageMetrics struct {
	Package string                 `json:"package"`
	Metrics archquery.LakosMetrics `json:"metrics"`
}

// Report is the complete analysis result for one facts document.
type Report struct {
	RunID       string         `json:"runId"`
	GeneratedAt time.Time      `json:"generatedAt"`
	Metadata    graph.Metadata `json:"metadata"`

	Domain []classify.Result[classify.DomainKind] `json:"domain"`
	Ports  []classify.Result[classify.PortKind]   `json:"ports"`

	Cycles              []archquery.Cycle              `json:"cycles"`
	Lakos               archquery.LakosMetrics         `json:"lakos"`
	PackageLakos        []PackageMetrics               `json:"packageLakos"`
	Coupling            []archquery.PackageCoupling    `json:"coupling"`
	Aggregates          []archquery.Aggregate          `json:"aggregates"`
	Contexts            []archquery.BoundedContextInfo `json:"contexts"`
	StabilityViolations []archquery.StabilityViolation `json:"stabilityViolations"`
}

// Pipeline runs the full analysis: build the graph, derive edges, classify,
// then evaluate every architecture query.
type Pipeline struct {
	logger *logging.Logger
}

// NewPipeline creates a pipeline logging through the given logger.
func NewPipeline(logger *logging.Logger) *Pipeline {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &Pipeline{logger: logger}
}

// Run analyzes one facts document. The returned graph is the populated,
// derived graph the report was computed from.
func (p *Pipeline) Run(f *facts.Facts, opts Options) (*Report, *graph.Graph, error) {
	started := time.Now()

	g, err := graph.NewBuilder(p.logger).Build(f)
	if err != nil {
		return nil, nil, err
	}
	if err := graph.NewDerivedEdgeComputer(p.logger).Compute(g); err != nil {
		return nil, nil, err
	}

	classification := classify.NewClassifier(opts.Profile, p.logger).ClassifyGraph(g)

	granularity := opts.CycleGranularity
	if granularity == "" {
		granularity = archquery.CycleTypes
	}

	lakos := archquery.NewLakos(g)
	pkgs := g.Indexes().Packages()
	sort.Strings(pkgs)
	packageLakos := make([]PackageMetrics, 0, len(pkgs))
	for _, pkg := range pkgs {
		packageLakos = append(packageLakos, PackageMetrics{
			Package: pkg,
			Metrics: lakos.Package(pkg),
		})
	}

	report := &Report{
		RunID:               uuid.NewString(),
		GeneratedAt:         started,
		Metadata:            g.Metadata(),
		Domain:              classification.DomainResults(),
		Ports:               classification.PortResults(),
		Cycles:              archquery.Cycles(g, granularity),
		Lakos:               lakos.Global(),
		PackageLakos:        packageLakos,
		Coupling:            archquery.AllCouplings(g),
		Aggregates:          archquery.Aggregates(g, classification),
		Contexts:            archquery.BoundedContexts(g),
		StabilityViolations: archquery.StabilityViolations(g),
	}

	p.logger.Info("analysis finished", map[string]interface{}{
		"runId":      report.RunID,
		"types":      g.TypeCount(),
		"cycles":     len(report.Cycles),
		"aggregates": len(report.Aggregates),
		"durationMs": time.Since(started).Milliseconds(),
	})
	return report, g, nil
}
