package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"archlens/internal/analysis"
	"archlens/internal/classify"
	"archlens/internal/version"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatHuman OutputFormat = "human"
)

// FormatResponse formats a response according to the specified format
func FormatResponse(resp interface{}, format OutputFormat) (string, error) {
	switch format {
	case FormatJSON:
		return formatJSON(resp)
	case FormatHuman:
		return formatHuman(resp)
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// formatJSON formats the response as JSON
func formatJSON(resp interface{}) (string, error) {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}

// formatHuman formats the response in human-readable format
func formatHuman(resp interface{}) (string, error) {
	switch v := resp.(type) {
	case *analysis.Report:
		return formatReportHuman(v)
	case *ClassifyResponseCLI:
		return formatClassifyHuman(v)
	case *CyclesResponseCLI:
		return formatCyclesHuman(v)
	case *MetricsResponseCLI:
		return formatMetricsHuman(v)
	case *CouplingResponseCLI:
		return formatCouplingHuman(v)
	case *AggregatesResponseCLI:
		return formatAggregatesHuman(v)
	default:
		// For unknown types, fall back to JSON
		return formatJSON(resp)
	}
}

func writeHeader(b *strings.Builder, title string) {
	b.WriteString(fmt.Sprintf("%s - archlens v%s\n", title, version.Version))
	b.WriteString(strings.Repeat("=", 60) + "\n\n")
}

// formatReportHuman formats a full analysis report in human-readable format
func formatReportHuman(r *analysis.Report) (string, error) {
	var b strings.Builder

	writeHeader(&b, "Analysis Report")

	b.WriteString(fmt.Sprintf("Run: %s\n", r.RunID))
	b.WriteString(fmt.Sprintf("Base Package: %s\n", r.Metadata.BasePackage))
	b.WriteString(fmt.Sprintf("Style: %s\n\n", r.Metadata.Style))

	b.WriteString(fmt.Sprintf("Domain Types: %d\n", len(r.Domain)))
	for _, res := range r.Domain {
		b.WriteString(formatResultLine(res.Node.SimpleName(), string(res.Status), string(res.Kind), res.Confidence, res.Justification))
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("Ports: %d\n", len(r.Ports)))
	for _, res := range r.Ports {
		b.WriteString(formatResultLine(res.Node.SimpleName(), string(res.Status), string(res.Kind), res.Confidence, res.Justification))
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("Cycles: %d\n", len(r.Cycles)))
	for _, c := range r.Cycles {
		b.WriteString(fmt.Sprintf("  ! %s\n", strings.Join(c.Path, " -> ")))
	}
	b.WriteString("\n")

	b.WriteString("Lakos Metrics (global):\n")
	b.WriteString(fmt.Sprintf("  Types: %d  CCD: %d  ACD: %.2f  NCCD: %.2f\n\n",
		r.Lakos.Types, r.Lakos.CCD, r.Lakos.ACD, r.Lakos.NCCD))

	b.WriteString(fmt.Sprintf("Aggregates: %d\n", len(r.Aggregates)))
	for _, a := range r.Aggregates {
		b.WriteString(fmt.Sprintf("  - %s (%d members, cohesion %.2f)\n", a.Root, len(a.Members), a.Cohesion))
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("Bounded Contexts: %d\n", len(r.Contexts)))
	for _, c := range r.Contexts {
		b.WriteString(fmt.Sprintf("  - %s (%d types)\n", c.Name, len(c.Types)))
	}

	if len(r.StabilityViolations) > 0 {
		b.WriteString(fmt.Sprintf("\nStability Violations: %d\n", len(r.StabilityViolations)))
		for _, v := range r.StabilityViolations {
			b.WriteString(fmt.Sprintf("  ! %s (I=%.2f) -> %s (I=%.2f)\n",
				v.From, v.FromInstability, v.To, v.ToInstability))
		}
	}

	return b.String(), nil
}

func formatResultLine(name, status, kind string, confidence classify.ConfidenceLevel, justification string) string {
	if status != string(classify.StatusClassified) {
		return fmt.Sprintf("  ? %s: %s\n", name, status)
	}
	return fmt.Sprintf("  - %s: %s (%s, %s)\n", name, kind, confidence, justification)
}

// formatClassifyHuman formats a ClassifyResponseCLI in human-readable format
func formatClassifyHuman(resp *ClassifyResponseCLI) (string, error) {
	var b strings.Builder

	writeHeader(&b, "Classification")

	b.WriteString(fmt.Sprintf("Architecture Style: %s\n\n", resp.Style))

	b.WriteString(fmt.Sprintf("Domain Types: %d\n", len(resp.Domain)))
	for _, res := range resp.Domain {
		b.WriteString(formatResultLine(res.Node.SimpleName(), string(res.Status), string(res.Kind), res.Confidence, res.Justification))
		for _, c := range res.Conflicts {
			b.WriteString(fmt.Sprintf("      %s conflict: %s (%s)\n", c.Severity, c.Kind, c.CriterionName))
		}
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("Ports: %d\n", len(resp.Ports)))
	for _, res := range resp.Ports {
		b.WriteString(formatResultLine(res.Node.SimpleName(), string(res.Status), string(res.Kind), res.Confidence, res.Justification))
		if dir, ok := res.Metadata[classify.MetadataDirection]; ok {
			b.WriteString(fmt.Sprintf("      direction: %s\n", dir))
		}
	}

	return b.String(), nil
}

// formatCyclesHuman formats a CyclesResponseCLI in human-readable format
func formatCyclesHuman(resp *CyclesResponseCLI) (string, error) {
	var b strings.Builder

	writeHeader(&b, "Dependency Cycles")

	b.WriteString(fmt.Sprintf("Granularity: %s\n", resp.Granularity))
	b.WriteString(fmt.Sprintf("Cycles Found: %d\n\n", resp.Count))

	if resp.Count == 0 {
		b.WriteString("No cycles detected.\n")
		return b.String(), nil
	}

	for i, c := range resp.Cycles {
		b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, strings.Join(c.Path, " -> ")))
	}

	return b.String(), nil
}

// formatMetricsHuman formats a MetricsResponseCLI in human-readable format
func formatMetricsHuman(resp *MetricsResponseCLI) (string, error) {
	var b strings.Builder

	writeHeader(&b, "Lakos Metrics")

	b.WriteString("Global:\n")
	b.WriteString(fmt.Sprintf("  Types: %d\n", resp.Global.Types))
	b.WriteString(fmt.Sprintf("  CCD:   %d\n", resp.Global.CCD))
	b.WriteString(fmt.Sprintf("  ACD:   %.2f\n", resp.Global.ACD))
	b.WriteString(fmt.Sprintf("  NCCD:  %.2f\n", resp.Global.NCCD))
	b.WriteString(fmt.Sprintf("  RACD:  %.2f\n", resp.Global.RACD))

	if len(resp.Packages) > 0 {
		b.WriteString("\nPer Package:\n")
		for _, p := range resp.Packages {
			b.WriteString(fmt.Sprintf("  %s: types=%d ccd=%d acd=%.2f nccd=%.2f\n",
				p.Package, p.Metrics.Types, p.Metrics.CCD, p.Metrics.ACD, p.Metrics.NCCD))
		}
	}

	return b.String(), nil
}

// formatCouplingHuman formats a CouplingResponseCLI in human-readable format
func formatCouplingHuman(resp *CouplingResponseCLI) (string, error) {
	var b strings.Builder

	writeHeader(&b, "Package Coupling")

	for _, p := range resp.Packages {
		b.WriteString(fmt.Sprintf("%s\n", p.Package))
		b.WriteString(fmt.Sprintf("  Ca=%d Ce=%d I=%.2f A=%.2f D=%.2f", p.Ca, p.Ce, p.Instability, p.Abstractness, p.Distance))
		if p.Zone != "" {
			b.WriteString(fmt.Sprintf("  [%s]", p.Zone))
		}
		b.WriteString("\n")
	}

	if len(resp.Violations) > 0 {
		b.WriteString("\nStability Violations:\n")
		for _, v := range resp.Violations {
			b.WriteString(fmt.Sprintf("  ! %s (I=%.2f) -> %s (I=%.2f)\n",
				v.From, v.FromInstability, v.To, v.ToInstability))
		}
	}

	return b.String(), nil
}

// formatAggregatesHuman formats an AggregatesResponseCLI in human-readable format
func formatAggregatesHuman(resp *AggregatesResponseCLI) (string, error) {
	var b strings.Builder

	writeHeader(&b, "Aggregates")

	if len(resp.Aggregates) == 0 {
		b.WriteString("No aggregates detected.\n")
	}
	for _, a := range resp.Aggregates {
		b.WriteString(fmt.Sprintf("%s (cohesion %.2f)\n", a.Root, a.Cohesion))
		if a.Repository != "" {
			b.WriteString(fmt.Sprintf("  Repository: %s\n", a.Repository))
		}
		for _, m := range a.Members {
			b.WriteString(fmt.Sprintf("  - %s (%s)\n", m.Type, m.Role))
		}
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("Bounded Contexts: %d\n", len(resp.Contexts)))
	for _, c := range resp.Contexts {
		b.WriteString(fmt.Sprintf("  - %s [%s] (%d types)\n", c.Name, c.RootPackage, len(c.Types)))
	}

	return b.String(), nil
}
