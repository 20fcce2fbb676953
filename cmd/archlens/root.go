package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"archlens/internal/analysis"
	"archlens/internal/archquery"
	"archlens/internal/classify"
	"archlens/internal/facts"
	"archlens/internal/graph"
	"archlens/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "archlens",
	Short: "archlens - DDD and hexagonal architecture analyzer",
	Long: `archlens builds an application graph from extracted codebase facts,
classifies domain types and ports against DDD criteria, and answers
architecture queries: dependency cycles, Lakos metrics, package coupling,
aggregate boundaries and bounded contexts.`,
	Version: version.Version,
}

func init() {
	rootCmd.SetVersionTemplate("archlens version {{.Version}}\n")
}

// mustLoadFacts loads the facts file or exits.
func mustLoadFacts(path string) *facts.Facts {
	f, err := facts.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading facts: %v\n", err)
		os.Exit(1)
	}
	return f
}

// loadProfileFlag loads the profile file when the flag is set.
func loadProfileFlag(path string) *classify.Profile {
	if path == "" {
		return nil
	}
	p, err := classify.LoadProfile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading profile: %v\n", err)
		os.Exit(1)
	}
	return p
}

// runPipeline runs the full analysis for a facts file or exits.
func runPipeline(factsPath, profilePath, format string, granularity archquery.CycleKind) (*analysis.Report, *graph.Graph) {
	logger := newLogger(format)
	pipeline := analysis.NewPipeline(logger)
	report, g, err := pipeline.Run(mustLoadFacts(factsPath), analysis.Options{
		Profile:          loadProfileFlag(profilePath),
		CycleGranularity: granularity,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running analysis: %v\n", err)
		os.Exit(1)
	}
	return report, g
}

func parseGranularity(s string) archquery.CycleKind {
	switch s {
	case "", "type":
		return archquery.CycleTypes
	case "package":
		return archquery.CyclePackages
	case "context":
		return archquery.CycleContexts
	default:
		fmt.Fprintf(os.Stderr, "Unknown cycle granularity %q (use type, package or context)\n", s)
		os.Exit(1)
		return ""
	}
}
