package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"archlens/internal/config"
)

var (
	analyzeProfile     string
	analyzeGranularity string
	analyzeFormat      string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [facts-file]",
	Short: "Run the full architecture analysis",
	Long: `Run the complete analysis over a facts file: build the application
graph, derive usage edges, classify domain types and ports, and evaluate
every architecture query.

When no facts file is given, the path from .archlens/config.json is used.

Examples:
  archlens analyze facts.json
  archlens analyze --profile=strict.yaml facts.json
  archlens analyze --granularity=package --format=human facts.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeProfile, "profile", "", "Priority profile file (yaml)")
	analyzeCmd.Flags().StringVar(&analyzeGranularity, "granularity", "", "Cycle granularity (type, package, context)")
	analyzeCmd.Flags().StringVar(&analyzeFormat, "format", "json", "Output format (json, human)")
	rootCmd.AddCommand(analyzeCmd)
}

// resolveAnalysisInputs fills missing flag values from the working
// directory's config file.
func resolveAnalysisInputs(args []string, profile, granularity *string) string {
	factsPath := ""
	if len(args) > 0 {
		factsPath = args[0]
	}
	if factsPath != "" && *profile != "" && *granularity != "" {
		return factsPath
	}

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.LoadConfig(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if factsPath == "" {
		factsPath = cfg.FactsPath
	}
	if *profile == "" {
		*profile = cfg.Analysis.ProfilePath
	}
	if *granularity == "" {
		*granularity = cfg.Analysis.CycleGranularity
	}
	return factsPath
}

func runAnalyze(cmd *cobra.Command, args []string) {
	start := time.Now()
	logger := newLogger(analyzeFormat)

	factsPath := resolveAnalysisInputs(args, &analyzeProfile, &analyzeGranularity)
	report, _ := runPipeline(factsPath, analyzeProfile, analyzeFormat, parseGranularity(analyzeGranularity))

	output, err := FormatResponse(report, OutputFormat(analyzeFormat))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(output)

	logger.Debug("Analysis completed", map[string]interface{}{
		"facts":    factsPath,
		"domain":   len(report.Domain),
		"ports":    len(report.Ports),
		"duration": time.Since(start).Milliseconds(),
	})
}
