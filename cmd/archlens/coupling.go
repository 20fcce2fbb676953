package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"archlens/internal/archquery"
)

var couplingFormat string

// CouplingResponseCLI is the coupling command output.
type CouplingResponseCLI struct {
	Packages   []archquery.PackageCoupling    `json:"packages"`
	Violations []archquery.StabilityViolation `json:"violations,omitempty"`
}

var couplingCmd = &cobra.Command{
	Use:   "coupling <facts-file>",
	Short: "Measure package coupling and stability",
	Long: `Measure afferent and efferent coupling, instability, abstractness
and distance from the main sequence for every package, and report
dependencies that point from stable types toward unstable ones.

Examples:
  archlens coupling facts.json
  archlens coupling --format=human facts.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runCoupling,
}

func init() {
	couplingCmd.Flags().StringVar(&couplingFormat, "format", "json", "Output format (json, human)")
	rootCmd.AddCommand(couplingCmd)
}

func runCoupling(cmd *cobra.Command, args []string) {
	start := time.Now()
	logger := newLogger(couplingFormat)

	g, err := buildGraph(args[0], logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building graph: %v\n", err)
		os.Exit(1)
	}

	result := &CouplingResponseCLI{
		Packages:   archquery.AllCouplings(g),
		Violations: archquery.StabilityViolations(g),
	}

	output, err := FormatResponse(result, OutputFormat(couplingFormat))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(output)

	logger.Debug("Coupling analysis completed", map[string]interface{}{
		"packages":   len(result.Packages),
		"violations": len(result.Violations),
		"duration":   time.Since(start).Milliseconds(),
	})
}
