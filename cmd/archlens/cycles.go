package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"archlens/internal/archquery"
)

var (
	cyclesGranularity string
	cyclesFormat      string
)

// CyclesResponseCLI is the cycles command output.
type CyclesResponseCLI struct {
	Granularity archquery.CycleKind `json:"granularity"`
	Count       int                 `json:"count"`
	Cycles      []archquery.Cycle   `json:"cycles"`
}

var cyclesCmd = &cobra.Command{
	Use:   "cycles <facts-file>",
	Short: "Detect dependency cycles",
	Long: `Detect circular dependencies in the codebase at type, package or
bounded-context granularity.

Cycles are reported as closed paths; each distinct cycle appears once
regardless of its starting point.

Examples:
  archlens cycles facts.json
  archlens cycles --granularity=package facts.json
  archlens cycles --granularity=context --format=human facts.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runCycles,
}

func init() {
	cyclesCmd.Flags().StringVar(&cyclesGranularity, "granularity", "type", "Cycle granularity (type, package, context)")
	cyclesCmd.Flags().StringVar(&cyclesFormat, "format", "json", "Output format (json, human)")
	rootCmd.AddCommand(cyclesCmd)
}

func runCycles(cmd *cobra.Command, args []string) {
	start := time.Now()
	logger := newLogger(cyclesFormat)

	granularity := parseGranularity(cyclesGranularity)

	g, err := buildGraph(args[0], logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building graph: %v\n", err)
		os.Exit(1)
	}

	cycles := archquery.Cycles(g, granularity)
	result := &CyclesResponseCLI{
		Granularity: granularity,
		Count:       len(cycles),
		Cycles:      cycles,
	}

	output, err := FormatResponse(result, OutputFormat(cyclesFormat))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(output)

	logger.Debug("Cycle detection completed", map[string]interface{}{
		"granularity": string(granularity),
		"cycles":      len(cycles),
		"duration":    time.Since(start).Milliseconds(),
	})
}
