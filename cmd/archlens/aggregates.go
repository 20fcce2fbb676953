package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"archlens/internal/archquery"
)

var (
	aggregatesProfile string
	aggregatesFormat  string
)

// AggregatesResponseCLI is the aggregates command output.
type AggregatesResponseCLI struct {
	Aggregates []archquery.Aggregate          `json:"aggregates"`
	Contexts   []archquery.BoundedContextInfo `json:"contexts"`
}

var aggregatesCmd = &cobra.Command{
	Use:   "aggregates <facts-file>",
	Short: "Detect aggregate boundaries and bounded contexts",
	Long: `Detect aggregates from repository ports and classification: each
aggregate lists its root, its repository, its members with their roles,
and a cohesion score. Bounded contexts group types by package area.

Examples:
  archlens aggregates facts.json
  archlens aggregates --profile=strict.yaml facts.json
  archlens aggregates --format=human facts.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runAggregates,
}

func init() {
	aggregatesCmd.Flags().StringVar(&aggregatesProfile, "profile", "", "Priority profile file (yaml)")
	aggregatesCmd.Flags().StringVar(&aggregatesFormat, "format", "json", "Output format (json, human)")
	rootCmd.AddCommand(aggregatesCmd)
}

func runAggregates(cmd *cobra.Command, args []string) {
	start := time.Now()
	logger := newLogger(aggregatesFormat)

	report, _ := runPipeline(args[0], aggregatesProfile, aggregatesFormat, "")

	result := &AggregatesResponseCLI{
		Aggregates: report.Aggregates,
		Contexts:   report.Contexts,
	}

	output, err := FormatResponse(result, OutputFormat(aggregatesFormat))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(output)

	logger.Debug("Aggregate detection completed", map[string]interface{}{
		"aggregates": len(result.Aggregates),
		"contexts":   len(result.Contexts),
		"duration":   time.Since(start).Milliseconds(),
	})
}
