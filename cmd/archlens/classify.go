package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"archlens/internal/classify"
	"archlens/internal/graph"
)

var (
	classifyProfile string
	classifyFormat  string
)

// ClassifyResponseCLI is the classify command output.
type ClassifyResponseCLI struct {
	Style  graph.Style                            `json:"style"`
	Domain []classify.Result[classify.DomainKind] `json:"domain"`
	Ports  []classify.Result[classify.PortKind]   `json:"ports"`
}

var classifyCmd = &cobra.Command{
	Use:   "classify <facts-file>",
	Short: "Classify domain types and ports",
	Long: `Classify every type in the facts file against the DDD criteria
catalog: aggregate roots, entities, value objects, identifiers, domain
events and services, plus port detection for interfaces.

Each result carries its confidence, justification and evidence, and any
conflicting classifications that lost the ranking.

Examples:
  archlens classify facts.json
  archlens classify --profile=strict.yaml facts.json
  archlens classify --format=human facts.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runClassify,
}

func init() {
	classifyCmd.Flags().StringVar(&classifyProfile, "profile", "", "Priority profile file (yaml)")
	classifyCmd.Flags().StringVar(&classifyFormat, "format", "json", "Output format (json, human)")
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) {
	start := time.Now()
	logger := newLogger(classifyFormat)

	report, g := runPipeline(args[0], classifyProfile, classifyFormat, "")

	result := &ClassifyResponseCLI{
		Style:  g.Metadata().Style,
		Domain: report.Domain,
		Ports:  report.Ports,
	}

	output, err := FormatResponse(result, OutputFormat(classifyFormat))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(output)

	logger.Debug("Classification completed", map[string]interface{}{
		"domain":   len(result.Domain),
		"ports":    len(result.Ports),
		"duration": time.Since(start).Milliseconds(),
	})
}
