package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"archlens/internal/archquery"
)

var (
	metricsPackage string
	metricsFormat  string
)

// PackageMetricsCLI pairs a package with its dependency metrics.
type PackageMetricsCLI struct {
	Package string                 `json:"package"`
	Metrics archquery.LakosMetrics `json:"metrics"`
}

// MetricsResponseCLI is the metrics command output.
type MetricsResponseCLI struct {
	Global   archquery.LakosMetrics `json:"global"`
	Packages []PackageMetricsCLI    `json:"packages,omitempty"`
}

var metricsCmd = &cobra.Command{
	Use:   "metrics <facts-file>",
	Short: "Compute Lakos dependency metrics",
	Long: `Compute Lakos cumulative component dependency metrics over the
type dependency graph: CCD, ACD, NCCD and RACD, globally and per package.

Examples:
  archlens metrics facts.json
  archlens metrics --package=com.shop.order facts.json
  archlens metrics --format=human facts.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runMetrics,
}

func init() {
	metricsCmd.Flags().StringVar(&metricsPackage, "package", "", "Restrict to a single package")
	metricsCmd.Flags().StringVar(&metricsFormat, "format", "json", "Output format (json, human)")
	rootCmd.AddCommand(metricsCmd)
}

func runMetrics(cmd *cobra.Command, args []string) {
	start := time.Now()
	logger := newLogger(metricsFormat)

	g, err := buildGraph(args[0], logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building graph: %v\n", err)
		os.Exit(1)
	}

	lakos := archquery.NewLakos(g)
	result := &MetricsResponseCLI{Global: lakos.Global()}

	if metricsPackage != "" {
		result.Packages = []PackageMetricsCLI{{
			Package: metricsPackage,
			Metrics: lakos.Package(metricsPackage),
		}}
	} else {
		pkgs := g.Indexes().Packages()
		sort.Strings(pkgs)
		for _, pkg := range pkgs {
			result.Packages = append(result.Packages, PackageMetricsCLI{
				Package: pkg,
				Metrics: lakos.Package(pkg),
			})
		}
	}

	output, err := FormatResponse(result, OutputFormat(metricsFormat))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(output)

	logger.Debug("Metrics computation completed", map[string]interface{}{
		"types":    result.Global.Types,
		"packages": len(result.Packages),
		"duration": time.Since(start).Milliseconds(),
	})
}
