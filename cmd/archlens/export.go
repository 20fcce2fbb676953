package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"archlens/internal/config"
	"archlens/internal/export"
)

var (
	exportOutput   string
	exportProfile  string
	exportCompress bool
	exportPretty   bool
	exportFormat   string
)

var exportCmd = &cobra.Command{
	Use:   "export <facts-file>",
	Short: "Export an analysis snapshot",
	Long: `Run the full analysis and write a self-contained snapshot: graph
nodes, edges and the complete report. Snapshots round-trip through
'archlens' tooling and other consumers.

An output path ending in .zst is compressed with zstd automatically.

Examples:
  archlens export facts.json
  archlens export -o snapshot.json.zst facts.json
  archlens export --pretty -o snapshot.json facts.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output path (default from config)")
	exportCmd.Flags().StringVar(&exportProfile, "profile", "", "Priority profile file (yaml)")
	exportCmd.Flags().BoolVar(&exportCompress, "compress", false, "Compress the snapshot with zstd")
	exportCmd.Flags().BoolVar(&exportPretty, "pretty", false, "Indent the JSON output")
	exportCmd.Flags().StringVar(&exportFormat, "format", "human", "Log format (json, human)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) {
	start := time.Now()
	logger := newLogger(exportFormat)

	outputPath := exportOutput
	compress := exportCompress
	if outputPath == "" {
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
		outputPath = cfg.Export.OutputPath
		compress = compress || cfg.Export.Compress
	}

	report, g := runPipeline(args[0], exportProfile, exportFormat, "")

	exporter := export.NewExporter(logger)
	err := exporter.WriteFile(outputPath, g, report, export.Options{
		Compress: compress,
		Pretty:   exportPretty,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing snapshot: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Snapshot written to %s\n", outputPath)

	logger.Debug("Export completed", map[string]interface{}{
		"output":   outputPath,
		"runId":    report.RunID,
		"duration": time.Since(start).Milliseconds(),
	})
}
