package main

import (
	"archlens/internal/graph"
	"archlens/internal/logging"
)

// buildGraph builds the derived application graph for a facts file. Commands
// that need no classification use this instead of the full pipeline.
func buildGraph(path string, logger *logging.Logger) (*graph.Graph, error) {
	g, err := graph.NewBuilder(logger).Build(mustLoadFacts(path))
	if err != nil {
		return nil, err
	}
	if err := graph.NewDerivedEdgeComputer(logger).Compute(g); err != nil {
		return nil, err
	}
	return g, nil
}

// newLogger creates a logger with the specified format.
func newLogger(format string) *logging.Logger {
	logFormat := logging.HumanFormat
	if format == "json" {
		logFormat = logging.JSONFormat
	}
	return logging.NewLogger(logging.Config{
		Format: logFormat,
		Level:  logging.InfoLevel,
	})
}
