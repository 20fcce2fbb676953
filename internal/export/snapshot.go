package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"

	"archlens/internal/analysis"
	"archlens/internal/errors"
	"archlens/internal/graph"
	"archlens/internal/logging"
)

// Snapshot is the serialized form of a populated graph plus its analysis
// report, the contract downstream consumers read.
type Snapshot struct {
	Metadata graph.Metadata   `json:"metadata"`
	Nodes    []SnapshotNode   `json:"nodes"`
	Edges    []graph.Edge     `json:"edges"`
	Report   *analysis.Report `json:"report,omitempty"`
}

// SnapshotNode is one serialized graph node.
type SnapshotNode struct {
	ID            graph.NodeId   `json:"id"`
	Kind          graph.NodeKind `json:"kind"`
	QualifiedName string         `json:"qualifiedName"`
	SimpleName    string         `json:"simpleName"`
	Form          graph.TypeForm `json:"form,omitempty"`
}

// Options controls how a snapshot is written.
type Options struct {
	// Compress wraps the output in a zstd stream. Paths ending in .zst
	// enable it implicitly.
	Compress bool
	Pretty   bool
}

// Exporter writes graph snapshots.
type Exporter struct {
	logger *logging.Logger
}

// NewExporter creates an exporter logging through the given logger.
func NewExporter(logger *logging.Logger) *Exporter {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &Exporter{logger: logger}
}

// BuildSnapshot assembles the serializable form of a graph and report.
func BuildSnapshot(g *graph.Graph, report *analysis.Report) *Snapshot {
	nodes := make([]SnapshotNode, 0, g.NodeCount())
	for _, n := range g.Nodes() {
		sn := SnapshotNode{
			ID:            n.ID(),
			Kind:          n.ID().Kind(),
			QualifiedName: n.QualifiedName(),
			SimpleName:    n.SimpleName(),
		}
		if t, ok := n.(*graph.TypeNode); ok {
			sn.Form = t.Form
		}
		nodes = append(nodes, sn)
	}
	return &Snapshot{
		Metadata: g.Metadata(),
		Nodes:    nodes,
		Edges:    g.Edges(),
		Report:   report,
	}
}

// WriteFile writes the snapshot to a file. A .zst extension turns on
// compression regardless of the options.
func (e *Exporter) WriteFile(path string, g *graph.Graph, report *analysis.Report, opts Options) error {
	if strings.HasSuffix(path, ".zst") {
		opts.Compress = true
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.New(errors.ExportFailed, fmt.Sprintf("creating %s", path), err)
	}
	defer f.Close()

	if err := e.Write(f, g, report, opts); err != nil {
		return err
	}
	e.logger.Info("snapshot written", map[string]interface{}{
		"path":       path,
		"nodes":      g.NodeCount(),
		"edges":      g.EdgeCount(),
		"compressed": opts.Compress,
	})
	return nil
}

// Write writes the snapshot to a writer.
func (e *Exporter) Write(w io.Writer, g *graph.Graph, report *analysis.Report, opts Options) error {
	out := w
	var zw *zstd.Encoder
	if opts.Compress {
		var err error
		zw, err = zstd.NewWriter(w)
		if err != nil {
			return errors.New(errors.ExportFailed, "initializing compression", err)
		}
		out = zw
	}

	enc := json.NewEncoder(out)
	if opts.Pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(BuildSnapshot(g, report)); err != nil {
		return errors.New(errors.ExportFailed, "encoding snapshot", err)
	}
	if zw != nil {
		if err := zw.Close(); err != nil {
			return errors.New(errors.ExportFailed, "flushing compression", err)
		}
	}
	return nil
}

// ReadFile loads a snapshot back, transparently handling compression by
// extension.
func ReadFile(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.New(errors.ExportFailed, fmt.Sprintf("opening %s", path), err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".zst") {
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, errors.New(errors.ExportFailed, "initializing decompression", err)
		}
		defer zr.Close()
		r = zr
	}

	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, errors.New(errors.ExportFailed, "decoding snapshot", err)
	}
	return &snap, nil
}
