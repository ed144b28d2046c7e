// SPDX-License-Identifier: MIT

package pipeline

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/segimage/config"
	"github.com/katalvlaran/segimage/metrics"
	"github.com/katalvlaran/segimage/partition"
	"github.com/katalvlaran/segimage/rag"
	"github.com/katalvlaran/segimage/segerr"
	"github.com/katalvlaran/segimage/segment"
)

// ErrNoInput indicates a Request without an input image path.
var ErrNoInput = segerr.Wrap(segerr.ErrInput, "pipeline: no input image")

// Stage names used in logs and metrics.
const (
	StageLoad      = "load"
	StageSegment   = "segment"
	StageGraph     = "graph"
	StagePartition = "partition"
	StageRender    = "render"
	StageWrite     = "write"
)

// ProcessedTag names the output of a single-resolution run.
const ProcessedTag = "processed"

// PartitionerFunc builds the partitioner used for one resolution.
type PartitionerFunc func(resolution float64) partition.Partitioner

// modularityScorer is implemented by partitioners that can score their result.
type modularityScorer interface {
	Modularity(g *rag.Graph, p *partition.Partition) float64
}

// Request names one unit of work.
type Request struct {
	Input    string // source image path
	LabelMap string // optional precomputed label map (.csv or gray image)
}

// Output describes one rendered resolution.
type Output struct {
	Resolution  float64
	Communities int
	Modularity  float64
	Path        string
	DOTPath     string // empty unless graph output is enabled
}

// Result summarizes a successful run.
type Result struct {
	RunID    string
	Vertices int
	Edges    int
	Outputs  []Output
}

// Pipeline wires the segimage stages together. It is safe for sequential
// reuse across runs.
type Pipeline struct {
	cfg         *config.Config
	segmenter   segment.Segmenter
	partitioner PartitionerFunc
	logger      *slog.Logger
	metrics     *metrics.Registry
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithSegmenter replaces the SLIC segmenter built from the config.
func WithSegmenter(s segment.Segmenter) Option {
	return func(p *Pipeline) { p.segmenter = s }
}

// WithPartitioner replaces the Louvain partitioner built from the config.
func WithPartitioner(f PartitionerFunc) Option {
	return func(p *Pipeline) { p.partitioner = f }
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

// WithMetrics sets the metrics registry; the default is a private one.
func WithMetrics(m *metrics.Registry) Option {
	return func(p *Pipeline) { p.metrics = m }
}

// New builds a Pipeline for a validated cfg.
func New(cfg *config.Config, opts ...Option) *Pipeline {
	p := &Pipeline{cfg: cfg}
	for _, opt := range opts {
		opt(p)
	}
	if p.segmenter == nil {
		s := cfg.Segmentation
		p.segmenter = segment.NewSLIC(
			segment.WithSegments(s.Segments),
			segment.WithCompactness(s.Compactness),
			segment.WithSigma(s.Sigma),
			segment.WithIterations(s.Iterations),
		)
	}
	if p.partitioner == nil {
		seed := cfg.Partition.Seed
		p.partitioner = func(r float64) partition.Partitioner {
			return partition.NewLouvain(partition.WithResolution(r), partition.WithSeed(seed))
		}
	}
	if p.logger == nil {
		p.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if p.metrics == nil {
		p.metrics = metrics.NewRegistry()
	}
	return p
}

// Metrics returns the registry the Pipeline records into.
func (p *Pipeline) Metrics() *metrics.Registry { return p.metrics }
