// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/segimage/codec"
	"github.com/katalvlaran/segimage/drawing"
	"github.com/katalvlaran/segimage/labelmap"
	"github.com/katalvlaran/segimage/metrics"
	"github.com/katalvlaran/segimage/palette"
	"github.com/katalvlaran/segimage/partition"
	"github.com/katalvlaran/segimage/rag"
	"github.com/katalvlaran/segimage/raster"
	"github.com/katalvlaran/segimage/visual"
)

// rendered is one resolution's output held in memory until the write stage.
type rendered struct {
	out   Output
	image *raster.RGB
	dot   []byte
}

// Run processes req. On error nothing has been written.
func (p *Pipeline) Run(ctx context.Context, req Request) (res *Result, err error) {
	if req.Input == "" {
		return nil, ErrNoInput
	}
	runID := uuid.NewString()
	log := p.logger.With("run_id", runID, "input", req.Input)
	start := time.Now()
	log.Info("run started", "resolutions", len(p.cfg.Partition.Resolutions))

	defer func() {
		p.metrics.RecordRun(err)
		if err != nil {
			log.Error("run failed", "error", err, "elapsed", time.Since(start))
		} else {
			log.Info("run finished", "outputs", len(res.Outputs), "elapsed", time.Since(start))
		}
		p.flushMetrics(log)
	}()

	var img *raster.RGB
	if err = p.stage(ctx, log, StageLoad, func() (e error) {
		img, e = codec.Load(req.Input)
		return e
	}); err != nil {
		return nil, err
	}

	var lm *labelmap.LabelMap
	if err = p.stage(ctx, log, StageSegment, func() (e error) {
		if req.LabelMap != "" {
			lm, e = readLabelMap(req.LabelMap)
		} else {
			lm, e = p.segmenter.Segment(ctx, img)
		}
		return e
	}); err != nil {
		return nil, err
	}
	log.Debug("label map ready", "superpixels", lm.MaxLabel(), "width", lm.Width(), "height", lm.Height())

	var g *rag.Graph
	if err = p.stage(ctx, log, StageGraph, func() (e error) {
		g, e = rag.Build(img, lm, rag.WithWorkers(p.cfg.Workers))
		return e
	}); err != nil {
		return nil, err
	}
	p.metrics.SetGraph(g.Order(), g.Size())
	log.Info("graph built", "vertices", g.Order(), "edges", g.Size())

	resolutions := p.cfg.Partition.Resolutions
	renders := make([]rendered, 0, len(resolutions))
	for _, r := range resolutions {
		var rd rendered
		if rd, err = p.renderResolution(ctx, log, req, img, lm, g, r, len(resolutions) > 1); err != nil {
			return nil, err
		}
		renders = append(renders, rd)
	}

	if err = p.stage(ctx, log, StageWrite, func() error {
		return p.write(renders)
	}); err != nil {
		return nil, err
	}

	res = &Result{RunID: runID, Vertices: g.Order(), Edges: g.Size()}
	for _, rd := range renders {
		res.Outputs = append(res.Outputs, rd.out)
	}
	return res, nil
}

func (p *Pipeline) renderResolution(ctx context.Context, log *slog.Logger, req Request,
	img *raster.RGB, lm *labelmap.LabelMap, g *rag.Graph, r float64, sweep bool) (rendered, error) {
	log = log.With("resolution", r)
	rd := rendered{out: Output{Resolution: r}}

	var part *partitionResult
	if err := p.stage(ctx, log, StagePartition, func() (e error) {
		part, e = p.partition(ctx, g, r)
		return e
	}); err != nil {
		return rd, err
	}
	rd.out.Communities = part.p.Len()
	rd.out.Modularity = part.q
	p.metrics.SetPartition(r, part.p.Len(), part.q)
	log.Info("partition found", "communities", part.p.Len(), "modularity", part.q)

	err := p.stage(ctx, log, StageRender, func() error {
		li, err := visual.MapLabels(part.p, lm)
		if err != nil {
			return err
		}
		table, err := palette.Assign(part.p, palette.WithSeed(p.cfg.Color.Seed))
		if err != nil {
			return err
		}
		if rd.image, err = visual.Render(li, table, img.W, img.H); err != nil {
			return err
		}
		if !p.cfg.Output.GraphDOT {
			return nil
		}
		colors, err := table.VertexColors(part.p, g.Order())
		if err != nil {
			return err
		}
		rd.dot, err = drawing.MarshalDOT(g, colors)
		return err
	})
	if err != nil {
		return rd, err
	}

	tag := ProcessedTag
	if sweep {
		tag = metrics.ResolutionLabel(r)
	}
	rd.out.Path = codec.OutputPath(p.cfg.Output.Dir, req.Input, tag, p.outputFormat())
	if rd.dot != nil {
		rd.out.DOTPath = strings.TrimSuffix(rd.out.Path, filepath.Ext(rd.out.Path)) + ".dot"
	}
	return rd, nil
}

type partitionResult struct {
	p *partition.Partition
	q float64
}

func (p *Pipeline) partition(ctx context.Context, g *rag.Graph, r float64) (*partitionResult, error) {
	pt := p.partitioner(r)
	part, err := pt.Partition(ctx, g)
	if err != nil {
		return nil, err
	}
	if err := part.Validate(g.Order()); err != nil {
		return nil, err
	}
	res := &partitionResult{p: part}
	if s, ok := pt.(modularityScorer); ok {
		res.q = s.Modularity(g, part)
	}
	return res, nil
}

// outputFormat returns the configured format, or "" to keep the input's
// extension. The config validator has already restricted the name.
func (p *Pipeline) outputFormat() codec.Format {
	f, _ := codec.ParseFormat(p.cfg.Output.Format)
	return f
}

func (p *Pipeline) write(renders []rendered) (err error) {
	if err = os.MkdirAll(p.cfg.Output.Dir, 0o755); err != nil {
		return err
	}
	var written []string
	defer func() {
		if err != nil {
			for _, path := range written {
				os.Remove(path)
			}
		}
	}()
	for _, rd := range renders {
		if err = codec.Save(rd.out.Path, rd.image, codec.WithJPEGQuality(p.cfg.Output.JPEGQuality)); err != nil {
			return err
		}
		written = append(written, rd.out.Path)
		if rd.dot == nil {
			continue
		}
		dot := rd.dot
		if err = codec.WriteAtomic(rd.out.DOTPath, func(w io.Writer) error {
			_, werr := w.Write(dot)
			return werr
		}); err != nil {
			return err
		}
		written = append(written, rd.out.DOTPath)
	}
	return nil
}

// stage runs fn after checking ctx, timing it and logging the outcome.
func (p *Pipeline) stage(ctx context.Context, log *slog.Logger, name string, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()
	err := fn()
	elapsed := time.Since(start)
	p.metrics.ObserveStage(name, elapsed)
	if err != nil {
		p.metrics.RecordFailure(name)
		log.Debug("stage failed", "stage", name, "elapsed", elapsed, "error", err)
		return err
	}
	log.Debug("stage done", "stage", name, "elapsed", elapsed)
	return nil
}

func (p *Pipeline) flushMetrics(log *slog.Logger) {
	path := p.cfg.Metrics.Textfile
	if path == "" {
		return
	}
	if err := p.metrics.WriteTextfile(path); err != nil {
		log.Warn("metrics textfile not written", "path", path, "error", err)
	}
}

// readLabelMap reads a CSV label map by extension, anything else as a gray image.
func readLabelMap(path string) (*labelmap.LabelMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return codec.ReadLabelMapCSV(f)
	}
	return codec.ReadLabelMapImage(f)
}
