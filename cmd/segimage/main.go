// SPDX-License-Identifier: MIT

// Command segimage segments images into superpixels, groups them into
// communities over the region-adjacency graph and writes one colorized
// image per resolution.
//
// Usage:
//
//	segimage [flags] image...
//
// Settings come from defaults, then -config YAML, then SEGIMAGE_*
// environment variables (optionally loaded from -env files), then flags.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/katalvlaran/segimage/config"
	"github.com/katalvlaran/segimage/pipeline"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

// flags holds command-line values; only flags the user set are applied.
type flags struct {
	config, env, labels string

	out, format         string
	segments            int
	compactness, sigma  float64
	resolutions         string
	sweep, dot          bool
	seed                int64
	partitionSeed       uint64
	workers             int
	logLevel, logFormat string
	metricsTextfile     string
}

func newFlagSet(f *flags, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("segimage", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: segimage [flags] image...")
		fs.PrintDefaults()
	}

	fs.StringVar(&f.config, "config", "", "YAML configuration file")
	fs.StringVar(&f.env, "env", "", "comma-separated .env files to load")
	fs.StringVar(&f.labels, "labels", "", "precomputed label map (.csv or 16-bit gray image); single input only")
	fs.StringVar(&f.out, "out", "", "output directory")
	fs.StringVar(&f.format, "format", "", "output format: png, jpg, tif or bmp (default: input's)")
	fs.IntVar(&f.segments, "segments", 0, "approximate number of superpixels")
	fs.Float64Var(&f.compactness, "compactness", 0, "SLIC compactness")
	fs.Float64Var(&f.sigma, "sigma", 0, "Gaussian pre-smoothing sigma")
	fs.StringVar(&f.resolutions, "resolution", "", "comma-separated Louvain resolutions")
	fs.BoolVar(&f.sweep, "sweep", false, "use the resolution sweep 0.01..1 in 11 steps")
	fs.Int64Var(&f.seed, "seed", 0, "color seed")
	fs.Uint64Var(&f.partitionSeed, "partition-seed", 0, "Louvain seed")
	fs.IntVar(&f.workers, "workers", 0, "row bands scanned concurrently")
	fs.BoolVar(&f.dot, "dot", false, "also write the graph as DOT with community colors")
	fs.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	fs.StringVar(&f.logFormat, "log-format", "", "json or text")
	fs.StringVar(&f.metricsTextfile, "metrics-textfile", "", "write Prometheus metrics to this file")
	return fs
}

// apply overlays the flags named in set onto cfg.
func (f *flags) apply(cfg *config.Config, set map[string]bool) error {
	if set["out"] {
		cfg.Output.Dir = f.out
	}
	if set["format"] {
		cfg.Output.Format = f.format
	}
	if set["segments"] {
		cfg.Segmentation.Segments = f.segments
	}
	if set["compactness"] {
		cfg.Segmentation.Compactness = f.compactness
	}
	if set["sigma"] {
		cfg.Segmentation.Sigma = f.sigma
	}
	if set["resolution"] {
		rs, err := parseFloats(f.resolutions)
		if err != nil {
			return fmt.Errorf("-resolution: %w", err)
		}
		cfg.Partition.Resolutions = rs
	}
	if f.sweep {
		cfg.Partition.Resolutions = pipeline.DefaultSweep()
	}
	if set["seed"] {
		cfg.Color.Seed = f.seed
	}
	if set["partition-seed"] {
		cfg.Partition.Seed = f.partitionSeed
	}
	if set["workers"] {
		cfg.Workers = f.workers
	}
	if set["dot"] {
		cfg.Output.GraphDOT = f.dot
	}
	if set["log-level"] {
		cfg.Log.Level = f.logLevel
	}
	if set["log-format"] {
		cfg.Log.Format = f.logFormat
	}
	if set["metrics-textfile"] {
		cfg.Metrics.Textfile = f.metricsTextfile
	}
	return cfg.Validate()
}

func parseFloats(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// loadConfig resolves the effective configuration for args.
func loadConfig(args []string, stderr io.Writer) (*config.Config, *flags, []string, error) {
	f := &flags{}
	fs := newFlagSet(f, stderr)
	if err := fs.Parse(args); err != nil {
		return nil, nil, nil, err
	}
	set := map[string]bool{}
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	if f.env != "" {
		if err := config.LoadDotEnv(strings.Split(f.env, ",")...); err != nil {
			return nil, nil, nil, err
		}
	}
	cfg, err := config.Load(f.config)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := f.apply(cfg, set); err != nil {
		return nil, nil, nil, err
	}
	inputs := fs.Args()
	if len(inputs) == 0 {
		fs.Usage()
		return nil, nil, nil, fmt.Errorf("no input images")
	}
	if f.labels != "" && len(inputs) > 1 {
		return nil, nil, nil, fmt.Errorf("-labels accepts a single input image, got %d", len(inputs))
	}
	return cfg, f, inputs, nil
}

func newLogger(lc config.LogConfig, w io.Writer) *slog.Logger {
	var level slog.Level
	_ = level.UnmarshalText([]byte(lc.Level)) // validated by config
	opts := &slog.HandlerOptions{Level: level}
	if lc.Format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// run processes every input and returns the exit code.
func run(ctx context.Context, args []string, stderr io.Writer) int {
	cfg, f, inputs, err := loadConfig(args, stderr)
	if err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		fmt.Fprintf(stderr, "segimage: %v\n", err)
		return 2
	}
	logger := newLogger(cfg.Log, stderr)
	p := pipeline.New(cfg, pipeline.WithLogger(logger))

	failed := 0
	for _, in := range inputs {
		res, err := p.Run(ctx, pipeline.Request{Input: in, LabelMap: f.labels})
		if err != nil {
			failed++
			if ctx.Err() != nil {
				break
			}
			continue
		}
		for _, o := range res.Outputs {
			logger.Info("wrote image", "run_id", res.RunID, "path", o.Path,
				"resolution", o.Resolution, "communities", o.Communities)
		}
	}
	if failed > 0 {
		logger.Error("some inputs failed", "failed", failed, "total", len(inputs))
		return 1
	}
	return 0
}
