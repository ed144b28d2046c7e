// SPDX-License-Identifier: MIT

// Package metrics records per-run pipeline measurements in a Prometheus
// registry. Batch runs dump the registry to a node-exporter textfile.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds the segimage collectors on a private prometheus.Registry.
type Registry struct {
	registry *prometheus.Registry

	StageDuration *prometheus.HistogramVec
	StageFailures *prometheus.CounterVec
	RunsTotal     *prometheus.CounterVec
	Superpixels   prometheus.Gauge
	Edges         prometheus.Gauge
	Communities   *prometheus.GaugeVec
	Modularity    *prometheus.GaugeVec
}

// NewRegistry creates a Registry with every collector registered.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	f := promauto.With(r.registry)

	r.StageDuration = f.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "segimage_stage_duration_seconds",
			Help:    "Duration of pipeline stages in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
		},
		[]string{"stage"},
	)
	r.StageFailures = f.NewCounterVec(
		prometheus.CounterOpts{
			Name: "segimage_stage_failures_total",
			Help: "Pipeline stage failures",
		},
		[]string{"stage"},
	)
	r.RunsTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Name: "segimage_runs_total",
			Help: "Pipeline runs by outcome",
		},
		[]string{"status"}, // ok, error
	)
	r.Superpixels = f.NewGauge(
		prometheus.GaugeOpts{
			Name: "segimage_superpixels",
			Help: "Superpixels (graph vertices) in the last run",
		},
	)
	r.Edges = f.NewGauge(
		prometheus.GaugeOpts{
			Name: "segimage_graph_edges",
			Help: "Region-adjacency edges in the last run",
		},
	)
	r.Communities = f.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "segimage_communities",
			Help: "Communities found per resolution in the last run",
		},
		[]string{"resolution"},
	)
	r.Modularity = f.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "segimage_modularity",
			Help: "Modularity Q per resolution in the last run",
		},
		[]string{"resolution"},
	)
	return r
}

// Gatherer exposes the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.registry }

// ObserveStage records how long stage took.
func (r *Registry) ObserveStage(stage string, d time.Duration) {
	r.StageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

// RecordFailure counts a failed stage.
func (r *Registry) RecordFailure(stage string) {
	r.StageFailures.WithLabelValues(stage).Inc()
}

// RecordRun counts a finished run.
func (r *Registry) RecordRun(err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	r.RunsTotal.WithLabelValues(status).Inc()
}

// SetGraph records the size of the region-adjacency graph.
func (r *Registry) SetGraph(vertices, edges int) {
	r.Superpixels.Set(float64(vertices))
	r.Edges.Set(float64(edges))
}

// SetPartition records the outcome of one resolution.
func (r *Registry) SetPartition(resolution float64, communities int, q float64) {
	label := ResolutionLabel(resolution)
	r.Communities.WithLabelValues(label).Set(float64(communities))
	r.Modularity.WithLabelValues(label).Set(q)
}

// ResolutionLabel formats a resolution the way output file names do.
func ResolutionLabel(resolution float64) string {
	return strconv.FormatFloat(resolution, 'f', 2, 64)
}

// WriteTextfile writes the registry in text exposition format to path,
// atomically, for the node-exporter textfile collector.
func (r *Registry) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
