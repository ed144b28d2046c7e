package metrics_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/segimage/metrics"
)

func TestRegistry_Record(t *testing.T) {
	r := metrics.NewRegistry()

	r.ObserveStage("graph", 20*time.Millisecond)
	r.ObserveStage("graph", 30*time.Millisecond)
	r.RecordFailure("segment")
	r.RecordRun(nil)
	r.RecordRun(errors.New("boom"))
	r.RecordRun(nil)
	r.SetGraph(12, 30)
	r.SetPartition(0.5, 4, 0.42)

	assert.Equal(t, 1, testutil.CollectAndCount(r.StageDuration))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.StageFailures.WithLabelValues("segment")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.RunsTotal.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.RunsTotal.WithLabelValues("error")))
	assert.Equal(t, 12.0, testutil.ToFloat64(r.Superpixels))
	assert.Equal(t, 30.0, testutil.ToFloat64(r.Edges))
	assert.Equal(t, 4.0, testutil.ToFloat64(r.Communities.WithLabelValues("0.50")))
	assert.Equal(t, 0.42, testutil.ToFloat64(r.Modularity.WithLabelValues("0.50")))
}

func TestRegistry_Isolated(t *testing.T) {
	a, b := metrics.NewRegistry(), metrics.NewRegistry()
	a.SetGraph(5, 1)
	assert.Zero(t, testutil.ToFloat64(b.Superpixels))
}

func TestRegistry_WriteTextfile(t *testing.T) {
	r := metrics.NewRegistry()
	r.SetGraph(7, 9)
	path := filepath.Join(t.TempDir(), "segimage.prom")

	require.NoError(t, r.WriteTextfile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	s := string(data)
	assert.True(t, strings.Contains(s, "segimage_superpixels 7"), s)
	assert.Contains(t, s, "segimage_graph_edges 9")

	n, err := testutil.GatherAndCount(r.Gatherer(), "segimage_superpixels")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestResolutionLabel(t *testing.T) {
	assert.Equal(t, "0.01", metrics.ResolutionLabel(0.01))
	assert.Equal(t, "1.00", metrics.ResolutionLabel(1))
	assert.Equal(t, "0.11", metrics.ResolutionLabel(0.109))
}
