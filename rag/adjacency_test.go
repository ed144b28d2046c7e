package rag_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/segimage/labelmap"
	"github.com/katalvlaran/segimage/rag"
	"github.com/katalvlaran/segimage/segerr"
)

// TestDiscoverEdges_Diagonal verifies that diagonal contact alone creates an edge.
func TestDiscoverEdges_Diagonal(t *testing.T) {
	lm, err := labelmap.New([][]int{
		{1, 2, 2},
		{2, 2, 3},
		{4, 2, 2},
	})
	require.NoError(t, err)
	// 1, 3 and 4 each touch 2 only.
	edges, err := rag.DiscoverEdges(lm, []float64{0, 0.5, 1, 0.25})
	require.NoError(t, err)

	assert.Equal(t, []rag.Edge{
		{U: 0, V: 1, Weight: 0.5},
		{U: 1, V: 2, Weight: 0.5},
		{U: 1, V: 3, Weight: 0.25},
	}, edges)
}

// TestDiscoverEdges_DiagonalOnly checks a checkerboard corner that touches
// only across a diagonal.
func TestDiscoverEdges_DiagonalOnly(t *testing.T) {
	lm, err := labelmap.New([][]int{
		{1, 3},
		{3, 2},
	})
	require.NoError(t, err)

	edges, err := rag.DiscoverEdges(lm, []float64{0.1, 0.2, 0.4})
	require.NoError(t, err)
	require.Len(t, edges, 3)
	assert.Equal(t, 0, edges[0].U)
	assert.Equal(t, 1, edges[0].V, "labels 1 and 2 touch diagonally")
	assert.InDelta(t, 0.1, edges[0].Weight, 1e-12)
}

// TestDiscoverEdges_Uniform gives zero-weight edges on a flat image.
func TestDiscoverEdges_Uniform(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	lm := randomDense(t, rng, 12, 9, 6)
	img := grayImage(t, uniformRows(12, 9, 77))

	g, err := rag.Build(img, lm)
	require.NoError(t, err)
	require.NotZero(t, g.Size())
	for _, e := range g.Edges() {
		assert.Zero(t, e.Weight, "edge (%d,%d)", e.U, e.V)
	}
}

// TestDiscoverEdges_LabelBeyondWeights rejects labels with no weight.
func TestDiscoverEdges_LabelBeyondWeights(t *testing.T) {
	lm, err := labelmap.New([][]int{{1, 2, 3}})
	require.NoError(t, err)

	_, err = rag.DiscoverEdges(lm, []float64{0, 1})
	assert.ErrorIs(t, err, rag.ErrVertexRange)
	assert.ErrorIs(t, err, segerr.ErrData)
}

// TestDiscoverEdges_SingleSuperpixel has no edges.
func TestDiscoverEdges_SingleSuperpixel(t *testing.T) {
	lm, err := labelmap.New([][]int{{1, 1}, {1, 1}})
	require.NoError(t, err)

	edges, err := rag.DiscoverEdges(lm, []float64{0.3})
	require.NoError(t, err)
	assert.Empty(t, edges)
}

// TestDiscoverEdges_MatchesBruteForce compares the scan with an O((WH)²) oracle
// for several band counts.
func TestDiscoverEdges_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 20; trial++ {
		w, h := rng.Intn(9)+1, rng.Intn(9)+1
		lm := randomDense(t, rng, w, h, rng.Intn(7)+1)
		weights := make([]float64, lm.MaxLabel())
		for i := range weights {
			weights[i] = rng.Float64()
		}
		want := bruteForcePairs(lm)

		for _, workers := range []int{1, 2, 4} {
			edges, err := rag.DiscoverEdges(lm, weights, rag.WithWorkers(workers))
			require.NoError(t, err)
			require.Len(t, edges, len(want), "trial %d workers %d", trial, workers)
			for _, e := range edges {
				assert.True(t, want[[2]int{e.U, e.V}], "unexpected edge (%d,%d)", e.U, e.V)
				assert.Equal(t, math.Abs(weights[e.U]-weights[e.V]), e.Weight)
			}
		}
	}
}

func uniformRows(w, h int, v uint8) [][]uint8 {
	rows := make([][]uint8, h)
	for y := range rows {
		rows[y] = make([]uint8, w)
		for x := range rows[y] {
			rows[y][x] = v
		}
	}
	return rows
}
