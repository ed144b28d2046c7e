package rag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/graph"

	"github.com/katalvlaran/segimage/labelmap"
	"github.com/katalvlaran/segimage/rag"
	"github.com/katalvlaran/segimage/segerr"
)

// GraphSuite exercises accessors on a small fixed RAG.
//
//	1 1 2
//	3 3 2
//	3 4 4
type GraphSuite struct {
	suite.Suite
	g *rag.Graph
}

func (s *GraphSuite) SetupTest() {
	lm, err := labelmap.New([][]int{
		{1, 1, 2},
		{3, 3, 2},
		{3, 4, 4},
	})
	s.Require().NoError(err)
	img := grayImage(s.T(), [][]uint8{
		{0, 0, 255},
		{51, 51, 255},
		{51, 102, 102},
	})
	s.g, err = rag.Build(img, lm)
	s.Require().NoError(err)
}

func (s *GraphSuite) TestOrderAndWeights() {
	s.Equal(4, s.g.Order())
	want := []float64{0, 1, 0.2, 0.4}
	for i, v := range s.g.Vertices() {
		s.Equal(i, v.ID)
		s.InDelta(want[i], v.Weight, 1e-12)
		s.InDelta(want[i], s.g.Weight(i), 1e-12)
	}
}

func (s *GraphSuite) TestEdges() {
	pairs := [][2]int{{0, 1}, {0, 2}, {1, 2}, {1, 3}, {2, 3}}
	got := make([][2]int, 0, s.g.Size())
	for _, e := range s.g.Edges() {
		got = append(got, [2]int{e.U, e.V})
	}
	s.Equal(pairs, got)
}

func (s *GraphSuite) TestEdgeLookup() {
	e, ok := s.g.Edge(3, 1)
	s.True(ok)
	s.Equal(1, e.U)
	s.Equal(3, e.V)
	s.InDelta(0.6, e.Weight, 1e-12)
	s.True(s.g.HasEdge(0, 2))
	s.False(s.g.HasEdge(2, 2))
}

func (s *GraphSuite) TestNeighbors() {
	for v := 0; v < s.g.Order(); v++ {
		nb := s.g.Neighbors(v)
		s.Equal(len(nb), s.g.Degree(v))
		s.IsIncreasing(nb)
	}
	s.Equal([]int{0, 1, 3}, s.g.Neighbors(2))
}

func (s *GraphSuite) TestGonumSimilarity() {
	gg := s.g.Gonum(rag.Similarity)
	s.Equal(s.g.Order(), gg.Nodes().Len())
	s.Equal(s.g.Size(), gg.Edges().Len())
	for _, e := range s.g.Edges() {
		w, ok := gg.Weight(int64(e.U), int64(e.V))
		s.True(ok)
		s.InDelta(1-e.Weight, w, 1e-12)
	}
}

func (s *GraphSuite) TestGonumDefaultAffinity() {
	gg := s.g.Gonum(nil)
	w, ok := gg.Weight(1, 2)
	s.True(ok)
	s.InDelta(0.8, w, 1e-12)
}

func (s *GraphSuite) TestWeightMatrix() {
	m := s.g.WeightMatrix()
	n := m.SymmetricDim()
	s.Equal(4, n)
	for u := 0; u < n; u++ {
		s.Zero(m.At(u, u))
		for v := u + 1; v < n; v++ {
			e, ok := s.g.Edge(u, v)
			if !ok {
				s.Zero(m.At(u, v))
				continue
			}
			s.Equal(e.Weight, m.At(u, v))
			s.Equal(e.Weight, m.At(v, u))
		}
	}
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

// TestBuild_TwoRows covers the 2×2 reference scenario end to end.
func TestBuild_TwoRows(t *testing.T) {
	lm, err := labelmap.New([][]int{{1, 1}, {2, 2}})
	require.NoError(t, err)
	img := grayImage(t, [][]uint8{{10, 10}, {50, 50}})

	g, err := rag.Build(img, lm)
	require.NoError(t, err)
	require.Equal(t, 2, g.Order())
	require.Equal(t, 1, g.Size())
	e := g.Edges()[0]
	assert.Equal(t, 0, e.U)
	assert.Equal(t, 1, e.V)
	assert.InDelta(t, 40.0/255, e.Weight, 1e-12)
}

// TestBuild_IsolatedVertex keeps a single superpixel as a vertex with no edges.
func TestBuild_IsolatedVertex(t *testing.T) {
	lm, err := labelmap.New([][]int{{1}})
	require.NoError(t, err)
	g, err := rag.Build(grayImage(t, [][]uint8{{200}}), lm)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Order())
	assert.Zero(t, g.Size())
	assert.Empty(t, g.Neighbors(0))

	gg := g.Gonum(rag.Similarity)
	assert.NotNil(t, gg.Node(0))
	var nodes []graph.Node
	for it := gg.Nodes(); it.Next(); {
		nodes = append(nodes, it.Node())
	}
	assert.Len(t, nodes, 1)
}

// TestAssemble_Canonicalizes swaps endpoints and sorts.
func TestAssemble_Canonicalizes(t *testing.T) {
	g, err := rag.Assemble(3, []float64{0, 0.5, 1}, []rag.Edge{
		{U: 2, V: 1, Weight: 0.5},
		{U: 1, V: 0, Weight: 0.5},
	})
	require.NoError(t, err)
	assert.Equal(t, []rag.Edge{
		{U: 0, V: 1, Weight: 0.5},
		{U: 1, V: 2, Weight: 0.5},
	}, g.Edges())
}

// TestAssemble_Errors is a table of rejected inputs.
func TestAssemble_Errors(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		weights []float64
		edges   []rag.Edge
		want    error
	}{
		{"Empty", 0, nil, nil, rag.ErrEmptyGraph},
		{"Negative", -1, nil, nil, rag.ErrEmptyGraph},
		{"ShortWeights", 3, []float64{0, 1}, nil, rag.ErrWeightCount},
		{"LongWeights", 1, []float64{0, 1}, nil, rag.ErrWeightCount},
		{"HighEndpoint", 2, []float64{0, 1}, []rag.Edge{{U: 0, V: 2}}, rag.ErrVertexRange},
		{"NegativeEndpoint", 2, []float64{0, 1}, []rag.Edge{{U: -1, V: 1}}, rag.ErrVertexRange},
		{"SelfLoop", 2, []float64{0, 1}, []rag.Edge{{U: 1, V: 1}}, rag.ErrSelfLoop},
		{"Duplicate", 2, []float64{0, 1}, []rag.Edge{{U: 0, V: 1}, {U: 0, V: 1}}, rag.ErrDuplicateEdge},
		{"ReversedDuplicate", 2, []float64{0, 1}, []rag.Edge{{U: 0, V: 1}, {U: 1, V: 0}}, rag.ErrDuplicateEdge},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := rag.Assemble(tc.n, tc.weights, tc.edges)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, segerr.ErrData)
		})
	}
}
