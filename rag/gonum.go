// SPDX-License-Identifier: MIT

package rag

import (
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/mat"
)

// AffinityFunc maps an edge to the weight an external consumer should see.
type AffinityFunc func(e Edge) float64

// Difference passes the stored |Δw| through unchanged.
func Difference(e Edge) float64 { return e.Weight }

// Similarity turns |Δw| into 1-|Δw|, so that similar neighbours attract
// under modularity-style objectives.
func Similarity(e Edge) float64 { return 1 - e.Weight }

// Gonum copies g into a gonum weighted undirected graph whose node IDs are
// the vertex IDs. Edge weights are affinity(e); nil means Difference.
// Isolated vertices are kept as nodes. The receiver is not modified.
// Complexity: O(N + E).
func (g *Graph) Gonum(affinity AffinityFunc) *simple.WeightedUndirectedGraph {
	if affinity == nil {
		affinity = Difference
	}
	out := simple.NewWeightedUndirectedGraph(0, 0)
	for _, v := range g.vertices {
		out.AddNode(simple.Node(v.ID))
	}
	for _, e := range g.edges {
		out.SetWeightedEdge(simple.WeightedEdge{
			F: simple.Node(e.U),
			T: simple.Node(e.V),
			W: affinity(e),
		})
	}
	return out
}

// WeightMatrix returns the N×N symmetric matrix with entry (u,v) = (v,u)
// holding the weight of edge {u,v}, and 0 for non-adjacent pairs and the
// diagonal.
// Complexity: O(N² + E) memory and time.
func (g *Graph) WeightMatrix() *mat.SymDense {
	n := len(g.vertices)
	m := mat.NewSymDense(n, nil)
	for _, e := range g.edges {
		m.SetSym(e.U, e.V, e.Weight)
	}
	return m
}
