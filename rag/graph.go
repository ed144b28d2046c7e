// SPDX-License-Identifier: MIT

package rag

import (
	"github.com/katalvlaran/segimage/labelmap"
	"github.com/katalvlaran/segimage/raster"
	"github.com/katalvlaran/segimage/segerr"
)

// Build aggregates superpixel weights from img, discovers adjacency in lm
// and assembles the Graph. N is lm.MaxLabel().
func Build(img *raster.RGB, lm *labelmap.LabelMap, opts ...Option) (*Graph, error) {
	weights, err := MeanIntensity(img, lm, opts...)
	if err != nil {
		return nil, err
	}
	edges, err := DiscoverEdges(lm, weights, opts...)
	if err != nil {
		return nil, err
	}
	return Assemble(lm.MaxLabel(), weights, edges)
}

// Assemble builds a Graph with n vertices carrying weights and the given
// undirected edges. Edges are canonicalized to U < V and sorted; their
// weights are taken as given.
//
// Returns ErrEmptyGraph if n < 1, ErrWeightCount if len(weights) != n,
// and ErrVertexRange, ErrSelfLoop or ErrDuplicateEdge for bad edges.
// Complexity: O(N + E log E).
func Assemble(n int, weights []float64, edges []Edge) (*Graph, error) {
	if n < 1 {
		return nil, ErrEmptyGraph
	}
	if len(weights) != n {
		return nil, segerr.Errorf("Assemble", ErrWeightCount, "%d weights for %d vertices", len(weights), n)
	}

	g := &Graph{
		vertices: make([]Vertex, n),
		edges:    make([]Edge, 0, len(edges)),
		index:    make(map[uint64]int, len(edges)),
		adj:      make([][]int, n),
	}
	for i, w := range weights {
		g.vertices[i] = Vertex{ID: i, Weight: w}
	}

	for _, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, segerr.Errorf("Assemble", ErrVertexRange, "edge (%d,%d) with %d vertices", e.U, e.V, n)
		}
		if e.U == e.V {
			return nil, segerr.Errorf("Assemble", ErrSelfLoop, "vertex %d", e.U)
		}
		if e.U > e.V {
			e.U, e.V = e.V, e.U
		}
		k := pairKey(e.U, e.V)
		if _, dup := g.index[k]; dup {
			return nil, segerr.Errorf("Assemble", ErrDuplicateEdge, "edge (%d,%d)", e.U, e.V)
		}
		g.index[k] = -1
		g.edges = append(g.edges, e)
	}

	sortEdges(g.edges)
	for i, e := range g.edges {
		g.index[pairKey(e.U, e.V)] = i
		g.adj[e.U] = append(g.adj[e.U], e.V)
		g.adj[e.V] = append(g.adj[e.V], e.U)
	}
	// adj lists come out ascending: edges are sorted by (U,V).
	return g, nil
}

// Order returns the number of vertices N.
func (g *Graph) Order() int { return len(g.vertices) }

// Size returns the number of edges.
func (g *Graph) Size() int { return len(g.edges) }

// Vertices returns the vertices in ID order. Callers must not mutate it.
func (g *Graph) Vertices() []Vertex { return g.vertices }

// Edges returns the edges sorted by (U,V). Callers must not mutate it.
func (g *Graph) Edges() []Edge { return g.edges }

// Weight returns the weight of vertex v.
func (g *Graph) Weight(v int) float64 { return g.vertices[v].Weight }

// Edge returns the edge between u and v in either order.
func (g *Graph) Edge(u, v int) (Edge, bool) {
	if u > v {
		u, v = v, u
	}
	i, ok := g.index[pairKey(u, v)]
	if !ok {
		return Edge{}, false
	}
	return g.edges[i], true
}

// HasEdge reports whether u and v are adjacent.
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.Edge(u, v)
	return ok
}

// Neighbors returns the ascending neighbour IDs of v. Callers must not mutate it.
func (g *Graph) Neighbors(v int) []int { return g.adj[v] }

// Degree returns the number of neighbours of v.
func (g *Graph) Degree(v int) int { return len(g.adj[v]) }
