// SPDX-License-Identifier: MIT

package rag

// Vertex is one superpixel. ID is the superpixel label minus one.
type Vertex struct {
	ID     int
	Weight float64 // mean normalized intensity in [0,1]
}

// Edge joins two adjacent superpixels. U < V always holds for edges
// produced by this package.
type Edge struct {
	U, V   int
	Weight float64 // |Weight(U) - Weight(V)|
}

// Graph is an immutable undirected region-adjacency graph.
type Graph struct {
	vertices []Vertex
	edges    []Edge         // sorted by (U,V)
	index    map[uint64]int // pairKey(U,V) → position in edges
	adj      [][]int        // vertex → ascending neighbour IDs
}

// Option configures the pixel scans.
type Option func(*config)

type config struct {
	workers int
}

// WithWorkers splits each pixel scan into n row bands processed concurrently.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("rag: WithWorkers(n < 1)")
	}
	return func(c *config) { c.workers = n }
}

func resolve(opts []Option) config {
	c := config{workers: 1}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// pairKey packs a canonical (u,v), u < v, into one map key.
func pairKey(u, v int) uint64 {
	return uint64(uint32(u))<<32 | uint64(uint32(v))
}

func unpackKey(k uint64) (u, v int) {
	return int(k >> 32), int(uint32(k))
}
