// SPDX-License-Identifier: MIT

package rag

import (
	"math"
	"sort"

	"github.com/katalvlaran/segimage/labelmap"
	"github.com/katalvlaran/segimage/segerr"
)

// DiscoverEdges scans lm under 8-connectivity and returns every unordered
// pair of superpixels that touch, once, as vertex IDs (label-1) with U < V.
// Each edge is weighted |weights[U] - weights[V]|.
//
// Pixel pairs are deduplicated through a set keyed by the canonical
// (min,max) pair, so the returned set and weights do not depend on scan
// order. Edges are returned sorted by (U,V).
//
// Returns ErrVertexRange if a label exceeds len(weights).
// Complexity: O(W×H×8) time, O(E) memory per band.
func DiscoverEdges(lm *labelmap.LabelMap, weights []float64, opts ...Option) ([]Edge, error) {
	if lm.MaxLabel() > len(weights) {
		return nil, segerr.Errorf("DiscoverEdges", ErrVertexRange,
			"label %d but only %d weights", lm.MaxLabel(), len(weights))
	}
	cfg := resolve(opts)
	offsets := labelmap.NeighborOffsets(labelmap.Conn8)
	labels := lm.Labels()

	bands := splitRows(lm.Height(), cfg.workers)
	sets := make([]map[uint64]struct{}, len(bands))
	err := forEachBand(bands, func(i int, b band) error {
		seen := make(map[uint64]struct{})
		for y := b.y0; y < b.y1; y++ {
			for x := 0; x < lm.Width(); x++ {
				a := labels[lm.Index(x, y)]
				for _, d := range offsets {
					nx, ny := x+d[0], y+d[1]
					if !lm.InBounds(nx, ny) {
						continue
					}
					c := labels[lm.Index(nx, ny)]
					if a == c {
						continue
					}
					seen[pairKey(min(a, c)-1, max(a, c)-1)] = struct{}{}
				}
			}
		}
		sets[i] = seen
		return nil
	})
	if err != nil {
		return nil, err
	}

	merged := sets[0]
	for _, s := range sets[1:] {
		for k := range s {
			merged[k] = struct{}{}
		}
	}

	edges := make([]Edge, 0, len(merged))
	for k := range merged {
		u, v := unpackKey(k)
		edges = append(edges, Edge{U: u, V: v, Weight: math.Abs(weights[u] - weights[v])})
	}
	sortEdges(edges)
	return edges, nil
}

func sortEdges(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].U != edges[j].U {
			return edges[i].U < edges[j].U
		}
		return edges[i].V < edges[j].V
	})
}
