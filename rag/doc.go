// SPDX-License-Identifier: MIT

// Package rag builds region-adjacency graphs over superpixels.
//
// What:
//
//   - MeanIntensity aggregates one weight per superpixel: the mean normalized
//     luminance of its pixels, in [0,1].
//   - DiscoverEdges scans the label map under 8-connectivity and records each
//     adjacent superpixel pair once, weighted by |w[u]-w[v]|.
//   - Assemble combines vertex weights and edges into an immutable Graph.
//   - Build runs the three steps above.
//
// Vertex v of the Graph is superpixel label v+1. Edges are undirected, stored
// canonically with U < V and sorted by (U,V); there are no self-loops and no
// parallel edges.
//
// Concurrency:
//
//   - Both pixel scans can be split into horizontal row bands with
//     WithWorkers(n). Bands accumulate integer sums and edge sets locally and
//     are merged after all workers finish, so the result does not depend on
//     the number of bands or on scheduling.
//   - A built Graph is read-only and safe for concurrent readers.
//
// Complexity:
//
//   - MeanIntensity: O(W×H) time, O(N×bands) memory.
//   - DiscoverEdges: O(W×H×8) time, O(E×bands) memory.
//   - Assemble:      O(N + E log E).
//
// Errors:
//
//   - ErrShapeMismatch (kind segerr.ErrInput): image and label map sizes differ.
//   - ErrEmptySuperpixel, ErrEmptyGraph, ErrWeightCount, ErrVertexRange,
//     ErrSelfLoop, ErrDuplicateEdge (kind segerr.ErrData).
package rag
