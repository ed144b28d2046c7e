// SPDX-License-Identifier: MIT

// Package drawing renders a region-adjacency graph as Graphviz DOT, with
// every vertex filled in its community color.
//
// Vertices are unlabeled filled circles; edges are thin and gray; the graph
// asks for a force-directed layout (fdp by default). Marshaling goes through
// gonum's graph/encoding/dot.
package drawing
