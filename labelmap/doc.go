// SPDX-License-Identifier: MIT

// Package labelmap treats a dense 2D grid of superpixel labels as a graph
// substrate: every cell names the superpixel that owns the pixel.
//
// What:
//
//   - LabelMap wraps a rectangular grid of positive labels, stored row-major.
//   - Neighbour offsets for Conn4 or Conn8 are precomputed once.
//   - Components finds connected regions of equal label (BFS).
//   - Relabel compacts labels into the dense range [1,N].
//
// Why:
//
//   - Region-adjacency graphs need fast, branch-free neighbour scans.
//   - Segmenters need connectivity enforcement and gap-free labels.
//
// Complexity:
//
//   - New / FromFlat: O(W×H) time and memory.
//   - Components:     O(W×H×d), Memory O(W×H) (d = 4 or 8).
//   - Relabel:        O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid:        grid has no rows or no columns.
//   - ErrNonRectangular:   rows have differing lengths.
//   - ErrNonPositiveLabel: a cell holds a label < 1.
//   - ErrBufferSize:       flat buffer length differs from W×H.
//
// All errors are of kind segerr.ErrInput. Label gaps inside [1,N] are not
// rejected here; consumers that need every label populated detect them.
package labelmap
