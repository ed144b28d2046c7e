// SPDX-License-Identifier: MIT

// Package partition describes how the vertices of a region-adjacency graph
// are split into communities, and provides a default modularity-based
// Partitioner.
//
// What:
//
//   - Partition is a tagged union of two input forms: a list of vertex
//     groups, or a per-vertex membership vector. It is normalized once at
//     construction into canonical dense community IDs 0..K-1.
//   - Groups form: community ID = group index.
//   - Membership form: community ID = rank of the value among the sorted
//     unique membership values.
//   - FromGroups rejects overlapping groups and gaps up front, so a groups
//     partition always covers 0..T-1 for its vertex count T.
//   - Validate(n) checks that the partition covers vertices 0..n-1 exactly once.
//   - Louvain partitions a rag.Graph with gonum's community.Modularize.
//
// Determinism:
//
//   - Louvain draws from a PCG source seeded per call; equal seeds on equal
//     graphs produce equal partitions.
//   - Groups returned by Louvain are sorted internally and ordered by their
//     smallest vertex.
//
// Errors:
//
//   - ErrEmpty, ErrNegativeVertex, ErrNilGraph: kind segerr.ErrInput.
//   - ErrVertexRange, ErrOverlap, ErrNotTotal, ErrEmptyGroup: kind segerr.ErrData.
package partition
