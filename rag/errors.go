// SPDX-License-Identifier: MIT

package rag

import "github.com/katalvlaran/segimage/segerr"

// Sentinel errors for rag operations.
var (
	// ErrShapeMismatch indicates the source image and label map differ in size.
	ErrShapeMismatch = segerr.Wrap(segerr.ErrInput, "rag: image and label map shapes differ")
	// ErrEmptySuperpixel indicates a label in [1,N] that owns no pixel.
	ErrEmptySuperpixel = segerr.Wrap(segerr.ErrData, "rag: superpixel has no pixels")
	// ErrEmptyGraph indicates a vertex count of zero.
	ErrEmptyGraph = segerr.Wrap(segerr.ErrData, "rag: graph must have at least one vertex")
	// ErrWeightCount indicates a weight slice that does not have one entry per vertex.
	ErrWeightCount = segerr.Wrap(segerr.ErrData, "rag: weight count does not match vertex count")
	// ErrVertexRange indicates an edge or label referencing a vertex outside [0,N-1].
	ErrVertexRange = segerr.Wrap(segerr.ErrData, "rag: vertex out of range")
	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = segerr.Wrap(segerr.ErrData, "rag: self-loop")
	// ErrDuplicateEdge indicates the same unordered pair listed twice.
	ErrDuplicateEdge = segerr.Wrap(segerr.ErrData, "rag: duplicate edge")
)
