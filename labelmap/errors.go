// SPDX-License-Identifier: MIT

package labelmap

import "github.com/katalvlaran/segimage/segerr"

// Sentinel errors for labelmap operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = segerr.Wrap(segerr.ErrInput, "labelmap: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = segerr.Wrap(segerr.ErrInput, "labelmap: all rows must have the same length")
	// ErrNonPositiveLabel indicates a label below 1.
	ErrNonPositiveLabel = segerr.Wrap(segerr.ErrInput, "labelmap: labels must be positive")
	// ErrBufferSize indicates a flat label buffer whose length is not W×H.
	ErrBufferSize = segerr.Wrap(segerr.ErrInput, "labelmap: buffer length does not match dimensions")

	// ErrSparseLabels indicates a max label beyond the cell count, so some
	// label in [1,max] owns no cell.
	ErrSparseLabels = segerr.Wrap(segerr.ErrData, "labelmap: more labels than cells")
)
