// SPDX-License-Identifier: MIT

package visual

import "github.com/katalvlaran/segimage/segerr"

// Sentinel errors for visual operations.
var (
	// ErrNilInput indicates a nil partition, label map, label image or table.
	ErrNilInput = segerr.Wrap(segerr.ErrInput, "visual: nil input")
	// ErrShapeMismatch indicates a target size different from the label image.
	ErrShapeMismatch = segerr.Wrap(segerr.ErrInput, "visual: target shape differs from label image")
	// ErrUnknownCommunity indicates a community ID with no color in the table.
	ErrUnknownCommunity = segerr.Wrap(segerr.ErrData, "visual: community has no color")
)

// LabelImage holds one community ID per pixel, row-major.
type LabelImage struct {
	w, h int
	ids  []int
}
