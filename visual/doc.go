// SPDX-License-Identifier: MIT

// Package visual turns a partition of a region-adjacency graph back into
// pixels.
//
// MapLabels paints every pixel with the community ID of the superpixel that
// owns it, producing a LabelImage. Render then looks each ID up in a
// palette.Table and writes RGB bytes, keeping R, G, B order.
//
// Errors:
//
//   - ErrNilInput, ErrShapeMismatch: kind segerr.ErrInput.
//   - ErrUnknownCommunity and any partition.Validate failure: kind segerr.ErrData.
package visual
