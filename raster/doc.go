// SPDX-License-Identifier: MIT

// Package raster holds the in-memory pixel buffers exchanged between the
// segimage stages: a packed 8-bit RGB image and its luminance channel.
//
// What:
//
//   - RGB stores W×H pixels as interleaved R,G,B bytes in row-major order.
//   - Gray derives the single-channel luminance used for superpixel weights.
//   - FromImage / NRGBA bridge to the standard image.Image world so codecs
//     stay outside the core.
//
// Complexity:
//
//   - FromImage, NRGBA, Gray: O(W×H) time and memory.
//   - At, Set, Offset: O(1).
//
// Channel order is always R,G,B. Nothing in this package reorders channels
// for file-format conventions.
package raster
