// SPDX-License-Identifier: MIT

// Package codec reads and writes the files segimage works with: source and
// output images (PNG, JPEG, TIFF, BMP) and externally produced label maps
// (CSV or 16-bit gray PNG).
//
// Save writes to a temporary file next to the target and renames it into
// place, so a failed run never leaves a truncated output behind.
package codec
