// SPDX-License-Identifier: MIT

package raster

import (
	"github.com/katalvlaran/segimage/segerr"
)

// Sentinel errors for raster operations.
var (
	// ErrBadDimensions indicates a non-positive width or height.
	ErrBadDimensions = segerr.Wrap(segerr.ErrInput, "raster: width and height must be positive")
	// ErrBufferSize indicates a pixel buffer whose length is not W*H*3.
	ErrBufferSize = segerr.Wrap(segerr.ErrInput, "raster: pixel buffer length does not match dimensions")
)

// Channels is the number of interleaved bytes per pixel.
const Channels = 3

// Pixel is one RGB triple.
type Pixel struct {
	R, G, B uint8
}

// RGB is a packed 8-bit RGB image.
// Pix holds W*H*3 bytes; pixel (x,y) starts at Pix[(y*W+x)*3].
type RGB struct {
	W, H int
	Pix  []uint8
}
