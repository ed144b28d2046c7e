// SPDX-License-Identifier: MIT

package raster

import (
	"image"
	"image/color"
)

// Luminance weights in 14-bit fixed point (0.299, 0.587, 0.114),
// rounded half up, matching the usual RGB→GRAY conversion for 8-bit data.
const (
	lumaShift = 14
	lumaR     = 4899
	lumaG     = 9617
	lumaB     = 1868
	lumaRound = 1 << (lumaShift - 1)
)

// NewRGB allocates a zeroed w×h image.
// Returns ErrBadDimensions if w or h is not positive.
func NewRGB(w, h int) (*RGB, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrBadDimensions
	}
	return &RGB{W: w, H: h, Pix: make([]uint8, w*h*Channels)}, nil
}

// FromPix wraps an existing interleaved buffer without copying.
// Returns ErrBadDimensions or ErrBufferSize on inconsistent input.
func FromPix(w, h int, pix []uint8) (*RGB, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrBadDimensions
	}
	if len(pix) != w*h*Channels {
		return nil, ErrBufferSize
	}
	return &RGB{W: w, H: h, Pix: pix}, nil
}

// FromImage converts any image.Image into a packed RGB buffer, dropping alpha.
// The result is anchored at (0,0) regardless of img.Bounds().Min.
func FromImage(img image.Image) (*RGB, error) {
	b := img.Bounds()
	out, err := NewRGB(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	for y := 0; y < out.H; y++ {
		for x := 0; x < out.W; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			off := out.Offset(x, y)
			out.Pix[off] = uint8(r >> 8)
			out.Pix[off+1] = uint8(g >> 8)
			out.Pix[off+2] = uint8(bl >> 8)
		}
	}
	return out, nil
}

// Offset returns the index of pixel (x,y)'s red byte in Pix.
func (im *RGB) Offset(x, y int) int {
	return (y*im.W + x) * Channels
}

// InBounds reports whether (x,y) lies inside the image.
func (im *RGB) InBounds(x, y int) bool {
	return x >= 0 && x < im.W && y >= 0 && y < im.H
}

// At returns the pixel at (x,y). The caller guarantees InBounds(x,y).
func (im *RGB) At(x, y int) Pixel {
	off := im.Offset(x, y)
	return Pixel{R: im.Pix[off], G: im.Pix[off+1], B: im.Pix[off+2]}
}

// Set writes p at (x,y). The caller guarantees InBounds(x,y).
func (im *RGB) Set(x, y int, p Pixel) {
	off := im.Offset(x, y)
	im.Pix[off] = p.R
	im.Pix[off+1] = p.G
	im.Pix[off+2] = p.B
}

// Gray returns the per-pixel 8-bit luminance in row-major order.
// Y = round(0.299R + 0.587G + 0.114B).
func (im *RGB) Gray() []uint8 {
	n := im.W * im.H
	out := make([]uint8, n)
	for i := 0; i < n; i++ {
		off := i * Channels
		out[i] = Luma(im.Pix[off], im.Pix[off+1], im.Pix[off+2])
	}
	return out
}

// Luma converts one RGB triple to its 8-bit luminance.
func Luma(r, g, b uint8) uint8 {
	return uint8((uint32(r)*lumaR + uint32(g)*lumaG + uint32(b)*lumaB + lumaRound) >> lumaShift)
}

// NRGBA converts the buffer into an opaque *image.NRGBA for encoding.
func (im *RGB) NRGBA() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, im.W, im.H))
	for y := 0; y < im.H; y++ {
		for x := 0; x < im.W; x++ {
			p := im.At(x, y)
			out.SetNRGBA(x, y, color.NRGBA{R: p.R, G: p.G, B: p.B, A: 255})
		}
	}
	return out
}
