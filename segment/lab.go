// SPDX-License-Identifier: MIT

package segment

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/katalvlaran/segimage/raster"
)

// labImage holds three interleaved float planes (L, a, b) row-major, with L
// in [0,100].
type labImage struct {
	w, h int
	pix  []float64
}

// labScale maps go-colorful's unit L onto the conventional 0..100 range, so
// compactness keeps its usual meaning.
const labScale = 100

func toLab(img *raster.RGB) *labImage {
	lab := &labImage{w: img.W, h: img.H, pix: make([]float64, len(img.Pix))}
	for o := 0; o < len(img.Pix); o += raster.Channels {
		c := colorful.Color{
			R: float64(img.Pix[o]) / 255.0,
			G: float64(img.Pix[o+1]) / 255.0,
			B: float64(img.Pix[o+2]) / 255.0,
		}
		l, a, b := c.Lab()
		lab.pix[o], lab.pix[o+1], lab.pix[o+2] = l*labScale, a*labScale, b*labScale
	}
	return lab
}

// gaussianKernel returns a normalized 1D kernel truncated at 4σ.
func gaussianKernel(sigma float64) []float64 {
	radius := int(math.Ceil(4 * sigma))
	k := make([]float64, 2*radius+1)
	var sum float64
	for i := range k {
		d := float64(i - radius)
		k[i] = math.Exp(-d * d / (2 * sigma * sigma))
		sum += k[i]
	}
	for i := range k {
		k[i] /= sum
	}
	return k
}

// reflect mirrors i into [0,n) as d c b | a b c d | c b a.
func reflect(i, n int) int {
	if n == 1 {
		return 0
	}
	period := 2 * (n - 1)
	i %= period
	if i < 0 {
		i += period
	}
	if i >= n {
		i = period - i
	}
	return i
}

// smooth applies a separable Gaussian to every plane in place.
func (l *labImage) smooth(sigma float64) {
	if sigma == 0 {
		return
	}
	k := gaussianKernel(sigma)
	r := len(k) / 2
	tmp := make([]float64, len(l.pix))

	for y := 0; y < l.h; y++ {
		for x := 0; x < l.w; x++ {
			var s [3]float64
			for j, kv := range k {
				o := (y*l.w + reflect(x+j-r, l.w)) * 3
				s[0] += kv * l.pix[o]
				s[1] += kv * l.pix[o+1]
				s[2] += kv * l.pix[o+2]
			}
			o := (y*l.w + x) * 3
			tmp[o], tmp[o+1], tmp[o+2] = s[0], s[1], s[2]
		}
	}
	for y := 0; y < l.h; y++ {
		for x := 0; x < l.w; x++ {
			var s [3]float64
			for j, kv := range k {
				o := (reflect(y+j-r, l.h)*l.w + x) * 3
				s[0] += kv * tmp[o]
				s[1] += kv * tmp[o+1]
				s[2] += kv * tmp[o+2]
			}
			o := (y*l.w + x) * 3
			l.pix[o], l.pix[o+1], l.pix[o+2] = s[0], s[1], s[2]
		}
	}
}
