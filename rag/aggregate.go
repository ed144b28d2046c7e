// SPDX-License-Identifier: MIT

package rag

import (
	"github.com/katalvlaran/segimage/labelmap"
	"github.com/katalvlaran/segimage/raster"
	"github.com/katalvlaran/segimage/segerr"
)

// accumulator holds per-superpixel luminance sums for one row band.
// Sums stay integral so merging bands is exact.
type accumulator struct {
	sums   []uint64
	counts []int
}

// MeanIntensity returns, for each superpixel label l in [1,N], the mean of
// the 8-bit luminance of its pixels divided by 255, at index l-1.
//
// Returns ErrShapeMismatch if img and lm differ in size, and
// ErrEmptySuperpixel for the first label in [1,N] owning no pixel, or when
// N exceeds W×H.
// Complexity: O(W×H) time, O(N) memory per band.
func MeanIntensity(img *raster.RGB, lm *labelmap.LabelMap, opts ...Option) ([]float64, error) {
	if img.W != lm.Width() || img.H != lm.Height() {
		return nil, segerr.Errorf("MeanIntensity", ErrShapeMismatch,
			"image %dx%d, label map %dx%d", img.W, img.H, lm.Width(), lm.Height())
	}
	n := lm.MaxLabel()
	if n > lm.Len() {
		// Some label in [1,N] cannot own a pixel; fail before sizing by N.
		return nil, segerr.Errorf("MeanIntensity", ErrEmptySuperpixel,
			"max label %d for %d pixels", n, lm.Len())
	}
	cfg := resolve(opts)
	gray := img.Gray()
	labels := lm.Labels()

	bands := splitRows(lm.Height(), cfg.workers)
	accs := make([]accumulator, len(bands))
	err := forEachBand(bands, func(i int, b band) error {
		acc := accumulator{sums: make([]uint64, n), counts: make([]int, n)}
		for p := b.y0 * lm.Width(); p < b.y1*lm.Width(); p++ {
			sp := labels[p] - 1
			acc.sums[sp] += uint64(gray[p])
			acc.counts[sp]++
		}
		accs[i] = acc
		return nil
	})
	if err != nil {
		return nil, err
	}

	total := accs[0]
	for _, acc := range accs[1:] {
		for sp := 0; sp < n; sp++ {
			total.sums[sp] += acc.sums[sp]
			total.counts[sp] += acc.counts[sp]
		}
	}

	weights := make([]float64, n)
	for sp := 0; sp < n; sp++ {
		if total.counts[sp] == 0 {
			return nil, segerr.Errorf("MeanIntensity", ErrEmptySuperpixel, "label %d", sp+1)
		}
		weights[sp] = float64(total.sums[sp]) / float64(total.counts[sp]) / 255.0
	}
	return weights, nil
}
