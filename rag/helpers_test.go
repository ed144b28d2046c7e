package rag_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/segimage/labelmap"
	"github.com/katalvlaran/segimage/raster"
)

// grayImage builds an RGB image whose pixel (x,y) is the neutral gray rows[y][x].
func grayImage(t testing.TB, rows [][]uint8) *raster.RGB {
	t.Helper()
	im, err := raster.NewRGB(len(rows[0]), len(rows))
	require.NoError(t, err)
	for y, row := range rows {
		for x, v := range row {
			im.Set(x, y, raster.Pixel{R: v, G: v, B: v})
		}
	}
	return im
}

// randomDense returns a w×h label map with at most k labels, relabeled so
// every label in [1,N] is present.
func randomDense(t testing.TB, rng *rand.Rand, w, h, k int) *labelmap.LabelMap {
	t.Helper()
	flat := make([]int, w*h)
	for i := range flat {
		flat[i] = rng.Intn(k) + 1
	}
	lm, err := labelmap.FromFlat(w, h, flat)
	require.NoError(t, err)
	return lm.Relabel()
}

// randomImage fills a w×h image with random bytes.
func randomImage(t testing.TB, rng *rand.Rand, w, h int) *raster.RGB {
	t.Helper()
	im, err := raster.NewRGB(w, h)
	require.NoError(t, err)
	rng.Read(im.Pix)
	return im
}

// bruteForcePairs lists every unordered superpixel pair that owns two
// 8-adjacent pixels, as vertex IDs with u < v.
func bruteForcePairs(lm *labelmap.LabelMap) map[[2]int]bool {
	pairs := make(map[[2]int]bool)
	for y1 := 0; y1 < lm.Height(); y1++ {
		for x1 := 0; x1 < lm.Width(); x1++ {
			for y2 := 0; y2 < lm.Height(); y2++ {
				for x2 := 0; x2 < lm.Width(); x2++ {
					dx, dy := x2-x1, y2-y1
					if dx < -1 || dx > 1 || dy < -1 || dy > 1 {
						continue
					}
					a, b := lm.At(x1, y1)-1, lm.At(x2, y2)-1
					if a == b {
						continue
					}
					pairs[[2]int{min(a, b), max(a, b)}] = true
				}
			}
		}
	}
	return pairs
}
