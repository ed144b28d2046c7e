package rag_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/segimage/labelmap"
	"github.com/katalvlaran/segimage/rag"
	"github.com/katalvlaran/segimage/raster"
)

// blockLabels tiles a w×h map with square superpixels of side s.
func blockLabels(b *testing.B, w, h, s int) *labelmap.LabelMap {
	b.Helper()
	cols := (w + s - 1) / s
	flat := make([]int, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			flat[y*w+x] = (y/s)*cols + x/s + 1
		}
	}
	lm, err := labelmap.FromFlat(w, h, flat)
	if err != nil {
		b.Fatal(err)
	}
	return lm
}

func benchmarkBuild(b *testing.B, workers int) {
	const w, h = 640, 480
	lm := blockLabels(b, w, h, 32)
	img, err := raster.NewRGB(w, h)
	if err != nil {
		b.Fatal(err)
	}
	rand.New(rand.NewSource(1)).Read(img.Pix)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rag.Build(img, lm, rag.WithWorkers(workers)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBuild_VGA_1 measures a single-band 640×480 build.
func BenchmarkBuild_VGA_1(b *testing.B) { benchmarkBuild(b, 1) }

// BenchmarkBuild_VGA_4 measures a four-band 640×480 build.
func BenchmarkBuild_VGA_4(b *testing.B) { benchmarkBuild(b, 4) }
