// SPDX-License-Identifier: MIT

package rag

import "golang.org/x/sync/errgroup"

// band is a half-open row range [y0,y1).
type band struct {
	y0, y1 int
}

// splitRows divides h rows into at most workers contiguous bands.
func splitRows(h, workers int) []band {
	if workers > h {
		workers = h
	}
	if workers < 1 {
		workers = 1
	}
	step := (h + workers - 1) / workers
	bands := make([]band, 0, workers)
	for y := 0; y < h; y += step {
		bands = append(bands, band{y0: y, y1: min(y+step, h)})
	}
	return bands
}

// forEachBand runs fn once per band. A single band runs inline; several
// bands run on an errgroup and the first error wins.
func forEachBand(bands []band, fn func(i int, b band) error) error {
	if len(bands) == 1 {
		return fn(0, bands[0])
	}
	var g errgroup.Group
	for i, b := range bands {
		g.Go(func() error { return fn(i, b) })
	}
	return g.Wait()
}
