// SPDX-License-Identifier: MIT

package segment

import (
	"context"
	"math"

	"github.com/katalvlaran/segimage/labelmap"
	"github.com/katalvlaran/segimage/raster"
)

type center struct {
	l, a, b, x, y float64
}

// Segment runs SLIC on img and returns a dense label map. ctx is checked
// between iterations.
func (s *SLIC) Segment(ctx context.Context, img *raster.RGB) (*labelmap.LabelMap, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lab := toLab(img)
	lab.smooth(s.sigma)

	w, h := img.W, img.H
	step := max(int(math.Sqrt(float64(w*h)/float64(s.segments))), 1)
	centers := seedCenters(lab, step)

	clusters := make([]int, w*h)
	dist := make([]float64, w*h)
	spatial := s.compactness / float64(step)
	spatial *= spatial

	for it := 0; it < s.iterations; it++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for i := range dist {
			dist[i] = math.MaxFloat64
			clusters[i] = -1
		}
		for ci, c := range centers {
			x0, x1 := max(int(c.x)-step, 0), min(int(c.x)+step+1, w)
			y0, y1 := max(int(c.y)-step, 0), min(int(c.y)+step+1, h)
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					i := y*w + x
					o := i * 3
					dl, da, db := lab.pix[o]-c.l, lab.pix[o+1]-c.a, lab.pix[o+2]-c.b
					dx, dy := float64(x)-c.x, float64(y)-c.y
					d := dl*dl + da*da + db*db + spatial*(dx*dx+dy*dy)
					if d < dist[i] {
						dist[i] = d
						clusters[i] = ci
					}
				}
			}
		}
		centers = recenter(lab, clusters, centers)
	}

	// A pixel outside every window keeps the nearest center by position.
	for i, c := range clusters {
		if c < 0 {
			clusters[i] = nearestCenter(centers, float64(i%w), float64(i/w))
		}
	}

	return enforceConnectivity(w, h, clusters, len(centers))
}

// seedCenters places one center per grid cell, offset by step/2, and moves
// it to the lowest-gradient pixel of its 3×3 neighbourhood. The offset is
// capped at the middle of each axis so a side shorter than step/2 still
// gets a center.
func seedCenters(lab *labImage, step int) []center {
	w, h := lab.w, lab.h
	var centers []center
	for cy := min(step/2, (h-1)/2); cy < h; cy += step {
		for cx := min(step/2, (w-1)/2); cx < w; cx += step {
			bx, by := cx, cy
			best := math.MaxFloat64
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					x, y := cx+dx, cy+dy
					if x < 0 || x >= w-1 || y < 0 || y >= h-1 {
						continue
					}
					if g := gradient(lab, x, y); g < best {
						best, bx, by = g, x, y
					}
				}
			}
			o := (by*w + bx) * 3
			centers = append(centers, center{lab.pix[o], lab.pix[o+1], lab.pix[o+2], float64(bx), float64(by)})
		}
	}
	return centers
}

// gradient is the squared Lab difference to the right and lower neighbours.
func gradient(lab *labImage, x, y int) float64 {
	o := (y*lab.w + x) * 3
	r := o + 3
	d := o + lab.w*3
	var g float64
	for k := 0; k < 3; k++ {
		gx := lab.pix[r+k] - lab.pix[o+k]
		gy := lab.pix[d+k] - lab.pix[o+k]
		g += gx*gx + gy*gy
	}
	return g
}

// recenter moves every center to the mean of its pixels; empty clusters
// keep their previous center.
func recenter(lab *labImage, clusters []int, centers []center) []center {
	type acc struct {
		l, a, b, x, y float64
		n             int
	}
	sums := make([]acc, len(centers))
	for i, ci := range clusters {
		if ci < 0 {
			continue
		}
		o := i * 3
		s := &sums[ci]
		s.l += lab.pix[o]
		s.a += lab.pix[o+1]
		s.b += lab.pix[o+2]
		s.x += float64(i % lab.w)
		s.y += float64(i / lab.w)
		s.n++
	}
	next := make([]center, len(centers))
	for ci, s := range sums {
		if s.n == 0 {
			next[ci] = centers[ci]
			continue
		}
		n := float64(s.n)
		next[ci] = center{s.l / n, s.a / n, s.b / n, s.x / n, s.y / n}
	}
	return next
}

func nearestCenter(centers []center, x, y float64) int {
	best, bi := math.MaxFloat64, 0
	for ci, c := range centers {
		if d := (c.x-x)*(c.x-x) + (c.y-y)*(c.y-y); d < best {
			best, bi = d, ci
		}
	}
	return bi
}

// enforceConnectivity splits clusters into 4-connected fragments, merges
// fragments below the minimum size into the label of an already visited
// 4-neighbour of their first pixel, and compacts labels to 1..N.
func enforceConnectivity(w, h int, clusters []int, k int) (*labelmap.LabelMap, error) {
	flat := make([]int, len(clusters))
	for i, c := range clusters {
		flat[i] = c + 1
	}
	lm, err := labelmap.FromFlat(w, h, flat)
	if err != nil {
		return nil, err
	}

	minSize := int(minSizeFactor * float64(w*h) / float64(max(k, 1)))
	out := make([]int, w*h) // 0 = unassigned
	next := 1
	offsets := labelmap.NeighborOffsets(labelmap.Conn4)
	for _, comp := range lm.Components(labelmap.Conn4) {
		label := next
		if len(comp) < minSize {
			x, y := lm.Coordinate(comp[0])
			for _, d := range offsets {
				nx, ny := x+d[0], y+d[1]
				if lm.InBounds(nx, ny) && out[lm.Index(nx, ny)] != 0 {
					label = out[lm.Index(nx, ny)]
					break
				}
			}
		}
		if label == next {
			next++
		}
		for _, i := range comp {
			out[i] = label
		}
	}

	res, err := labelmap.FromFlat(w, h, out)
	if err != nil {
		return nil, err
	}
	return res.Relabel(), nil
}
