// SPDX-License-Identifier: MIT

package palette

import (
	"image/color"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/katalvlaran/segimage/partition"
	"github.com/katalvlaran/segimage/raster"
	"github.com/katalvlaran/segimage/segerr"
)

// Assign draws one color per community of p.
//
// Returns ErrNilPartition if p is nil.
// Complexity: O(K).
func Assign(p *partition.Partition, opts ...Option) (*Table, error) {
	if p == nil {
		return nil, ErrNilPartition
	}
	o := options{seed: DefaultSeed}
	for _, opt := range opts {
		opt(&o)
	}

	ids := p.CommunityIDs() // ascending
	rng := rand.New(rand.NewSource(o.seed))
	t := &Table{colors: make([]raster.Pixel, len(ids)), seed: o.seed}
	for _, id := range ids {
		t.colors[id] = unpack(rng.Intn(colorSpace))
	}
	return t, nil
}

func unpack(c int) raster.Pixel {
	return raster.Pixel{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c)}
}

// Len returns the number of colors.
func (t *Table) Len() int { return len(t.colors) }

// Seed returns the seed the Table was drawn with.
func (t *Table) Seed() int64 { return t.seed }

// Lookup returns the color of community id.
func (t *Table) Lookup(id int) (raster.Pixel, bool) {
	if id < 0 || id >= len(t.colors) {
		return raster.Pixel{}, false
	}
	return t.colors[id], true
}

// Colors returns a copy of the colors indexed by community ID.
func (t *Table) Colors() []raster.Pixel {
	return append([]raster.Pixel(nil), t.colors...)
}

// Hex returns the color of community id as "#rrggbb", or "" if id is unknown.
func (t *Table) Hex(id int) string {
	px, ok := t.Lookup(id)
	if !ok {
		return ""
	}
	c, _ := colorful.MakeColor(color.RGBA{R: px.R, G: px.G, B: px.B, A: 0xff})
	return c.Hex()
}

// VertexColors returns the color of every vertex 0..n-1 of p, indexed by
// vertex ID.
//
// p must cover vertices 0..n-1 exactly once; otherwise the partition.Validate
// error is returned. Returns ErrUnknownCommunity for a community missing
// from t.
// Complexity: O(N).
func (t *Table) VertexColors(p *partition.Partition, n int) ([]raster.Pixel, error) {
	if p == nil {
		return nil, ErrNilPartition
	}
	if err := p.Validate(n); err != nil {
		return nil, err
	}
	member := p.Membership()
	out := make([]raster.Pixel, len(member))
	for v, c := range member {
		px, ok := t.Lookup(c)
		if !ok {
			return nil, segerr.Errorf("VertexColors", ErrUnknownCommunity, "community %d of vertex %d", c, v)
		}
		out[v] = px
	}
	return out, nil
}
