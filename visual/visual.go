// SPDX-License-Identifier: MIT

package visual

import (
	"sort"

	"github.com/katalvlaran/segimage/labelmap"
	"github.com/katalvlaran/segimage/palette"
	"github.com/katalvlaran/segimage/partition"
	"github.com/katalvlaran/segimage/raster"
	"github.com/katalvlaran/segimage/segerr"
)

// MapLabels assigns every pixel of lm the community of its superpixel
// (vertex label-1) under p.
//
// p must cover vertices 0..lm.MaxLabel()-1 exactly once; otherwise the
// partition.Validate error is returned.
// Complexity: O(W×H + N).
func MapLabels(p *partition.Partition, lm *labelmap.LabelMap) (*LabelImage, error) {
	if p == nil || lm == nil {
		return nil, ErrNilInput
	}
	if err := p.Validate(lm.MaxLabel()); err != nil {
		return nil, err
	}

	member := p.Membership()
	li := &LabelImage{w: lm.Width(), h: lm.Height(), ids: make([]int, lm.Len())}
	for i := range li.ids {
		li.ids[i] = member[lm.Label(i)-1]
	}
	return li, nil
}

// Render colors li with t into a new w×h image.
//
// Returns ErrShapeMismatch if (w,h) differs from li, and
// ErrUnknownCommunity for an ID missing from t.
// Complexity: O(W×H).
func Render(li *LabelImage, t *palette.Table, w, h int) (*raster.RGB, error) {
	if li == nil || t == nil {
		return nil, ErrNilInput
	}
	if w != li.w || h != li.h {
		return nil, segerr.Errorf("Render", ErrShapeMismatch, "target %dx%d, label image %dx%d", w, h, li.w, li.h)
	}

	out, err := raster.NewRGB(w, h)
	if err != nil {
		return nil, err
	}
	for i, id := range li.ids {
		px, ok := t.Lookup(id)
		if !ok {
			return nil, segerr.Errorf("Render", ErrUnknownCommunity, "community %d", id)
		}
		o := i * raster.Channels
		out.Pix[o], out.Pix[o+1], out.Pix[o+2] = px.R, px.G, px.B
	}
	return out, nil
}

// Width returns the number of columns.
func (li *LabelImage) Width() int { return li.w }

// Height returns the number of rows.
func (li *LabelImage) Height() int { return li.h }

// At returns the community ID at (x,y).
func (li *LabelImage) At(x, y int) int { return li.ids[y*li.w+x] }

// IDs returns a copy of the row-major community IDs.
func (li *LabelImage) IDs() []int { return append([]int(nil), li.ids...) }

// Distinct returns the community IDs present, ascending.
func (li *LabelImage) Distinct() []int {
	seen := make(map[int]struct{})
	for _, id := range li.ids {
		seen[id] = struct{}{}
	}
	out := make([]int, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// LabelMap converts li into a label map with label = community ID + 1, so
// merged regions can be fed back into graph construction.
func (li *LabelImage) LabelMap() (*labelmap.LabelMap, error) {
	flat := make([]int, len(li.ids))
	for i, id := range li.ids {
		flat[i] = id + 1
	}
	return labelmap.FromFlat(li.w, li.h, flat)
}
