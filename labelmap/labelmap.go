// SPDX-License-Identifier: MIT

package labelmap

import "github.com/katalvlaran/segimage/segerr"

// New constructs a LabelMap from a non-empty, rectangular 2D slice indexed
// values[y][x]. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrNonPositiveLabel.
// Complexity: O(W×H) time and memory.
func New(values [][]int) (*LabelMap, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	flat := make([]int, 0, w*h)
	for y := 0; y < h; y++ {
		flat = append(flat, values[y]...)
	}

	return fromOwned(w, h, flat)
}

// FromFlat constructs a LabelMap from a row-major buffer of length w*h.
// The buffer is copied.
// Complexity: O(W×H).
func FromFlat(w, h int, labels []int) (*LabelMap, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyGrid
	}
	if len(labels) != w*h {
		return nil, ErrBufferSize
	}
	flat := make([]int, len(labels))
	copy(flat, labels)

	return fromOwned(w, h, flat)
}

// fromOwned validates labels and takes ownership of the slice.
func fromOwned(w, h int, flat []int) (*LabelMap, error) {
	maxLabel := 0
	for i, v := range flat {
		if v < 1 {
			return nil, segerr.Errorf("labelmap", ErrNonPositiveLabel,
				"label %d at (%d,%d)", v, i%w, i/w)
		}
		if v > maxLabel {
			maxLabel = v
		}
	}

	return &LabelMap{w: w, h: h, labels: flat, maxLabel: maxLabel}, nil
}

// MaxLabel returns the largest label, i.e. the superpixel count N when
// labels are dense. Complexity: O(1).
func (lm *LabelMap) MaxLabel() int {
	return lm.maxLabel
}

// Width returns the number of columns W.
func (lm *LabelMap) Width() int { return lm.w }

// Height returns the number of rows H.
func (lm *LabelMap) Height() int { return lm.h }

// Len returns W×H.
func (lm *LabelMap) Len() int {
	return len(lm.labels)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (lm *LabelMap) InBounds(x, y int) bool {
	return x >= 0 && x < lm.w && y >= 0 && y < lm.h
}

// At returns the label at (x,y). The caller guarantees InBounds(x,y).
func (lm *LabelMap) At(x, y int) int {
	return lm.labels[lm.Index(x, y)]
}

// Label returns the label at row-major index i.
func (lm *LabelMap) Label(i int) int {
	return lm.labels[i]
}

// Labels returns the row-major label buffer. Callers must not mutate it.
func (lm *LabelMap) Labels() []int {
	return lm.labels
}

// Rows returns a fresh [y][x] copy of the grid.
func (lm *LabelMap) Rows() [][]int {
	out := make([][]int, lm.h)
	for y := 0; y < lm.h; y++ {
		out[y] = make([]int, lm.w)
		copy(out[y], lm.labels[y*lm.w:(y+1)*lm.w])
	}
	return out
}

// NeighborOffsets returns the precomputed (dx,dy) offsets for conn.
// The returned slice is shared; do not modify it.
// Complexity: O(1).
func NeighborOffsets(conn Connectivity) [][2]int {
	if conn == Conn8 {
		return offsets8
	}
	return offsets4
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (lm *LabelMap) Index(x, y int) int {
	return y*lm.w + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (lm *LabelMap) Coordinate(idx int) (x, y int) {
	return idx % lm.w, idx / lm.w
}

// Counts returns the number of pixels per label; counts[l-1] belongs to label l.
//
// Returns ErrSparseLabels when MaxLabel exceeds W×H.
// Complexity: O(W×H).
func (lm *LabelMap) Counts() ([]int, error) {
	if lm.maxLabel > len(lm.labels) {
		return nil, segerr.Errorf("Counts", ErrSparseLabels,
			"max label %d for %d cells", lm.maxLabel, len(lm.labels))
	}
	counts := make([]int, lm.maxLabel)
	for _, l := range lm.labels {
		counts[l-1]++
	}
	return counts, nil
}

// Relabel returns a LabelMap whose labels are renumbered 1..K in row-major
// order of first appearance, closing any gaps. The receiver is unchanged.
// Complexity: O(W×H).
func (lm *LabelMap) Relabel() *LabelMap {
	next := 1
	remap := make(map[int]int, lm.maxLabel)
	flat := make([]int, len(lm.labels))
	for i, l := range lm.labels {
		nl, ok := remap[l]
		if !ok {
			nl = next
			remap[l] = nl
			next++
		}
		flat[i] = nl
	}

	return &LabelMap{w: lm.w, h: lm.h, labels: flat, maxLabel: next - 1}
}
