// SPDX-License-Identifier: MIT

package labelmap

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// LabelMap is an immutable W×H grid of superpixel labels.
// labels[y*w+x] holds the label of pixel (x,y); maxLabel caches max(labels).
type LabelMap struct {
	w, h     int
	labels   []int
	maxLabel int
}
