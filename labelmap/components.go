// SPDX-License-Identifier: MIT

package labelmap

// Components finds all contiguous regions of equal label under conn.
// Returns a slice of components in row-major order of their first cell;
// each component is a slice of row-major cell indices in BFS order.
//
// A superpixel split into several disconnected pieces yields one component
// per piece.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (lm *LabelMap) Components(conn Connectivity) [][]int {
	total := lm.Len()
	seen := make([]bool, total)
	var comps [][]int
	offsets := NeighborOffsets(conn)

	for i0 := 0; i0 < total; i0++ {
		if seen[i0] {
			continue
		}
		label := lm.labels[i0]
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true

		for qi := 0; qi < len(queue); qi++ {
			ux, uy := lm.Coordinate(queue[qi])
			for _, d := range offsets {
				vx, vy := ux+d[0], uy+d[1]
				if !lm.InBounds(vx, vy) {
					continue
				}
				vi := lm.Index(vx, vy)
				if !seen[vi] && lm.labels[vi] == label {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}
