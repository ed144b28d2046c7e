// SPDX-License-Identifier: MIT

package partition

import (
	"sort"

	"github.com/katalvlaran/segimage/segerr"
)

// FromGroups builds a Partition in which groups[c] are the vertices of
// community c. The input is copied.
//
// The listed vertices must be disjoint and, taken together, form 0..T-1
// where T is their total count; a vertex at or beyond T leaves a gap that no
// graph size can close. Whether T matches a graph is checked by Validate.
//
// Returns ErrEmpty if groups is empty, ErrNegativeVertex for a vertex < 0,
// ErrOverlap for a vertex listed twice and ErrNotTotal for a gap.
// Complexity: O(T).
func FromGroups(groups [][]int) (*Partition, error) {
	if len(groups) == 0 {
		return nil, ErrEmpty
	}
	total := 0
	cp := make([][]int, len(groups))
	for c, grp := range groups {
		for _, v := range grp {
			if v < 0 {
				return nil, segerr.Errorf("FromGroups", ErrNegativeVertex, "vertex %d in group %d", v, c)
			}
		}
		cp[c] = append([]int(nil), grp...)
		total += len(grp)
	}

	seen := make([]bool, total)
	gap := false
	for c, grp := range cp {
		for _, v := range grp {
			if v >= total {
				gap = true
				continue
			}
			if seen[v] {
				return nil, segerr.Errorf("FromGroups", ErrOverlap, "vertex %d again in group %d", v, c)
			}
			seen[v] = true
		}
	}
	if gap {
		for v, ok := range seen {
			if !ok {
				return nil, segerr.Errorf("FromGroups", ErrNotTotal, "vertex %d", v)
			}
		}
	}
	return &Partition{kind: KindGroups, groups: cp, total: total}, nil
}

// FromMembership builds a Partition in which vertex v belongs to the
// community labelled membership[v]. Labels may be any ints; they are ranked
// so that the smallest label becomes community 0.
//
// Returns ErrEmpty if membership is empty.
// Complexity: O(N log N).
func FromMembership(membership []int) (*Partition, error) {
	if len(membership) == 0 {
		return nil, ErrEmpty
	}
	values := append([]int(nil), membership...)
	sort.Ints(values)
	values = dedupSorted(values)

	rank := make(map[int]int, len(values))
	for c, val := range values {
		rank[val] = c
	}
	ids := make([]int, len(membership))
	for v, val := range membership {
		ids[v] = rank[val]
	}
	return &Partition{kind: KindMembership, ids: ids, values: values}, nil
}

// Kind reports the form the Partition was built from.
func (p *Partition) Kind() Kind { return p.kind }

// Len returns the number of communities K.
func (p *Partition) Len() int {
	if p.kind == KindGroups {
		return len(p.groups)
	}
	return len(p.values)
}

// CommunityIDs returns the canonical community IDs in ascending order, 0..K-1.
func (p *Partition) CommunityIDs() []int {
	ids := make([]int, p.Len())
	for i := range ids {
		ids[i] = i
	}
	return ids
}

// Value returns the caller-facing label of community c: the group index for
// the groups form and the original membership value for the membership form.
func (p *Partition) Value(c int) int {
	if p.kind == KindGroups {
		return c
	}
	return p.values[c]
}

// Groups returns one ascending vertex list per community. Always a fresh copy.
// Complexity: O(N log N).
func (p *Partition) Groups() [][]int {
	out := make([][]int, p.Len())
	if p.kind == KindGroups {
		for c, grp := range p.groups {
			out[c] = append([]int(nil), grp...)
			sort.Ints(out[c])
		}
		return out
	}
	for v, c := range p.ids {
		out[c] = append(out[c], v)
	}
	return out
}

// Membership returns the canonical community of every vertex, one entry per
// vertex 0..N-1.
// Complexity: O(N).
func (p *Partition) Membership() []int {
	if p.kind == KindMembership {
		return append([]int(nil), p.ids...)
	}
	out := make([]int, p.total)
	for c, grp := range p.groups {
		for _, v := range grp {
			out[v] = c
		}
	}
	return out
}

// Vertices returns the number of vertices N the partition assigns.
func (p *Partition) Vertices() int {
	if p.kind == KindGroups {
		return p.total
	}
	return len(p.ids)
}

// Validate checks that p assigns every vertex 0..n-1 to exactly one
// community and that no group is empty. Disjointness and the absence of
// gaps are settled at construction, so only the vertex count and empty
// groups remain.
//
// Returns ErrEmptyGroup, ErrNotTotal or ErrVertexRange.
// Complexity: O(K).
func (p *Partition) Validate(n int) error {
	for c, grp := range p.groups {
		if len(grp) == 0 {
			return segerr.Errorf("Validate", ErrEmptyGroup, "group %d", c)
		}
	}
	switch got := p.Vertices(); {
	case got < n:
		return segerr.Errorf("Validate", ErrNotTotal, "vertex %d of %d", got, n)
	case got > n:
		return segerr.Errorf("Validate", ErrVertexRange, "partition covers %d vertices, graph has %d", got, n)
	}
	return nil
}

func dedupSorted(xs []int) []int {
	if len(xs) == 0 {
		return xs
	}
	out := xs[:1]
	for _, x := range xs[1:] {
		if x != out[len(out)-1] {
			out = append(out, x)
		}
	}
	return out
}
