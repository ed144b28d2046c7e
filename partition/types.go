// SPDX-License-Identifier: MIT

package partition

import "github.com/katalvlaran/segimage/segerr"

// Sentinel errors for partition operations.
var (
	// ErrEmpty indicates a partition with no groups or no membership entries.
	ErrEmpty = segerr.Wrap(segerr.ErrInput, "partition: empty partition")
	// ErrNegativeVertex indicates a group listing a negative vertex ID.
	ErrNegativeVertex = segerr.Wrap(segerr.ErrInput, "partition: negative vertex")
	// ErrNilGraph indicates a nil graph handed to a Partitioner.
	ErrNilGraph = segerr.Wrap(segerr.ErrInput, "partition: graph is nil")

	// ErrVertexRange indicates a vertex outside [0,n-1].
	ErrVertexRange = segerr.Wrap(segerr.ErrData, "partition: vertex out of range")
	// ErrOverlap indicates a vertex assigned to more than one community.
	ErrOverlap = segerr.Wrap(segerr.ErrData, "partition: vertex in more than one community")
	// ErrNotTotal indicates a vertex assigned to no community.
	ErrNotTotal = segerr.Wrap(segerr.ErrData, "partition: vertex not covered")
	// ErrEmptyGroup indicates a group with no vertices.
	ErrEmptyGroup = segerr.Wrap(segerr.ErrData, "partition: empty group")
)

// Kind tells which form a Partition was built from.
type Kind int

const (
	// KindGroups marks a partition given as a list of vertex groups.
	KindGroups Kind = iota
	// KindMembership marks a partition given as a per-vertex community value.
	KindMembership
)

func (k Kind) String() string {
	switch k {
	case KindGroups:
		return "groups"
	case KindMembership:
		return "membership"
	default:
		return "unknown"
	}
}

// Partition is an immutable community assignment over graph vertices.
//
// Exactly one of groups or membership is the source form; the other is
// derived on demand. Community IDs are dense, 0..K-1.
type Partition struct {
	kind Kind

	// groups form: groups[c] lists the vertices of community c as given;
	// total counts them, and they form exactly 0..total-1.
	groups [][]int
	total  int

	// membership form: ids[v] is the canonical community of vertex v and
	// values[c] the raw membership value that ranked c-th.
	ids    []int
	values []int
}
