package partition_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/segimage/partition"
	"github.com/katalvlaran/segimage/segerr"
)

func TestFromGroups(t *testing.T) {
	in := [][]int{{2, 0}, {1}, {3, 4}}
	p, err := partition.FromGroups(in)
	require.NoError(t, err)
	in[0][0] = 99 // the partition keeps its own copy

	assert.Equal(t, partition.KindGroups, p.Kind())
	assert.Equal(t, "groups", p.Kind().String())
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, []int{0, 1, 2}, p.CommunityIDs())
	assert.Equal(t, [][]int{{0, 2}, {1}, {3, 4}}, p.Groups())
	assert.Equal(t, []int{0, 1, 0, 2, 2}, p.Membership())
	assert.Equal(t, 2, p.Value(2))
	assert.NoError(t, p.Validate(5))
}

func TestFromMembership_Ranks(t *testing.T) {
	p, err := partition.FromMembership([]int{5, 2, 5, -1})
	require.NoError(t, err)

	assert.Equal(t, partition.KindMembership, p.Kind())
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, []int{2, 1, 2, 0}, p.Membership())
	assert.Equal(t, [][]int{{3}, {1}, {0, 2}}, p.Groups())
	assert.Equal(t, -1, p.Value(0))
	assert.Equal(t, 5, p.Value(2))
	assert.NoError(t, p.Validate(4))
}

// TestForms_Equivalent shows both forms of the same assignment normalize alike.
func TestForms_Equivalent(t *testing.T) {
	g, err := partition.FromGroups([][]int{{0}, {1}})
	require.NoError(t, err)
	m, err := partition.FromMembership([]int{0, 1})
	require.NoError(t, err)

	assert.Equal(t, g.CommunityIDs(), m.CommunityIDs())
	assert.Equal(t, g.Groups(), m.Groups())
	assert.Equal(t, g.Membership(), m.Membership())
}

// TestFromGroups_Rejects covers groups that cannot form a partition of any
// vertex set: overlaps and gaps, including a vertex far beyond the count.
func TestFromGroups_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		groups [][]int
		want   error
	}{
		{name: "Overlap", groups: [][]int{{0, 1}, {1}}, want: partition.ErrOverlap},
		{name: "OverlapWithinGroup", groups: [][]int{{0, 0}}, want: partition.ErrOverlap},
		{name: "Gap", groups: [][]int{{0}, {3}}, want: partition.ErrNotTotal},
		{name: "HugeVertex", groups: [][]int{{0}, {1 << 50}}, want: partition.ErrNotTotal},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := partition.FromGroups(tc.groups)
			assert.Nil(t, p)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, segerr.ErrData)
		})
	}
}

func TestMembership_GroupsForm(t *testing.T) {
	p, err := partition.FromGroups([][]int{{2}, {}, {0, 1}})
	require.NoError(t, err)
	assert.Equal(t, 3, p.Vertices())
	assert.Equal(t, []int{2, 2, 0}, p.Membership())
}

func TestConstructors_Errors(t *testing.T) {
	_, err := partition.FromGroups(nil)
	assert.ErrorIs(t, err, partition.ErrEmpty)
	assert.ErrorIs(t, err, segerr.ErrInput)

	_, err = partition.FromMembership([]int{})
	assert.ErrorIs(t, err, partition.ErrEmpty)

	_, err = partition.FromGroups([][]int{{0, -2}})
	assert.ErrorIs(t, err, partition.ErrNegativeVertex)
	assert.ErrorIs(t, err, segerr.ErrInput)
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		groups [][]int
		member []int
		n      int
		want   error
	}{
		{name: "GroupsShort", groups: [][]int{{0}, {1}}, n: 3, want: partition.ErrNotTotal},
		{name: "GroupsRange", groups: [][]int{{0, 1}, {2, 3}}, n: 3, want: partition.ErrVertexRange},
		{name: "GroupsEmpty", groups: [][]int{{0, 1, 2}, {}}, n: 3, want: partition.ErrEmptyGroup},
		{name: "MembershipShort", member: []int{0, 0}, n: 3, want: partition.ErrNotTotal},
		{name: "MembershipLong", member: []int{0, 0, 1, 1}, n: 3, want: partition.ErrVertexRange},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var (
				p   *partition.Partition
				err error
			)
			if tc.groups != nil {
				p, err = partition.FromGroups(tc.groups)
			} else {
				p, err = partition.FromMembership(tc.member)
			}
			require.NoError(t, err)

			err = p.Validate(tc.n)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, segerr.ErrData)
		})
	}
}

// TestPartitionProperties checks that the two forms convert into each other.
func TestPartitionProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("membership → groups → membership is stable", prop.ForAll(
		func(member []int) bool {
			if len(member) == 0 {
				return true
			}
			p, err := partition.FromMembership(member)
			if err != nil || p.Validate(len(member)) != nil {
				return false
			}
			q, err := partition.FromGroups(p.Groups())
			if err != nil || q.Validate(len(member)) != nil {
				return false
			}
			a, b := p.Membership(), q.Membership()
			if len(a) != len(b) {
				return false
			}
			for i := range a {
				if a[i] != b[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(-5, 20)),
	))

	properties.Property("community IDs are dense and ascending", prop.ForAll(
		func(member []int) bool {
			if len(member) == 0 {
				return true
			}
			p, err := partition.FromMembership(member)
			if err != nil {
				return false
			}
			for i, c := range p.CommunityIDs() {
				if c != i {
					return false
				}
			}
			for i := 1; i < p.Len(); i++ {
				if p.Value(i-1) >= p.Value(i) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(-5, 20)),
	))

	properties.TestingRun(t)
}
