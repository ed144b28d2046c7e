package labelmap_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/segimage/labelmap"
)

func sortedComponents(comps [][]int) [][]int {
	out := make([][]int, len(comps))
	for i, c := range comps {
		cc := append([]int(nil), c...)
		sort.Ints(cc)
		out[i] = cc
	}
	return out
}

// TestComponents_SplitLabel verifies that one label split in two pieces
// yields two components under Conn4 but one under Conn8.
func TestComponents_SplitLabel(t *testing.T) {
	lm, err := labelmap.New([][]int{
		{1, 2},
		{2, 1},
	})
	require.NoError(t, err)

	c4 := sortedComponents(lm.Components(labelmap.Conn4))
	assert.Equal(t, [][]int{{0}, {1}, {2}, {3}}, c4)

	c8 := sortedComponents(lm.Components(labelmap.Conn8))
	assert.Equal(t, [][]int{{0, 3}, {1, 2}}, c8)
}

// TestComponents_CoverAllCells checks that components partition the grid.
func TestComponents_CoverAllCells(t *testing.T) {
	lm, err := labelmap.New([][]int{
		{1, 1, 2, 2},
		{3, 1, 2, 4},
		{3, 3, 4, 4},
	})
	require.NoError(t, err)

	comps := lm.Components(labelmap.Conn4)
	require.Len(t, comps, 4)
	seen := make([]bool, lm.Len())
	for _, c := range comps {
		label := lm.Label(c[0])
		for _, idx := range c {
			assert.False(t, seen[idx], "cell %d in two components", idx)
			seen[idx] = true
			assert.Equal(t, label, lm.Label(idx))
		}
	}
	for i, s := range seen {
		assert.True(t, s, "cell %d not covered", i)
	}
}
