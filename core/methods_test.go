package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/c4finder/core"
)

// TestNeighbors_AscendingCopy checks order and that callers cannot mutate the graph.
func TestNeighbors_AscendingCopy(t *testing.T) {
	g, err := core.NewGraph(
		[]string{"hub", "p", "q", "r"},
		[]core.Edge{{U: "r", V: "hub"}, {U: "p", V: "hub"}, {U: "hub", V: "q"}},
	)
	require.NoError(t, err)

	nb, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, nb)
	assert.Equal(t, 3, g.Degree(0))
	assert.Equal(t, 1, g.Degree(2))

	nb[0] = 99
	again, _ := g.Neighbors(0)
	assert.Equal(t, []int{1, 2, 3}, again)
}

// TestQueries_OutOfRange checks index validation on every query.
func TestQueries_OutOfRange(t *testing.T) {
	g := square(t)

	_, err := g.Neighbors(4)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)
	_, err = g.Neighbors(-1)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)

	assert.Equal(t, "", g.Name(-1))
	assert.Equal(t, 0, g.Degree(17))
	assert.False(t, g.Adjacent(0, 4))
	assert.False(t, g.Adjacent(-1, 0))
}

// TestAdjacentByName covers lookups by name and unknown names.
func TestAdjacentByName(t *testing.T) {
	g := square(t)

	ok, err := g.AdjacentByName("B", "A")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = g.AdjacentByName("B", "D")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = g.AdjacentByName("B", "nope")
	assert.ErrorIs(t, err, core.ErrUnknownVertex)

	_, err = g.Index("nope")
	assert.ErrorIs(t, err, core.ErrUnknownVertex)
}

// TestEdges_Sorted checks the canonical (u<v) ascending edge listing.
func TestEdges_Sorted(t *testing.T) {
	g := square(t)
	assert.Equal(t, [][2]int{{0, 1}, {0, 3}, {1, 2}, {2, 3}}, g.Edges())
}

// TestNames_Copy checks Names cannot be used to rename vertices.
func TestNames_Copy(t *testing.T) {
	g := square(t)
	names := g.Names()
	names[0] = "Z"
	assert.Equal(t, "A", g.Name(0))
}

// TestAdjacencyMatrix checks the gonum view mirrors Adjacent.
func TestAdjacencyMatrix(t *testing.T) {
	g := square(t)
	m := g.AdjacencyMatrix()
	require.NotNil(t, m)

	n := m.SymmetricDim()
	require.Equal(t, g.Order(), n)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			want := 0.0
			if g.Adjacent(u, v) {
				want = 1
			}
			assert.Equal(t, want, m.At(u, v), "entry (%d,%d)", u, v)
		}
	}
}
