package navigation

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazehunt/pkg/engine/maze"
	"mazehunt/pkg/engine/world"
)

func TestNextStep_Corridor(t *testing.T) {
	g := gridFromPath(t, 3, 3, corridor)

	d, ok := NextStep(g, corridor[0], corridor[8])
	require.True(t, ok)
	assert.Equal(t, world.East, d)

	d, ok = NextStep(g, corridor[3], corridor[8])
	require.True(t, ok)
	assert.Equal(t, world.West, d)

	_, ok = NextStep(g, corridor[4], corridor[4])
	assert.False(t, ok, "no step when already at the target")
}

func TestPath_Corridor(t *testing.T) {
	g := gridFromPath(t, 3, 3, corridor)
	assert.Equal(t, corridor, Path(g, corridor[0], corridor[8]))
	assert.Equal(t, []world.Cell{corridor[4]}, Path(g, corridor[4], corridor[4]))
}

func TestPath_Unreachable(t *testing.T) {
	g, err := world.NewGrid(2, 1)
	require.NoError(t, err)
	assert.Nil(t, Path(g, world.Cell{}, world.Cell{X: 1, Y: 0}))
	_, ok := NextStep(g, world.Cell{}, world.Cell{X: 1, Y: 0})
	assert.False(t, ok)
	assert.Nil(t, Path(g, world.Cell{X: -1, Y: 0}, world.Cell{}))
}

func TestPath_LengthMatchesDistance(t *testing.T) {
	g, err := maze.NewMaze(9, 7, 0.25, rand.New(rand.NewSource(31)))
	require.NoError(t, err)
	from, to := world.Cell{X: 0, Y: 6}, world.Cell{X: 8, Y: 0}

	f, err := ComputeDistances(from, g)
	require.NoError(t, err)
	want, ok := f.Distance(to)
	require.True(t, ok)

	path := Path(g, from, to)
	require.Len(t, path, want+1)
	for i := 1; i < len(path); i++ {
		d, ok := path[i-1].DirectionTo(path[i])
		require.True(t, ok)
		assert.True(t, g.IsOpen(path[i-1], d), "path crosses a wall at %v", path[i-1])
	}
}
