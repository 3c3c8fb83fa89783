package navigation

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazehunt/pkg/engine/world"
)

var (
	player = world.Cell{X: 0, Y: 0}
	far    = world.Cell{X: 2, Y: 2}
)

func TestPlace_RespectsBudget(t *testing.T) {
	// Fully open 3x3 grid: (2,2) is four steps from (0,0).
	g, err := world.NewGrid(3, 3)
	require.NoError(t, err)
	g.ForEachCell(func(c world.Cell) {
		for _, d := range []world.Direction{world.East, world.South} {
			if n, ok := g.Neighbor(c, d); ok {
				require.NoError(t, g.OpenEdge(c, n))
			}
		}
	})
	f, err := ComputeDistances(player, g)
	require.NoError(t, err)
	d, _ := f.Distance(far)
	require.Equal(t, 4, d)

	rng := rand.New(rand.NewSource(1))
	seen := map[world.Cell]bool{}
	for i := 0; i < 500; i++ {
		p, err := Place(f, player, 3, rng)
		require.NoError(t, err)
		assert.NotEqual(t, far, p.Cell)
		assert.NotEqual(t, player, p.Cell)
		assert.False(t, p.Fallback)
		assert.GreaterOrEqual(t, p.Distance, 1)
		assert.LessOrEqual(t, p.Distance, 3)
		seen[p.Cell] = true
	}
	// Every in-budget cell is a candidate: 9 cells minus player minus (2,2).
	assert.Len(t, seen, 7)
}

func TestPlace_FallbackWhenBudgetUnsatisfiable(t *testing.T) {
	// Constructed field: only (2,2), at distance 4, is reachable besides the player.
	table := []int{
		0, -1, -1,
		-1, -1, -1,
		-1, -1, 4,
	}
	f, err := NewDistanceField(3, 3, player, table)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(2))
	p, err := Place(f, player, 3, rng)
	require.NoError(t, err)
	assert.True(t, p.Fallback)
	assert.Equal(t, far, p.Cell)
	assert.Equal(t, 4, p.Distance)

	got, err := SelectTarget(f, player, 3, rng)
	require.NoError(t, err)
	assert.Equal(t, far, got)
}

func TestPlace_BudgetBranchSkipsFarCell(t *testing.T) {
	// Same shape as the fallback case plus one in-budget cell.
	table := []int{
		0, 1, -1,
		-1, -1, -1,
		-1, -1, 4,
	}
	f, err := NewDistanceField(3, 3, player, table)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		p, err := Place(f, player, 3, rng)
		require.NoError(t, err)
		assert.False(t, p.Fallback)
		assert.Equal(t, world.Cell{X: 1, Y: 0}, p.Cell)
	}
}

func TestPlace_ExcludeIsNotSource(t *testing.T) {
	table := []int{0, 1, 2}
	f, err := NewDistanceField(3, 1, player, table)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 50; i++ {
		c, err := SelectTarget(f, world.Cell{X: 1, Y: 0}, 5, rng)
		require.NoError(t, err)
		assert.Equal(t, world.Cell{X: 2, Y: 0}, c, "distance 0 source is never a candidate")
	}
}

func TestPlace_DegenerateMaze(t *testing.T) {
	g, err := world.NewGrid(1, 1)
	require.NoError(t, err)
	f, err := ComputeDistances(player, g)
	require.NoError(t, err)

	p, err := Place(f, player, 3, rand.New(rand.NewSource(5)))
	assert.ErrorIs(t, err, ErrDegenerateMaze)
	assert.Equal(t, player, p.Cell)
}

func TestPlace_InvalidMaxSteps(t *testing.T) {
	f, err := NewDistanceField(2, 1, player, []int{0, 1})
	require.NoError(t, err)
	for _, steps := range []int{0, -3} {
		_, err := SelectTarget(f, player, steps, rand.New(rand.NewSource(6)))
		assert.ErrorIs(t, err, ErrInvalidMaxSteps)
	}
}

func TestPlace_DeterministicForSeed(t *testing.T) {
	f, err := NewDistanceField(3, 3, player, []int{0, 1, 2, 1, 2, 3, 2, 3, 4})
	require.NoError(t, err)

	a, b := rand.New(rand.NewSource(77)), rand.New(rand.NewSource(77))
	for i := 0; i < 20; i++ {
		ca, _ := SelectTarget(f, player, 3, a)
		cb, _ := SelectTarget(f, player, 3, b)
		assert.Equal(t, ca, cb)
	}
}
