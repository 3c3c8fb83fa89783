// Package maze generates connected grid mazes: a randomized depth-first
// spanning tree, optionally densified with extra openings that form cycles.
package maze

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"

	"mazehunt/pkg/engine/world"
)

// ErrInvalidFraction is returned when the extra edge fraction is outside [0,1].
var ErrInvalidFraction = errors.New("extra edge fraction must be within [0, 1]")

// Origin is the cell the backtracker starts from.
var Origin = world.Cell{X: 0, Y: 0}

// Stats describes what a generation run produced.
type Stats struct {
	SpanningEdges int // Open edges after the backtracker (always area - 1)
	CarveAttempts int // round(area * fraction)
	CarvedEdges   int // Attempts that actually opened a wall
}

// Builder generates mazes from an explicit random source
type Builder struct {
	rng *rand.Rand
}

// NewBuilder creates a builder. A nil rng is replaced by a time-seeded one.
func NewBuilder(rng *rand.Rand) *Builder {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Builder{rng: rng}
}

// NewMaze builds a sealed cols x rows maze and carves
// round(cols*rows*fraction) extra openings into it.
func NewMaze(cols, rows int, fraction float64, rng *rand.Rand) (*world.Grid, error) {
	g, _, err := NewBuilder(rng).Generate(cols, rows, fraction)
	return g, err
}

// Generate runs Build then Carve and seals the result
func (b *Builder) Generate(cols, rows int, fraction float64) (*world.Grid, Stats, error) {
	if err := validateFraction(fraction); err != nil {
		return nil, Stats{}, err
	}

	g, err := b.Build(cols, rows)
	if err != nil {
		return nil, Stats{}, err
	}
	stats := Stats{
		SpanningEdges: g.OpenEdgeCount(),
		CarveAttempts: carveAttempts(g.Area(), fraction),
	}

	stats.CarvedEdges, err = b.Carve(g, fraction)
	if err != nil {
		return nil, stats, err
	}

	g.Seal()
	return g, stats, nil
}

// Build creates a spanning-tree maze with the recursive backtracker. The grid
// is left unsealed so it can still be carved.
func (b *Builder) Build(cols, rows int) (*world.Grid, error) {
	g, err := world.NewGrid(cols, rows)
	if err != nil {
		return nil, err
	}

	visited := mapset.New[world.Cell]()
	path := stack.New[world.Cell]()

	visited.Put(Origin)
	path.Push(Origin)

	candidates := make([]world.Cell, 0, 4)
	for path.Size() > 0 {
		current := path.Peek()

		candidates = candidates[:0]
		for _, d := range world.AllDirections() {
			n, ok := g.Neighbor(current, d)
			if ok && !visited.Has(n) {
				candidates = append(candidates, n)
			}
		}

		if len(candidates) == 0 {
			path.Pop()
			continue
		}

		next := candidates[b.rng.Intn(len(candidates))]
		if err := g.OpenEdge(current, next); err != nil {
			return nil, fmt.Errorf("opening %v -> %v: %w", current, next, err)
		}
		visited.Put(next)
		path.Push(next)
	}

	return g, nil
}

// Carve makes round(area*fraction) attempts to open a random closed wall.
// Attempts that pick an open edge or the grid border are wasted, so the
// number of edges added is at most the number of attempts. It returns the
// number of edges actually opened.
func (b *Builder) Carve(g *world.Grid, fraction float64) (int, error) {
	if err := validateFraction(fraction); err != nil {
		return 0, err
	}

	dirs := world.AllDirections()
	attempts := carveAttempts(g.Area(), fraction)
	carved := 0

	for i := 0; i < attempts; i++ {
		c := g.CellAt(b.rng.Intn(g.Area()))
		d := dirs[b.rng.Intn(len(dirs))]

		n, ok := g.Neighbor(c, d)
		if !ok || g.IsOpen(c, d) {
			continue
		}
		if err := g.OpenEdge(c, n); err != nil {
			return carved, err
		}
		carved++
	}

	return carved, nil
}

func carveAttempts(area int, fraction float64) int {
	return int(math.Round(float64(area) * fraction))
}

func validateFraction(f float64) error {
	if math.IsNaN(f) || f < 0 || f > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidFraction, f)
	}
	return nil
}
