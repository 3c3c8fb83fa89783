// Package navigation computes breadth-first distance fields over a maze grid
// and selects target cells from them.
package navigation

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/queue"

	"mazehunt/pkg/engine/world"
)

// Unreached marks a cell the traversal never visited
const Unreached = -1

// ErrSourceOutOfBounds is returned when the traversal source is not on the grid.
var ErrSourceOutOfBounds = errors.New("distance source is outside the grid")

// DistanceField holds shortest hop counts from one source cell to every cell
// of a grid. It is computed once and never updated incrementally.
type DistanceField struct {
	cols, rows int
	source     world.Cell
	distances  []int // Row-major, Unreached if not visited
	reached    int
}

// ComputeDistances runs a breadth-first traversal from source over the open
// edges of g.
func ComputeDistances(source world.Cell, g *world.Grid) (*DistanceField, error) {
	if !g.InBounds(source) {
		return nil, fmt.Errorf("%w: %v", ErrSourceOutOfBounds, source)
	}

	f := &DistanceField{
		cols:      g.Cols(),
		rows:      g.Rows(),
		source:    source,
		distances: make([]int, g.Area()),
	}
	for i := range f.distances {
		f.distances[i] = Unreached
	}

	frontier := queue.New[world.Cell]()
	f.distances[g.Index(source)] = 0
	f.reached = 1
	frontier.Enqueue(source)

	for !frontier.Empty() {
		current := frontier.Dequeue()
		next := f.distances[g.Index(current)] + 1

		for _, d := range world.AllDirections() {
			if !g.IsOpen(current, d) {
				continue
			}
			n, _ := g.Neighbor(current, d)
			idx := g.Index(n)
			if f.distances[idx] != Unreached {
				continue
			}
			f.distances[idx] = next
			f.reached++
			frontier.Enqueue(n)
		}
	}

	return f, nil
}

// NewDistanceField builds a field from a precomputed row-major table.
// Negative entries are treated as Unreached; the source must be at distance 0.
func NewDistanceField(cols, rows int, source world.Cell, distances []int) (*DistanceField, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", world.ErrInvalidDimensions, cols, rows)
	}
	if len(distances) != cols*rows {
		return nil, fmt.Errorf("distance table has %d entries, want %d", len(distances), cols*rows)
	}
	f := &DistanceField{
		cols:      cols,
		rows:      rows,
		source:    source,
		distances: make([]int, len(distances)),
	}
	if !f.inBounds(source) {
		return nil, fmt.Errorf("%w: %v", ErrSourceOutOfBounds, source)
	}
	for i, d := range distances {
		if d < 0 {
			d = Unreached
		} else {
			f.reached++
		}
		f.distances[i] = d
	}
	if d, ok := f.Distance(source); !ok || d != 0 {
		return nil, fmt.Errorf("source %v must be at distance 0", source)
	}
	return f, nil
}

// Source returns the cell the field was computed from
func (f *DistanceField) Source() world.Cell {
	return f.source
}

// Distance returns the hop count from the source to c. ok is false if c was
// not reached or lies outside the grid.
func (f *DistanceField) Distance(c world.Cell) (d int, ok bool) {
	if !f.inBounds(c) {
		return 0, false
	}
	d = f.distances[c.Y*f.cols+c.X]
	if d == Unreached {
		return 0, false
	}
	return d, true
}

// Reached reports whether c was visited by the traversal
func (f *DistanceField) Reached(c world.Cell) bool {
	_, ok := f.Distance(c)
	return ok
}

// ReachedCount returns the number of visited cells, including the source
func (f *DistanceField) ReachedCount() int {
	return f.reached
}

// Farthest returns a reached cell at maximum distance from the source and
// that distance. Ties go to the first cell in row-major order.
func (f *DistanceField) Farthest() (world.Cell, int) {
	best, bestDist := f.source, 0
	f.Cells(func(c world.Cell, d int) {
		if d > bestDist {
			best, bestDist = c, d
		}
	})
	return best, bestDist
}

// Cells calls fn for every reached cell in row-major order
func (f *DistanceField) Cells(fn func(c world.Cell, d int)) {
	for i, d := range f.distances {
		if d == Unreached {
			continue
		}
		fn(world.Cell{X: i % f.cols, Y: i / f.cols}, d)
	}
}

func (f *DistanceField) inBounds(c world.Cell) bool {
	return c.X >= 0 && c.X < f.cols && c.Y >= 0 && c.Y < f.rows
}
