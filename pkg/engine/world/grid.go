package world

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Grid errors.
var (
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
	ErrOutOfBounds       = errors.New("cell is outside the grid")
	ErrNotAdjacent       = errors.New("cells are not adjacent")
	ErrSealed            = errors.New("grid is sealed")
)

// edge is the canonical key of an undirected edge: the west or north cell of
// the pair, and East or South towards the other cell.
type edge struct {
	cell Cell
	dir  Direction
}

// canonicalEdge normalises (c, d) so that both sides of a wall share one key.
func canonicalEdge(c Cell, d Direction) edge {
	switch d {
	case West, North:
		return edge{cell: c.Step(d), dir: d.Opposite()}
	default:
		return edge{cell: c, dir: d}
	}
}

// Grid is a Cols x Rows maze topology. Every wall starts closed; an edge is
// open when its canonical key is in the open set, so the wall between two
// cells reads the same from both sides.
//
// A Grid is mutated only while the maze is being built. Seal makes it
// read-only, after which it is safe to share between concurrent readers.
type Grid struct {
	cols int
	rows int

	open   mapset.Set[edge]
	sealed bool
}

// NewGrid creates a grid with all walls closed
func NewGrid(cols, rows int) (*Grid, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, cols, rows)
	}
	return &Grid{
		cols: cols,
		rows: rows,
		open: mapset.New[edge](),
	}, nil
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Area returns the number of cells in the grid
func (g *Grid) Area() int {
	return g.cols * g.rows
}

// InBounds checks if a cell is within grid bounds
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.cols && c.Y >= 0 && c.Y < g.rows
}

// Index returns the row-major index of an in-bounds cell
func (g *Grid) Index(c Cell) int {
	return c.Y*g.cols + c.X
}

// CellAt returns the cell for a row-major index
func (g *Grid) CellAt(i int) Cell {
	return Cell{X: i % g.cols, Y: i / g.cols}
}

// Neighbor returns the cell adjacent to c in the given direction.
// ok is false if c or the neighbor lies outside the grid.
func (g *Grid) Neighbor(c Cell, d Direction) (n Cell, ok bool) {
	if !d.IsValid() || !g.InBounds(c) {
		return Cell{}, false
	}
	n = c.Step(d)
	if !g.InBounds(n) {
		return Cell{}, false
	}
	return n, true
}

// IsOpen reports whether the edge between c and its neighbor in direction d
// is passable. Out-of-range queries report false.
func (g *Grid) IsOpen(c Cell, d Direction) bool {
	if _, ok := g.Neighbor(c, d); !ok {
		return false
	}
	return g.open.Has(canonicalEdge(c, d))
}

// OpenDirections returns the directions leading out of c through open edges
func (g *Grid) OpenDirections(c Cell) []Direction {
	var dirs []Direction
	for _, d := range AllDirections() {
		if g.IsOpen(c, d) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// OpenEdge removes the wall between two grid-adjacent cells. The grid is
// left unmodified if the cells are out of range, not adjacent, or the grid
// has been sealed.
func (g *Grid) OpenEdge(a, b Cell) error {
	if g.sealed {
		return ErrSealed
	}
	if !g.InBounds(a) || !g.InBounds(b) {
		return fmt.Errorf("%w: %v -> %v", ErrOutOfBounds, a, b)
	}
	d, ok := a.DirectionTo(b)
	if !ok {
		return fmt.Errorf("%w: %v -> %v", ErrNotAdjacent, a, b)
	}
	g.open.Put(canonicalEdge(a, d))
	return nil
}

// OpenEdgeCount returns the number of open (undirected) edges
func (g *Grid) OpenEdgeCount() int {
	return g.open.Size()
}

// Seal makes the grid read-only
func (g *Grid) Seal() {
	g.sealed = true
}

// Sealed reports whether the grid has been sealed
func (g *Grid) Sealed() bool {
	return g.sealed
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(c Cell)) {
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			fn(Cell{X: x, Y: y})
		}
	}
}
