// Package world provides the grid model of a maze: cells, directions and the
// set of open edges between adjacent cells.
package world

import "fmt"

// Cell is a single grid position. X is the column, Y the row.
type Cell struct {
	X int
	Y int
}

// Step returns the cell one step away in the given direction.
// The result is not bounds checked.
func (c Cell) Step(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// DirectionTo returns the direction leading from c to an adjacent cell o.
// ok is false when the two cells are not grid-adjacent.
func (c Cell) DirectionTo(o Cell) (d Direction, ok bool) {
	for _, dir := range AllDirections() {
		if c.Step(dir) == o {
			return dir, true
		}
	}
	return -1, false
}

// String returns the cell as "x,y"
func (c Cell) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}
