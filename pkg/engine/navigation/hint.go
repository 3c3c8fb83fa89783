package navigation

import (
	"mazehunt/pkg/engine/world"
)

// NextStep returns the first direction of a shortest path from `from` to
// `to`. ok is false if from == to or `to` cannot be reached.
func NextStep(g *world.Grid, from, to world.Cell) (world.Direction, bool) {
	toTarget, err := ComputeDistances(to, g)
	if err != nil {
		return -1, false
	}
	return descend(g, toTarget, from)
}

// Path returns the cells of a shortest path from `from` to `to`, both
// included. It returns nil if either cell is off the grid or `to` is
// unreachable.
func Path(g *world.Grid, from, to world.Cell) []world.Cell {
	if !g.InBounds(from) {
		return nil
	}
	toTarget, err := ComputeDistances(to, g)
	if err != nil || !toTarget.Reached(from) {
		return nil
	}

	path := []world.Cell{from}
	for current := from; current != to; {
		d, ok := descend(g, toTarget, current)
		if !ok {
			return nil
		}
		current = current.Step(d)
		path = append(path, current)
	}
	return path
}

// descend picks the first open direction from c that lowers the distance to
// the field's source.
func descend(g *world.Grid, f *DistanceField, c world.Cell) (world.Direction, bool) {
	here, ok := f.Distance(c)
	if !ok || here == 0 {
		return -1, false
	}
	for _, d := range world.AllDirections() {
		if !g.IsOpen(c, d) {
			continue
		}
		n, _ := g.Neighbor(c, d)
		if dist, ok := f.Distance(n); ok && dist < here {
			return d, true
		}
	}
	return -1, false
}
