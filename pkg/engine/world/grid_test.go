package world

import (
	"errors"
	"testing"
)

func mustGrid(t *testing.T, cols, rows int) *Grid {
	t.Helper()
	g, err := NewGrid(cols, rows)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d) error: %v", cols, rows, err)
	}
	return g
}

func TestNewGrid_RejectsNonPositiveDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 2}, {0, 0}} {
		if _, err := NewGrid(dims[0], dims[1]); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("NewGrid(%d, %d) error = %v, want ErrInvalidDimensions", dims[0], dims[1], err)
		}
	}
}

func TestNewGrid_AllWallsClosed(t *testing.T) {
	g := mustGrid(t, 3, 2)
	g.ForEachCell(func(c Cell) {
		for _, d := range AllDirections() {
			if g.IsOpen(c, d) {
				t.Errorf("IsOpen(%v, %v) = true on a fresh grid", c, d)
			}
		}
	})
	if g.OpenEdgeCount() != 0 {
		t.Errorf("OpenEdgeCount() = %d, want 0", g.OpenEdgeCount())
	}
}

func TestNeighbor_Bounds(t *testing.T) {
	g := mustGrid(t, 3, 3)

	n, ok := g.Neighbor(Cell{1, 1}, North)
	if !ok || n != (Cell{1, 0}) {
		t.Errorf("Neighbor((1,1), North) = %v, %v, want (1,0), true", n, ok)
	}
	n, ok = g.Neighbor(Cell{1, 1}, East)
	if !ok || n != (Cell{2, 1}) {
		t.Errorf("Neighbor((1,1), East) = %v, %v, want (2,1), true", n, ok)
	}

	if _, ok := g.Neighbor(Cell{0, 0}, North); ok {
		t.Error("Neighbor((0,0), North) ok = true, want false")
	}
	if _, ok := g.Neighbor(Cell{0, 0}, West); ok {
		t.Error("Neighbor((0,0), West) ok = true, want false")
	}
	if _, ok := g.Neighbor(Cell{2, 2}, South); ok {
		t.Error("Neighbor((2,2), South) ok = true, want false")
	}
	if _, ok := g.Neighbor(Cell{5, 5}, North); ok {
		t.Error("Neighbor of out-of-range cell ok = true, want false")
	}
	if _, ok := g.Neighbor(Cell{1, 1}, Direction(9)); ok {
		t.Error("Neighbor with invalid direction ok = true, want false")
	}
}

func TestOpenEdge_Symmetric(t *testing.T) {
	g := mustGrid(t, 2, 2)
	if err := g.OpenEdge(Cell{0, 0}, Cell{1, 0}); err != nil {
		t.Fatalf("OpenEdge error: %v", err)
	}
	if err := g.OpenEdge(Cell{1, 1}, Cell{1, 0}); err != nil {
		t.Fatalf("OpenEdge error: %v", err)
	}

	if !g.IsOpen(Cell{0, 0}, East) || !g.IsOpen(Cell{1, 0}, West) {
		t.Error("east/west edge not open from both sides")
	}
	if !g.IsOpen(Cell{1, 0}, South) || !g.IsOpen(Cell{1, 1}, North) {
		t.Error("north/south edge not open from both sides")
	}
	if g.IsOpen(Cell{0, 0}, South) {
		t.Error("IsOpen((0,0), South) = true, want false")
	}
	if g.OpenEdgeCount() != 2 {
		t.Errorf("OpenEdgeCount() = %d, want 2", g.OpenEdgeCount())
	}

	// Re-opening is idempotent.
	if err := g.OpenEdge(Cell{1, 0}, Cell{0, 0}); err != nil {
		t.Fatalf("OpenEdge error: %v", err)
	}
	if g.OpenEdgeCount() != 2 {
		t.Errorf("OpenEdgeCount() after reopen = %d, want 2", g.OpenEdgeCount())
	}
}

func TestOpenEdge_RejectsInvalid(t *testing.T) {
	g := mustGrid(t, 3, 3)

	tests := []struct {
		name string
		a, b Cell
		want error
	}{
		{"diagonal", Cell{0, 0}, Cell{1, 1}, ErrNotAdjacent},
		{"two apart", Cell{0, 0}, Cell{2, 0}, ErrNotAdjacent},
		{"same cell", Cell{1, 1}, Cell{1, 1}, ErrNotAdjacent},
		{"out of bounds", Cell{2, 2}, Cell{3, 2}, ErrOutOfBounds},
		{"negative", Cell{0, 0}, Cell{-1, 0}, ErrOutOfBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := g.OpenEdge(tt.a, tt.b)
			if !errors.Is(err, tt.want) {
				t.Errorf("OpenEdge(%v, %v) error = %v, want %v", tt.a, tt.b, err, tt.want)
			}
			if g.OpenEdgeCount() != 0 {
				t.Errorf("OpenEdgeCount() = %d after rejected call, want 0", g.OpenEdgeCount())
			}
		})
	}
}

func TestSeal_RejectsMutation(t *testing.T) {
	g := mustGrid(t, 2, 1)
	g.Seal()
	if !g.Sealed() {
		t.Fatal("Sealed() = false after Seal()")
	}
	if err := g.OpenEdge(Cell{0, 0}, Cell{1, 0}); !errors.Is(err, ErrSealed) {
		t.Errorf("OpenEdge on sealed grid error = %v, want ErrSealed", err)
	}
	if g.IsOpen(Cell{0, 0}, East) {
		t.Error("sealed grid was modified")
	}
}

func TestIsOpen_OutOfRange(t *testing.T) {
	g := mustGrid(t, 2, 2)
	_ = g.OpenEdge(Cell{0, 0}, Cell{1, 0})
	if g.IsOpen(Cell{-1, 0}, East) {
		t.Error("IsOpen((-1,0), East) = true, want false")
	}
	if g.IsOpen(Cell{1, 0}, East) {
		t.Error("IsOpen((1,0), East) = true at the grid edge, want false")
	}
}

func TestOpenDirections(t *testing.T) {
	g := mustGrid(t, 3, 3)
	center := Cell{1, 1}
	_ = g.OpenEdge(center, Cell{1, 0})
	_ = g.OpenEdge(center, Cell{0, 1})

	got := g.OpenDirections(center)
	if len(got) != 2 || got[0] != North || got[1] != West {
		t.Errorf("OpenDirections(center) = %v, want [North West]", got)
	}
}

func TestIndexRoundTrip(t *testing.T) {
	g := mustGrid(t, 4, 3)
	i := 0
	g.ForEachCell(func(c Cell) {
		if g.Index(c) != i {
			t.Errorf("Index(%v) = %d, want %d", c, g.Index(c), i)
		}
		if g.CellAt(i) != c {
			t.Errorf("CellAt(%d) = %v, want %v", i, g.CellAt(i), c)
		}
		i++
	})
	if i != g.Area() {
		t.Errorf("ForEachCell visited %d cells, want %d", i, g.Area())
	}
}
