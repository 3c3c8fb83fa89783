package maze

import (
	"errors"
	"math/rand"
	"testing"

	"mazehunt/pkg/engine/world"
)

// countReachable returns the number of cells reachable from start through open edges.
func countReachable(g *world.Grid, start world.Cell) int {
	visited := map[world.Cell]bool{start: true}
	queue := []world.Cell{start}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, d := range world.AllDirections() {
			if !g.IsOpen(c, d) {
				continue
			}
			n, _ := g.Neighbor(c, d)
			if !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(visited)
}

// assertSymmetric fails if any wall reads differently from its two sides.
func assertSymmetric(t *testing.T, g *world.Grid) {
	t.Helper()
	g.ForEachCell(func(c world.Cell) {
		for _, d := range world.AllDirections() {
			n, ok := g.Neighbor(c, d)
			if !ok {
				continue
			}
			if g.IsOpen(c, d) != g.IsOpen(n, d.Opposite()) {
				t.Errorf("asymmetric wall between %v and %v", c, n)
			}
		}
	})
}

func TestBuild_SpanningTree(t *testing.T) {
	sizes := [][2]int{{1, 1}, {1, 7}, {7, 1}, {2, 2}, {5, 4}, {20, 13}}
	for seed, size := range sizes {
		b := NewBuilder(rand.New(rand.NewSource(int64(seed + 1))))
		g, err := b.Build(size[0], size[1])
		if err != nil {
			t.Fatalf("Build(%d, %d) error: %v", size[0], size[1], err)
		}
		if want := g.Area() - 1; g.OpenEdgeCount() != want {
			t.Errorf("Build(%d, %d) open edges = %d, want %d", size[0], size[1], g.OpenEdgeCount(), want)
		}
		if got := countReachable(g, world.Cell{}); got != g.Area() {
			t.Errorf("Build(%d, %d) reachable = %d, want %d", size[0], size[1], got, g.Area())
		}
		assertSymmetric(t, g)
		if g.Sealed() {
			t.Error("Build returned a sealed grid")
		}
	}
}

func TestBuild_ConnectedFromEveryCell(t *testing.T) {
	g, err := NewBuilder(rand.New(rand.NewSource(11))).Build(6, 5)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	g.ForEachCell(func(c world.Cell) {
		if got := countReachable(g, c); got != g.Area() {
			t.Errorf("reachable from %v = %d, want %d", c, got, g.Area())
		}
	})
}

func TestBuild_InvalidDimensions(t *testing.T) {
	if _, err := NewBuilder(nil).Build(0, 4); !errors.Is(err, world.ErrInvalidDimensions) {
		t.Errorf("Build(0, 4) error = %v, want ErrInvalidDimensions", err)
	}
}

func TestBuild_DeterministicForSeed(t *testing.T) {
	a, _ := NewBuilder(rand.New(rand.NewSource(42))).Build(8, 8)
	b, _ := NewBuilder(rand.New(rand.NewSource(42))).Build(8, 8)
	a.ForEachCell(func(c world.Cell) {
		for _, d := range world.AllDirections() {
			if a.IsOpen(c, d) != b.IsOpen(c, d) {
				t.Fatalf("same seed produced different walls at %v %v", c, d)
			}
		}
	})
}

func TestCarve_AddsCyclesAndStaysConnected(t *testing.T) {
	b := NewBuilder(rand.New(rand.NewSource(7)))
	g, err := b.Build(10, 10)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	before := g.OpenEdgeCount()

	carved, err := b.Carve(g, 0.3)
	if err != nil {
		t.Fatalf("Carve error: %v", err)
	}
	if carved < 0 || carved > 30 {
		t.Errorf("Carve(0.3) carved %d edges, want within [0, 30]", carved)
	}
	if g.OpenEdgeCount() != before+carved {
		t.Errorf("OpenEdgeCount() = %d, want %d", g.OpenEdgeCount(), before+carved)
	}
	if carved == 0 {
		t.Error("Carve(0.3) on a 10x10 tree opened nothing")
	}
	if got := countReachable(g, world.Cell{X: 9, Y: 9}); got != g.Area() {
		t.Errorf("reachable after carve = %d, want %d", got, g.Area())
	}
	assertSymmetric(t, g)
}

func TestCarve_ZeroFractionIsNoop(t *testing.T) {
	b := NewBuilder(rand.New(rand.NewSource(3)))
	g, _ := b.Build(4, 4)
	carved, err := b.Carve(g, 0)
	if err != nil || carved != 0 {
		t.Errorf("Carve(0) = %d, %v, want 0, nil", carved, err)
	}
	if g.OpenEdgeCount() != 15 {
		t.Errorf("OpenEdgeCount() = %d, want 15", g.OpenEdgeCount())
	}
}

func TestCarve_RejectsInvalidFraction(t *testing.T) {
	b := NewBuilder(rand.New(rand.NewSource(3)))
	g, _ := b.Build(3, 3)
	for _, f := range []float64{-0.1, 1.5} {
		if _, err := b.Carve(g, f); !errors.Is(err, ErrInvalidFraction) {
			t.Errorf("Carve(%v) error = %v, want ErrInvalidFraction", f, err)
		}
	}
}

func TestGenerate_StatsAndSeal(t *testing.T) {
	g, stats, err := NewBuilder(rand.New(rand.NewSource(5))).Generate(6, 4, 0.5)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if stats.SpanningEdges != 23 {
		t.Errorf("SpanningEdges = %d, want 23", stats.SpanningEdges)
	}
	if stats.CarveAttempts != 12 {
		t.Errorf("CarveAttempts = %d, want 12", stats.CarveAttempts)
	}
	if g.OpenEdgeCount() != stats.SpanningEdges+stats.CarvedEdges {
		t.Errorf("OpenEdgeCount() = %d, want %d", g.OpenEdgeCount(), stats.SpanningEdges+stats.CarvedEdges)
	}
	if !g.Sealed() {
		t.Error("Generate returned an unsealed grid")
	}
}

func TestNewMaze(t *testing.T) {
	g, err := NewMaze(12, 9, 0.1, rand.New(rand.NewSource(99)))
	if err != nil {
		t.Fatalf("NewMaze error: %v", err)
	}
	if g.Cols() != 12 || g.Rows() != 9 {
		t.Errorf("NewMaze dims = %dx%d, want 12x9", g.Cols(), g.Rows())
	}
	if got := countReachable(g, world.Cell{X: 5, Y: 5}); got != g.Area() {
		t.Errorf("reachable = %d, want %d", got, g.Area())
	}
	if _, err := NewMaze(3, 3, 2, nil); !errors.Is(err, ErrInvalidFraction) {
		t.Errorf("NewMaze with fraction 2 error = %v, want ErrInvalidFraction", err)
	}
}
