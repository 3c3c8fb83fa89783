package devtools

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"mazehunt/pkg/engine/navigation"
	"mazehunt/pkg/engine/world"
	"mazehunt/pkg/game/state"
)

const mazeDumpFilename = "maze.txt"

// ErrNoMaze is returned when there is no running session to dump
var ErrNoMaze = errors.New("no maze to dump")

// Marker glyphs shared by every drawing.
const (
	PlayerMarker   = "@ "
	TreasureMarker = "$ "
)

// MarkerOverlay draws the player and the treasure
func MarkerOverlay(player, target world.Cell) Overlay {
	return func(c world.Cell) string {
		switch c {
		case player:
			return PlayerMarker
		case target:
			return TreasureMarker
		}
		return ""
	}
}

// DistanceOverlay labels every reached cell with its distance from the field
// source. Distances of 100 or more are shown as "++".
func DistanceOverlay(f *navigation.DistanceField) Overlay {
	return func(c world.Cell) string {
		d, ok := f.Distance(c)
		switch {
		case !ok:
			return "##"
		case d >= 100:
			return "++"
		default:
			return fmt.Sprintf("%2d", d)
		}
	}
}

// WriteDump writes the full debug dump of g to w: metadata, legend, the maze
// with markers and the maze labelled with distances from the player.
func WriteDump(w io.Writer, g *state.Game) error {
	if g == nil || g.Session == nil {
		return ErrNoMaze
	}
	s := g.Session
	grid := s.Grid()
	player, target := s.PlayerCell(), s.TargetCell()

	field, err := navigation.ComputeDistances(player, grid)
	if err != nil {
		return err
	}
	targetDist, _ := field.Distance(target)
	far, farDist := field.Farthest()

	fmt.Fprintln(w, "=== MAZE DUMP ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "level: %d\n", g.Level)
	fmt.Fprintf(w, "game_seed: %d\n", g.Seed)
	fmt.Fprintf(w, "level_seed: %d\n", g.LevelSeed)
	fmt.Fprintf(w, "cols: %d\n", grid.Cols())
	fmt.Fprintf(w, "rows: %d\n", grid.Rows())
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, x=column, y=row)\n")
	fmt.Fprintf(w, "open_edges: %d\n", grid.OpenEdgeCount())
	fmt.Fprintf(w, "extra_edges: %d\n", grid.OpenEdgeCount()-(grid.Area()-1))
	fmt.Fprintf(w, "player_cell: %v\n", player)
	fmt.Fprintf(w, "target_cell: %v\n", target)
	fmt.Fprintf(w, "target_distance: %d\n", targetDist)
	fmt.Fprintf(w, "max_steps: %d\n", s.MaxSteps())
	fmt.Fprintf(w, "farthest_cell: %v (%d)\n", far, farDist)
	fmt.Fprintf(w, "score: %d\n", g.Score())
	fmt.Fprintf(w, "moves: %d\n", g.Moves())
	fmt.Fprintf(w, "state: %v\n", s.State())
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend ---")
	fmt.Fprintln(w, "@ = player  $ = treasure  -- | = wall  NN = steps from player  ## = unreachable")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Maze ---")
	if err := WriteMaze(w, grid, MarkerOverlay(player, target)); err != nil {
		return err
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Distances from player ---")
	return WriteMaze(w, grid, DistanceOverlay(field))
}

// DumpToFile writes the debug dump to maze.txt in dir and returns its absolute path
func DumpToFile(g *state.Game, dir string) (string, error) {
	absPath, err := filepath.Abs(filepath.Join(dir, mazeDumpFilename))
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteDump(f, g); err != nil {
		return "", err
	}
	return absPath, nil
}
