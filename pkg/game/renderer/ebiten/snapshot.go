package ebiten

import (
	"strconv"
	"time"

	"github.com/leonelquinteros/gotext"

	"mazehunt/pkg/engine/world"
	"mazehunt/pkg/game/renderer"
	"mazehunt/pkg/game/state"
)

// renderSnapshot holds a consistent copy of game state for Draw.
// The grid is sealed once generated so sharing the pointer is safe.
type renderSnapshot struct {
	valid     bool
	level     int
	grid      *world.Grid
	player    world.Cell
	target    world.Cell
	hasTarget bool
	status    string
	limits    string
	messages  []string
}

// RenderFrame captures the current game state for the next Draw
func (e *EbitenRenderer) RenderFrame(g *state.Game) {
	snap := buildSnapshot(g)

	e.snapshotMutex.Lock()
	e.snapshot = snap
	e.snapshotMutex.Unlock()
}

func buildSnapshot(g *state.Game) renderSnapshot {
	snap := renderSnapshot{
		valid:    true,
		level:    g.Level,
		messages: append([]string(nil), g.Messages...),
	}

	status := gotext.Get("STATUS_SCORE") + " " + strconv.Itoa(g.Score()) +
		"  |  " + gotext.Get("STATUS_MOVES") + " " + strconv.Itoa(g.Moves())

	if s := g.Session; s != nil {
		snap.grid = s.Grid()
		snap.player = s.PlayerCell()
		if d, ok := s.TargetDistance(); ok {
			snap.target = s.TargetCell()
			snap.hasTarget = true
			status += "  |  " + gotext.Get("STATUS_STEPS") + " " + strconv.Itoa(d)
		}
	}
	snap.status = status

	if limit := g.Config.MoveLimit; limit > 0 {
		snap.limits = renderer.Message("STATUS_MOVES_LEFT", max(limit-g.Moves(), 0))
	}
	if limit := g.Config.TimeLimit; limit > 0 {
		left := max(limit-g.Elapsed(), 0).Round(time.Second)
		if snap.limits != "" {
			snap.limits += "  "
		}
		snap.limits += renderer.Message("STATUS_TIME_LEFT", left.String())
	}

	return snap
}
