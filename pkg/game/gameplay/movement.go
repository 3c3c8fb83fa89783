package gameplay

import (
	"errors"

	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	"mazehunt/pkg/engine/world"
	"mazehunt/pkg/game/renderer"
	"mazehunt/pkg/game/session"
	"mazehunt/pkg/game/state"
)

// Move asks the session to move the player one cell in d. Wall bumps and
// treasure pickups are reported through the message log.
func Move(g *state.Game, d world.Direction) {
	if g.Session == nil {
		return
	}

	res, err := g.Session.Move(d)
	switch {
	case errors.Is(err, session.ErrNotPlaying):
		logMessage(g, "%s", gotext.Get("GAME_OVER"))
		return
	case err != nil:
		g.Log.WithFields(logrus.Fields{"direction": d.String()}).WithError(err).Error("move failed")
		logMessage(g, "%v", err)
		return
	}

	if !res.Moved {
		logMessage(g, "%s", renderer.Message("WALL_BUMP", d.String()))
	}

	checkLimits(g)
}

// onGoal runs inside Session.Move when the treasure is collected
func onGoal(g *state.Game, ev session.GoalEvent) {
	logMessage(g, "%s", renderer.Message("TREASURE_FOUND", g.BaseScore+ev.Score))
	logMessage(g, "%s", renderer.Message("TREASURE_DISTANCE", ev.Next.Distance))
}

// checkLimits ends the game once the move or time budget is spent. A zero
// limit is unlimited.
func checkLimits(g *state.Game) {
	if g.Session == nil || g.Session.State() != session.StatePlaying {
		return
	}

	cfg := g.Config
	switch {
	case cfg.MoveLimit > 0 && g.Moves() >= cfg.MoveLimit:
		logMessage(g, "%s", renderer.Message("OUT_OF_MOVES", g.Score()))
	case cfg.TimeLimit > 0 && g.Elapsed() >= cfg.TimeLimit:
		logMessage(g, "%s", renderer.Message("OUT_OF_TIME", g.Score()))
	default:
		return
	}

	g.Session.Finish()
	g.Quit = true
}
