package gameplay

import (
	"github.com/leonelquinteros/gotext"

	"mazehunt/pkg/engine/navigation"
	"mazehunt/pkg/game/renderer"
	"mazehunt/pkg/game/state"
)

// ShowHint names the first step of a shortest path to the treasure
func ShowHint(g *state.Game) {
	if g.Session == nil {
		return
	}

	d, ok := navigation.NextStep(g.Session.Grid(), g.Session.PlayerCell(), g.Session.TargetCell())
	if !ok {
		logMessage(g, "%s", gotext.Get("NO_HINT"))
		return
	}

	g.HintsUsed++
	logMessage(g, "%s", renderer.Message("HINT_STEP", d.String()))
}
