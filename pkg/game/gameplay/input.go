package gameplay

import (
	"github.com/leonelquinteros/gotext"

	engineinput "mazehunt/pkg/engine/input"
	"mazehunt/pkg/game/devtools"
	"mazehunt/pkg/game/renderer"
	"mazehunt/pkg/game/state"
)

// ProcessIntent handles a high-level input intent from the tiered input system.
func ProcessIntent(g *state.Game, intent engineinput.Intent) {
	checkLimits(g)
	if g.Quit {
		return
	}

	if d, ok := intent.Action.Direction(); ok {
		Move(g, d)
		return
	}

	switch intent.Action {
	case engineinput.ActionNone:
		logMessage(g, "%s", gotext.Get("UNKNOWN_COMMAND"))

	case engineinput.ActionHint:
		ShowHint(g)

	case engineinput.ActionNewMaze:
		if err := NewLevel(g); err != nil {
			g.Log.WithError(err).Error("new maze failed")
			logMessage(g, "%v", err)
		}

	case engineinput.ActionDump:
		path, err := devtools.DumpToFile(g, ".")
		if err != nil {
			logMessage(g, "%s", renderer.Message("DUMP_FAILED", err))
		} else {
			logMessage(g, "%s", renderer.Message("DUMP_WRITTEN", path))
		}

	case engineinput.ActionQuit:
		if g.Session != nil {
			g.Session.Finish()
		}
		g.Quit = true
	}
}
