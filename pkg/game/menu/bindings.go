// Package menu lists the key bindings shown by the help screen.
package menu

import (
	"fmt"
	"io"
	"strings"

	engineinput "mazehunt/pkg/engine/input"
	"mazehunt/pkg/game/renderer"
)

// BindingMenuItem represents one action and the keys bound to it.
type BindingMenuItem struct {
	Action engineinput.Action
	Codes  []string
}

// GetLabel returns the display label for this binding.
func (b *BindingMenuItem) GetLabel(style renderer.Styler) string {
	codeText := strings.Join(b.Codes, ", ")
	if codeText == "" {
		codeText = style("(unbound)", renderer.StyleSubtle)
	}
	return fmt.Sprintf("%-10s %s", style(engineinput.ActionName(b.Action), renderer.StyleAction), codeText)
}

// actions is the display order of the bindings list
var actions = []engineinput.Action{
	engineinput.ActionMoveNorth,
	engineinput.ActionMoveSouth,
	engineinput.ActionMoveWest,
	engineinput.ActionMoveEast,
	engineinput.ActionHint,
	engineinput.ActionNewMaze,
	engineinput.ActionDump,
	engineinput.ActionQuit,
}

// GetMenuItems returns one item per bindable action.
func GetMenuItems() []*BindingMenuItem {
	byAction := engineinput.GetBindingsByAction()
	items := make([]*BindingMenuItem, len(actions))
	for i, action := range actions {
		items[i] = &BindingMenuItem{Action: action, Codes: byAction[action]}
	}
	return items
}

// WriteBindings prints the bindings list, one action per line.
func WriteBindings(w io.Writer, style renderer.Styler) error {
	if _, err := fmt.Fprintln(w, "Key bindings:"); err != nil {
		return err
	}
	for _, item := range GetMenuItems() {
		if _, err := fmt.Fprintf(w, "  %s\n", item.GetLabel(style)); err != nil {
			return err
		}
	}
	return nil
}
