package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "mazehunt/pkg/engine/input"
)

// keyCodes maps window keys to the binding codes used by the terminal, so
// both renderers share one binding table.
var keyCodes = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeyArrowUp, "arrow_up"},
	{ebiten.KeyArrowDown, "arrow_down"},
	{ebiten.KeyArrowLeft, "arrow_left"},
	{ebiten.KeyArrowRight, "arrow_right"},
	{ebiten.KeyK, "k"},
	{ebiten.KeyJ, "j"},
	{ebiten.KeyH, "h"},
	{ebiten.KeyL, "l"},
	{ebiten.KeyN, "n"},
	{ebiten.KeyS, "s"},
	{ebiten.KeyW, "w"},
	{ebiten.KeyE, "e"},
	{ebiten.KeySlash, "?"},
	{ebiten.KeyR, "r"},
	{ebiten.KeyD, "d"},
	{ebiten.KeyQ, "q"},
	{ebiten.KeyEscape, "escape"},
}

// intentForKey maps a key to an intent. ok is false for unbound keys.
func intentForKey(k ebiten.Key) (engineinput.Intent, bool) {
	for _, kc := range keyCodes {
		if kc.key == k {
			return engineinput.IntentFor(engineinput.RawInput{
				Device: engineinput.DeviceKeyboard,
				Code:   kc.code,
			}), true
		}
	}
	return engineinput.Intent{}, false
}

// checkInput returns the intent for the first bound key pressed this tick
func (e *EbitenRenderer) checkInput() (engineinput.Intent, bool) {
	for _, kc := range keyCodes {
		if inpututil.IsKeyJustPressed(kc.key) {
			return intentForKey(kc.key)
		}
	}
	return engineinput.Intent{}, false
}
