package tui

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/gookit/color"

	"mazehunt/pkg/engine/input"
	"mazehunt/pkg/game/config"
	"mazehunt/pkg/game/devtools"
	"mazehunt/pkg/game/gameplay"
	"mazehunt/pkg/game/renderer"
)

// scriptedKeys replays a fixed list of key codes, then reports end of input.
type scriptedKeys struct {
	codes []string
}

func (s *scriptedKeys) Next() (input.RawInput, error) {
	if len(s.codes) == 0 {
		return input.RawInput{}, io.EOF
	}
	code := s.codes[0]
	s.codes = s.codes[1:]
	return input.RawInput{Device: input.DeviceTerminal, Code: code}, nil
}

func newTestRenderer(t *testing.T, codes ...string) (*TUIRenderer, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	r := &TUIRenderer{out: &buf, keys: &scriptedKeys{codes: codes}}
	if err := r.Init(); err != nil {
		t.Fatal(err)
	}
	return r, &buf
}

func TestGetInput(t *testing.T) {
	r, _ := newTestRenderer(t, "k", "arrow_left", "?", "x")

	want := []input.Action{
		input.ActionMoveNorth,
		input.ActionMoveWest,
		input.ActionHint,
		input.ActionNone,
		input.ActionQuit, // end of input
	}
	for i, w := range want {
		if got := r.GetInput().Action; got != w {
			t.Errorf("GetInput() #%d = %v, want %v", i, input.ActionName(got), input.ActionName(w))
		}
	}
}

func TestRenderFrame(t *testing.T) {
	r, buf := newTestRenderer(t)

	cfg := config.Default()
	cfg.Cols, cfg.Rows, cfg.Seed = 6, 4, 99
	cfg.MoveLimit = 50
	g, err := gameplay.BuildGame(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}

	r.RenderFrame(g)
	out := color.ClearCode(buf.String())

	lines := devtools.MazeLines(g.Session.Grid(), devtools.MarkerOverlay(g.Session.PlayerCell(), g.Session.TargetCell()))
	for _, line := range lines {
		if !strings.Contains(out, line) {
			t.Errorf("frame missing maze line %q", line)
		}
	}
	if !strings.Contains(out, devtools.TreasureMarker) {
		t.Error("frame missing treasure marker")
	}
	if !strings.HasSuffix(out, "> ") {
		t.Error("frame should end with the input prompt")
	}
	if !strings.Contains(out, "STATUS_MOVES_LEFT") && !strings.Contains(out, "50") {
		t.Error("frame missing move limit")
	}
}

func TestFormatText(t *testing.T) {
	r, _ := newTestRenderer(t)
	got := color.ClearCode(r.FormatText("ACTION{north} ITEM{%d}", 3))
	if got != "north 3" {
		t.Errorf("FormatText() = %q, want %q", got, "north 3")
	}
	if got := r.StyleText("x", renderer.StyleNormal); got != "x" {
		t.Errorf("StyleText(normal) = %q, want x", got)
	}
}
