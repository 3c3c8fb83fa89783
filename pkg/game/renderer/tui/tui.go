package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"mazehunt/pkg/engine/input"
	"mazehunt/pkg/engine/terminal"
	"mazehunt/pkg/engine/world"
	"mazehunt/pkg/game/devtools"
	"mazehunt/pkg/game/renderer"
	"mazehunt/pkg/game/session"
	"mazehunt/pkg/game/state"
)

// Lines needed outside the maze drawing:
// - Level indicator + blank (2)
// - Status bar + limits (2)
// - Actions (1)
// - Messages pane (header + 5 messages + footer = 7)
// - Input prompt (2)
const ViewportReservedLines = 14

// keySource yields raw key presses
type keySource interface {
	Next() (input.RawInput, error)
}

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorWall        color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorDenied      color.Style
	colorItem        color.Style
	colorSubtle      color.Style
	colorPlayer      color.Style
	colorTreasure    color.Style
	colorHint        color.Style

	out  io.Writer
	keys keySource
}

var _ renderer.Renderer = (*TUIRenderer)(nil)

// New creates a new TUI renderer writing to stdout and reading stdin
func New() *TUIRenderer {
	return &TUIRenderer{out: os.Stdout}
}

// Init initializes the TUI renderer (colors, key reader)
func (t *TUIRenderer) Init() error {
	t.colorWall = color.Style{color.FgGray}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorItem = color.Style{color.FgCyan, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorPlayer = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorTreasure = color.Style{color.FgYellow, color.OpBold}
	t.colorHint = color.Style{color.FgBlue}

	if t.keys == nil {
		t.keys = input.NewTerminal()
	}
	return nil
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	c := exec.Command("clear")
	c.Stdout = t.out
	_ = c.Run()
}

// GetInput reads one key press and returns it as a high-level Intent.
// End of input and Ctrl+C both quit.
func (t *TUIRenderer) GetInput() input.Intent {
	raw, err := t.keys.Next()
	if err != nil {
		if !errors.Is(err, io.EOF) && !errors.Is(err, input.ErrInterrupted) {
			fmt.Fprintln(t.out, err)
		}
		return input.Intent{Action: input.ActionQuit}
	}
	return input.IntentFor(raw)
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleWall:
		return t.colorWall.Sprint(text)
	case renderer.StyleItem:
		return t.colorItem.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleActionShort:
		return t.colorActionShort.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StylePlayer:
		return t.colorPlayer.Sprint(text)
	case renderer.StyleTreasure:
		return t.colorTreasure.Sprint(text)
	case renderer.StyleHint:
		return t.colorHint.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	return renderer.Format(t.StyleText, msg, args...)
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, msg)
}

// GetViewportSize returns how many maze rows and columns fit the terminal
func (t *TUIRenderer) GetViewportSize() (rows, cols int) {
	w, h := terminal.GetSize()
	cols, rows = terminal.FitMaze(w, h, ViewportReservedLines)
	return rows, cols
}

// Close is a no-op; raw mode is only held while reading a key
func (t *TUIRenderer) Close() {}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	fmt.Fprint(t.out, t.colorAction.Sprintf("%s\n\n", renderer.Message("LEVEL_HEADER", g.Level)))

	if g.Session != nil {
		t.printMaze(g.Session)
	}

	t.printStatusBar(g)
	t.printPossibleActions()
	t.printMessagesPane(g)

	fmt.Fprint(t.out, "\n> ")
}

// printString prints a formatted string
func (t *TUIRenderer) printString(msg string, a ...any) {
	fmt.Fprint(t.out, t.FormatText(msg, a...))
}

// printMaze draws the maze with the player and treasure highlighted
func (t *TUIRenderer) printMaze(s *session.Session) {
	player, target := s.PlayerCell(), s.TargetCell()
	overlay := func(c world.Cell) string {
		switch c {
		case player:
			return t.colorPlayer.Sprint(devtools.PlayerMarker)
		case target:
			return t.colorTreasure.Sprint(devtools.TreasureMarker)
		}
		return ""
	}

	for _, line := range devtools.MazeLines(s.Grid(), overlay) {
		fmt.Fprintln(t.out, line)
	}
}

// printStatusBar renders score, moves, distance and any limits
func (t *TUIRenderer) printStatusBar(g *state.Game) {
	fmt.Fprintln(t.out)

	parts := []string{
		t.colorSubtle.Sprint(gotext.Get("STATUS_SCORE")) + " " + t.colorItem.Sprint(g.Score()),
		t.colorSubtle.Sprint(gotext.Get("STATUS_MOVES")) + " " + t.colorItem.Sprint(g.Moves()),
	}
	if g.Session != nil {
		if d, ok := g.Session.TargetDistance(); ok {
			parts = append(parts, t.colorSubtle.Sprint(gotext.Get("STATUS_STEPS"))+" "+t.colorTreasure.Sprint(d))
		}
	}
	fmt.Fprintln(t.out, strings.Join(parts, t.colorSubtle.Sprint("  |  ")))

	var limits []string
	if limit := g.Config.MoveLimit; limit > 0 {
		limits = append(limits, renderer.Message("STATUS_MOVES_LEFT", max(limit-g.Moves(), 0)))
	}
	if limit := g.Config.TimeLimit; limit > 0 {
		left := max(limit-g.Elapsed(), 0).Round(time.Second)
		limits = append(limits, renderer.Message("STATUS_TIME_LEFT", left.String()))
	}
	if len(limits) > 0 {
		fmt.Fprintln(t.out, t.colorDenied.Sprint(strings.Join(limits, "  ")))
	}
}

// printPossibleActions prints the available actions
func (t *TUIRenderer) printPossibleActions() {
	t.printString("- %s\n", gotext.Get("ACTIONS_HELP"))
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(g *state.Game) {
	width, _ := terminal.GetSize()
	if width > 120 {
		width = 120
	}

	label := " " + gotext.Get("MESSAGES") + " "
	labelLen := len([]rune(label))
	sideLen := max((width-labelLen)/2, 1)

	leftDashes := strings.Repeat("─", sideLen)
	rightDashes := strings.Repeat("─", max(width-sideLen-labelLen, 1))

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(leftDashes+label+rightDashes))

	if len(g.Messages) == 0 {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint("  "+gotext.Get("NO_MESSAGES")))
	} else {
		for _, msg := range g.Messages {
			fmt.Fprintf(t.out, "  %s\n", msg)
		}
	}

	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", width)))
}
