// Package ebiten provides an Ebiten-based 2D graphical renderer for the maze.
package ebiten

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/leonelquinteros/gotext"
	"golang.org/x/image/font/gofont/gomono"

	engineinput "mazehunt/pkg/engine/input"
	"mazehunt/pkg/game/renderer"
)

// EbitenRenderer draws the maze in a window.
//
// The game loop runs on its own goroutine and talks to the renderer through
// two channels: RenderFrame stores a snapshot that Draw reads, and Update
// forwards key presses on inputChan for GetInput to collect. ebiten.RunGame
// must own the main goroutine, see Run.
type EbitenRenderer struct {
	windowWidth  int
	windowHeight int

	inputChan chan engineinput.Intent
	done      chan struct{}
	closeOnce sync.Once

	snapshotMutex sync.RWMutex
	snapshot      renderSnapshot

	fontSource *text.GoTextFaceSource
	uiFace     *text.GoTextFace
}

var _ renderer.Renderer = (*EbitenRenderer)(nil)

// New creates a new Ebiten renderer
func New() *EbitenRenderer {
	return &EbitenRenderer{
		windowWidth:  defaultWindowWidth,
		windowHeight: defaultWindowHeight,
		inputChan:    make(chan engineinput.Intent, inputBufferSize),
		done:         make(chan struct{}),
	}
}

// Init loads the font and configures the window
func (e *EbitenRenderer) Init() error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return fmt.Errorf("loading font: %w", err)
	}
	e.fontSource = src
	e.uiFace = &text.GoTextFace{Source: src, Size: uiFontSize}

	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(gotext.Get("WINDOW_TITLE"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return nil
}

// Run starts the Ebiten event loop and blocks until the window closes or
// Close is called. It must be called from the main goroutine.
func (e *EbitenRenderer) Run() error {
	defer e.Close()

	err := ebiten.RunGame(e)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Update implements ebiten.Game
func (e *EbitenRenderer) Update() error {
	select {
	case <-e.done:
		return ebiten.Termination
	default:
	}

	if intent, ok := e.checkInput(); ok {
		// Drop the key if the game loop is behind rather than stall the frame.
		select {
		case e.inputChan <- intent:
		default:
		}
	}
	return nil
}

// Layout implements ebiten.Game
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.snapshotMutex.Lock()
	e.windowWidth, e.windowHeight = outsideWidth, outsideHeight
	e.snapshotMutex.Unlock()
	return outsideWidth, outsideHeight
}

// GetInput blocks until a key is pressed. A closed window quits.
func (e *EbitenRenderer) GetInput() engineinput.Intent {
	select {
	case intent := <-e.inputChan:
		return intent
	case <-e.done:
		return engineinput.Intent{Action: engineinput.ActionQuit}
	}
}

// Clear is a no-op; every Draw repaints the whole screen
func (e *EbitenRenderer) Clear() {}

// StyleText returns text unchanged; colour is applied per element in Draw
func (e *EbitenRenderer) StyleText(s string, _ renderer.TextStyle) string {
	return s
}

// FormatText expands markup without terminal escape codes
func (e *EbitenRenderer) FormatText(msg string, args ...any) string {
	return renderer.Format(e.StyleText, msg, args...)
}

// ShowMessage adds a message to the panel until the next frame replaces it
func (e *EbitenRenderer) ShowMessage(msg string) {
	e.snapshotMutex.Lock()
	defer e.snapshotMutex.Unlock()
	e.snapshot.messages = appendCapped(e.snapshot.messages, msg, maxPanelMessages)
}

// GetViewportSize returns how many maze rows and columns fit the window
func (e *EbitenRenderer) GetViewportSize() (rows, cols int) {
	e.snapshotMutex.RLock()
	w, h := e.windowWidth, e.windowHeight
	e.snapshotMutex.RUnlock()
	return viewportCells(w, h, defaultTileSize)
}

// Close stops the event loop and unblocks GetInput. Safe to call twice.
func (e *EbitenRenderer) Close() {
	e.closeOnce.Do(func() { close(e.done) })
}

// viewportCells is the number of whole tiles that fit above the panel
func viewportCells(width, height, tile int) (rows, cols int) {
	cols = max((width-2*panelPadding)/tile, 1)
	rows = max((height-panelHeight-2*panelPadding)/tile, 1)
	return rows, cols
}

func appendCapped(msgs []string, msg string, limit int) []string {
	msgs = append(msgs, msg)
	if len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}
	return msgs
}
