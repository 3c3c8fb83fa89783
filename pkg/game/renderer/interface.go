package renderer

import (
	"mazehunt/pkg/engine/input"
	"mazehunt/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleWall
	StyleItem
	StyleAction
	StyleActionShort
	StyleDenied
	StyleSubtle
	StylePlayer
	StyleTreasure
	StyleHint
)

// Renderer defines the interface for game rendering backends
type Renderer interface {
	// Init prepares colours, fonts or the window
	Init() error

	// Clear clears the display
	Clear()

	// RenderFrame renders a complete game frame: maze, status bar and messages
	RenderFrame(g *state.Game)

	// GetInput blocks until the player asks for something
	GetInput() input.Intent

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the markup system
	FormatText(msg string, args ...any) string

	// ShowMessage displays a message outside the frame
	ShowMessage(msg string)

	// GetViewportSize returns the largest maze (rows, cols) the display can show
	GetViewportSize() (rows, cols int)

	// Close releases the display
	Close()
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}

// FormatText formats a message with markup. Without a renderer the markup is
// expanded unstyled.
func FormatText(msg string, args ...any) string {
	if Current != nil {
		return Current.FormatText(msg, args...)
	}
	return Format(Plain, msg, args...)
}

// GetViewportSize returns the active renderer's maze capacity
func GetViewportSize() (rows, cols int) {
	if Current != nil {
		return Current.GetViewportSize()
	}
	return 12, 20
}
