package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Cell footprint of the ASCII maze drawing: "+--" per column and two text
// rows per maze row, plus the closing border.
const (
	CellWidth  = 3
	CellHeight = 2
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// FitMaze returns the largest maze that fits a width x height terminal with
// reserved lines kept free for the status bar and messages. It never returns
// less than 1x1.
func FitMaze(width, height, reserved int) (cols, rows int) {
	cols = (width - 1) / CellWidth
	rows = (height - reserved - 1) / CellHeight
	return max(cols, 1), max(rows, 1)
}
