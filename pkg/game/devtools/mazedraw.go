// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"io"
	"strings"

	"mazehunt/pkg/engine/world"
)

// Overlay returns the two-column body drawn inside a cell. An empty string
// leaves the cell blank.
type Overlay func(c world.Cell) string

// Wall glyphs. Every cell is "+--" wide so the drawing is CellWidth columns
// per maze column.
const (
	corner   = "+"
	wallH    = "--"
	openH    = "  "
	wallV    = "|"
	openV    = " "
	emptyBox = "  "
)

// MazeLines draws g as ASCII art, one string per output line
func MazeLines(g *world.Grid, overlay Overlay) []string {
	lines := make([]string, 0, g.Rows()*2+1)

	var top, body strings.Builder
	for y := 0; y < g.Rows(); y++ {
		top.Reset()
		body.Reset()
		for x := 0; x < g.Cols(); x++ {
			c := world.Cell{X: x, Y: y}

			top.WriteString(corner)
			if g.IsOpen(c, world.North) {
				top.WriteString(openH)
			} else {
				top.WriteString(wallH)
			}

			if g.IsOpen(c, world.West) {
				body.WriteString(openV)
			} else {
				body.WriteString(wallV)
			}
			content := emptyBox
			if overlay != nil {
				if s := overlay(c); s != "" {
					content = s
				}
			}
			body.WriteString(content)
		}
		top.WriteString(corner)
		body.WriteString(wallV)
		lines = append(lines, top.String(), body.String())
	}

	lines = append(lines, strings.Repeat(corner+wallH, g.Cols())+corner)
	return lines
}

// WriteMaze writes the drawing of g to w
func WriteMaze(w io.Writer, g *world.Grid, overlay Overlay) error {
	for _, line := range MazeLines(g, overlay) {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}
