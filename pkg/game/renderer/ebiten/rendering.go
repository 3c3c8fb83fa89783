package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"mazehunt/pkg/engine/world"
	"mazehunt/pkg/game/renderer"
)

// Draw implements ebiten.Game
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	e.snapshotMutex.RLock()
	snap := e.snapshot
	e.snapshotMutex.RUnlock()

	if !snap.valid || e.uiFace == nil {
		return
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if snap.grid != nil {
		e.drawMaze(screen, snap, w, h)
	}
	e.drawPanel(screen, snap, w, h)
}

// tileFor picks the largest tile that fits the grid into the map area
func tileFor(width, height, cols, rows int) int {
	tw := (width - 2*panelPadding) / cols
	th := (height - panelHeight - 2*panelPadding) / rows
	return max(min(tw, th, defaultTileSize*2), minTileSize)
}

func (e *EbitenRenderer) drawMaze(screen *ebiten.Image, snap renderSnapshot, w, h int) {
	g := snap.grid
	tile := tileFor(w, h, g.Cols(), g.Rows())

	mapW, mapH := g.Cols()*tile, g.Rows()*tile
	ox := float32(max((w-mapW)/2, panelPadding))
	oy := float32(panelPadding)
	ts := float32(tile)
	wt := float32(wallThickness)

	vector.DrawFilledRect(screen, ox-wt, oy-wt, float32(mapW)+2*wt, float32(mapH)+2*wt, colorMapBackground, false)

	g.ForEachCell(func(c world.Cell) {
		x := ox + float32(c.X)*ts
		y := oy + float32(c.Y)*ts
		vector.DrawFilledRect(screen, x, y, ts, ts, colorFloor, false)

		switch {
		case c == snap.player:
			drawMarker(screen, x, y, ts, colorPlayer)
		case snap.hasTarget && c == snap.target:
			drawMarker(screen, x, y, ts, colorTreasure)
		}

		if !g.IsOpen(c, world.North) {
			vector.DrawFilledRect(screen, x, y, ts, wt, colorWall, false)
		}
		if !g.IsOpen(c, world.West) {
			vector.DrawFilledRect(screen, x, y, wt, ts, colorWall, false)
		}
		if c.X == g.Cols()-1 {
			vector.DrawFilledRect(screen, x+ts-wt, y, wt, ts, colorWall, false)
		}
		if c.Y == g.Rows()-1 {
			vector.DrawFilledRect(screen, x, y+ts-wt, ts, wt, colorWall, false)
		}
	})
}

// drawMarker fills the middle of a tile
func drawMarker(screen *ebiten.Image, x, y, ts float32, clr color.Color) {
	inset := ts / 4
	vector.DrawFilledRect(screen, x+inset, y+inset, ts-2*inset, ts-2*inset, clr, true)
}

func (e *EbitenRenderer) drawPanel(screen *ebiten.Image, snap renderSnapshot, w, h int) {
	top := h - panelHeight
	vector.DrawFilledRect(screen, 0, float32(top), float32(w), panelHeight, colorPanelBackground, false)

	x := float64(panelPadding)
	y := float64(top + panelPadding)

	e.drawText(screen, renderer.Message("LEVEL_HEADER", snap.level), x, y, colorAction)
	y += lineHeight
	e.drawText(screen, snap.status, x, y, colorText)
	y += lineHeight
	if snap.limits != "" {
		e.drawText(screen, snap.limits, x, y, colorDenied)
		y += lineHeight
	}
	e.drawText(screen, e.FormatText("%s", gotext.Get("ACTIONS_HELP")), x, y, colorHint)
	y += lineHeight

	msgs := snap.messages
	if len(msgs) > maxPanelMessages {
		msgs = msgs[len(msgs)-maxPanelMessages:]
	}
	if len(msgs) == 0 {
		e.drawText(screen, gotext.Get("NO_MESSAGES"), x, y, colorSubtle)
	}
	for _, msg := range msgs {
		e.drawText(screen, msg, x, y, colorText)
		y += lineHeight
	}
}

func (e *EbitenRenderer) drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, e.uiFace, op)
}
