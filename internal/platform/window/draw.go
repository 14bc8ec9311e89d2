package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/blocken/internal/config"
	"github.com/vovakirdan/blocken/internal/games/blocken"
)

// Logical screen layout. Ebiten scales it to the window and letterboxes.
const (
	cellSize  = 24
	hudHeight = 40
	boardW    = blocken.Columns * cellSize
	boardH    = blocken.Rows * cellSize
	screenW   = boardW
	screenH   = boardH + hudHeight
	textPadX  = 8
)

// palette holds the theme colors converted once.
type palette struct {
	background color.RGBA
	grid       color.RGBA
	trail      color.RGBA
	head       color.RGBA
	grow       color.RGBA
	speed      color.RGBA
	hud        color.RGBA
	alert      color.RGBA
	shade      color.RGBA
}

func newPalette(t config.ThemeConfig) palette {
	return palette{
		background: t.Background.RGBA(),
		grid:       t.Grid.RGBA(),
		trail:      t.Trail.RGBA(),
		head:       t.Head.RGBA(),
		grow:       t.Grow.RGBA(),
		speed:      t.Speed.RGBA(),
		hud:        t.HUD.RGBA(),
		alert:      t.Alert.RGBA(),
		shade:      color.RGBA{R: 200, G: 200, B: 200, A: 200},
	}
}

// fill returns the color of a cell, or false for empty cells.
func (p palette) fill(c blocken.Cell, head bool) (color.RGBA, bool) {
	switch {
	case head:
		return p.head, true
	case c.Type == blocken.BlockTrail:
		return p.trail, true
	case c.Type == blocken.BlockGrow:
		return p.grow, true
	case c.Type == blocken.BlockSpeed:
		return p.speed, true
	}
	return color.RGBA{}, false
}

// cellRect returns the on-screen rectangle of cell n.
func cellRect(n int) (x, y, w, h float32) {
	cx, cy := blocken.XY(n)
	return float32(cx * cellSize), float32(hudHeight + cy*cellSize), cellSize, cellSize
}

func drawBoard(dst *ebiten.Image, sn blocken.Snapshot, p palette) {
	head := sn.Head()
	for n, c := range sn.Cells {
		col, ok := p.fill(c, n == head)
		if !ok {
			continue
		}
		x, y, w, h := cellRect(n)
		vector.FillRect(dst, x, y, w, h, col, false)
	}

	oy := float32(hudHeight)
	for x := 0; x <= boardW; x += cellSize {
		xf := float32(x)
		vector.StrokeLine(dst, xf, oy, xf, oy+boardH, 1.0, p.grid, false)
	}
	for y := 0; y <= boardH; y += cellSize {
		yf := oy + float32(y)
		vector.StrokeLine(dst, 0, yf, boardW, yf, 1.0, p.grid, false)
	}
}

func drawHUD(dst *ebiten.Image, face text.Face, sn blocken.Snapshot, v blocken.View, p palette) {
	drawText(dst, face, blocken.HUDLine(sn), textPadX, 4, p.hud)
	if v.Status != "" {
		drawText(dst, face, v.Status, textPadX, 22, p.alert)
	}
}

func drawOverlay(dst *ebiten.Image, face text.Face, sn blocken.Snapshot, v blocken.View, p palette) {
	line1, line2, ok := blocken.Overlay(sn, v)
	if !ok {
		return
	}

	const boxH = 60
	y := float32(hudHeight + (boardH-boxH)/2)
	vector.FillRect(dst, 0, y, boardW, boxH, p.shade, false)
	vector.StrokeRect(dst, 0, y, boardW, boxH, 2.0, p.alert, false)

	drawTextCentered(dst, face, line1, float64(y)+12, p.alert)
	drawTextCentered(dst, face, line2, float64(y)+34, p.hud)
}

func drawText(dst *ebiten.Image, face text.Face, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, face, op)
}

func drawTextCentered(dst *ebiten.Image, face text.Face, s string, y float64, c color.Color) {
	w, _ := text.Measure(s, face, 0)
	drawText(dst, face, s, (screenW-w)/2, y, c)
}
