package blocken

import (
	"fmt"

	"github.com/vovakirdan/blocken/internal/core"
)

// Board layout on a character screen: two characters per cell plus a frame,
// below a two-line HUD.
const (
	cellWidth   = 2
	hudHeight   = 2
	BoardWidth  = Columns*cellWidth + 2
	BoardHeight = Rows + 2
	MinWidth    = BoardWidth
	MinHeight   = BoardHeight + hudHeight
)

// View carries frontend state that is drawn on top of the board.
type View struct {
	Status    string // Transient line under the HUD, e.g. a rejected turn
	Paused    bool
	Unfocused bool
}

// Glyphs for each block type.
var glyphs = map[BlockType][cellWidth]rune{
	BlockNone:  {' ', '.'},
	BlockTrail: {'#', '#'},
	BlockGrow:  {'+', '+'},
	BlockSpeed: {'>', '>'},
}

var headGlyph = [cellWidth]rune{'@', '@'}

// Render draws the HUD, board and overlays for a snapshot.
func Render(dst *core.Screen, sn Snapshot, v View) {
	dst.Clear()

	if dst.Width() < MinWidth || dst.Height() < MinHeight {
		renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", MinWidth, MinHeight))
		return
	}

	renderHUD(dst, sn, v)

	origin := core.Point{X: (dst.Width() - BoardWidth) / 2, Y: hudHeight}
	renderBoard(dst, sn, origin)

	if line1, line2, ok := Overlay(sn, v); ok {
		renderOverlay(dst, line1, line2)
	}
}

// Overlay returns the two-line message drawn over the board, if any.
// Game over takes precedence over pausing.
func Overlay(sn Snapshot, v View) (line1, line2 string, ok bool) {
	switch {
	case !sn.GameOn:
		return sn.Cause.Message(), "Press R to restart", true
	case v.Unfocused:
		return "Paused", "Focus the window to continue", true
	case v.Paused:
		return "Paused", "Press P to continue", true
	}
	return "", "", false
}

// HUDLine returns the status line shown above the board.
func HUDLine(sn Snapshot) string {
	return fmt.Sprintf("Blocken  Length: %d  Interval: %dms  Score: %d",
		sn.CountDown, sn.BaseInterval.Milliseconds(), sn.Score())
}

// BoardString renders only the framed board as plain text.
func BoardString(sn Snapshot) string {
	s := core.NewScreen(BoardWidth, BoardHeight)
	renderBoard(s, sn, core.Point{})
	return s.String()
}

func renderHUD(dst *core.Screen, sn Snapshot, v View) {
	dst.DrawText(1, 0, HUDLine(sn), core.ColorHUD)
	if v.Status != "" {
		dst.DrawText(1, 1, v.Status, core.ColorAlert)
	}
}

func renderBoard(dst *core.Screen, sn Snapshot, origin core.Point) {
	dst.DrawBox(core.NewRect(origin.X, origin.Y, BoardWidth, BoardHeight), core.ColorGrid)

	head := sn.Head()
	for n, c := range sn.Cells {
		x, y := XY(n)
		px := origin.X + 1 + x*cellWidth
		py := origin.Y + 1 + y

		g, color := glyphs[c.Type], colorFor(c.Type)
		if n == head {
			g, color = headGlyph, core.ColorHead
		}
		for i, r := range g {
			dst.Set(px+i, py, r, color)
		}
	}
}

func colorFor(t BlockType) core.Color {
	switch t {
	case BlockTrail:
		return core.ColorTrail
	case BlockGrow:
		return core.ColorGrow
	case BlockSpeed:
		return core.ColorSpeed
	default:
		return core.ColorGrid
	}
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	w := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := core.NewRect(0, 0, dst.Width(), dst.Height()).Centered(w, 5)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorAlert)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorAlert)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorHUD)
}
