package blocken

import (
	"strings"
	"testing"

	"github.com/vovakirdan/blocken/internal/core"
)

func TestBoardString(t *testing.T) {
	s := setup(t, 2, core.DirLeft, map[int]Cell{
		Index(0, 0): trail(2),
		Index(1, 0): trail(1),
		Index(3, 0): {Type: BlockGrow},
		Index(4, 0): {Type: BlockSpeed},
	})

	lines := strings.Split(BoardString(s.Snapshot()), "\n")

	if len(lines) != BoardHeight {
		t.Fatalf("got %d lines, expected %d", len(lines), BoardHeight)
	}
	if got := []rune(lines[0]); len(got) != BoardWidth {
		t.Errorf("width = %d, expected %d", len(got), BoardWidth)
	}
	if want := "│@@## .++>>"; !strings.HasPrefix(lines[1], want) {
		t.Errorf("first row = %q, expected prefix %q", lines[1], want)
	}
}

func TestRenderOverlays(t *testing.T) {
	tests := []struct {
		name     string
		over     bool
		view     View
		expected string
	}{
		{"running", false, View{Status: "Can't move up when going down!"}, "Can't move up when going down!"},
		{"paused", false, View{Paused: true}, "Press P to continue"},
		{"unfocused", false, View{Unfocused: true}, "Focus the window to continue"},
		{"game over", true, View{}, "you hit a blocken block"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := setup(t, 1, core.DirLeft, map[int]Cell{Index(5, 5): trail(1)})
			if tc.over {
				s.end(CauseCollision)
			}
			screen := core.NewScreen(80, 30)

			Render(screen, s.Snapshot(), tc.view)

			if !strings.Contains(screen.String(), tc.expected) {
				t.Errorf("screen does not contain %q:\n%s", tc.expected, screen.String())
			}
		})
	}
}

func TestRenderTooSmall(t *testing.T) {
	s := setup(t, 1, core.DirLeft, map[int]Cell{Index(5, 5): trail(1)})
	screen := core.NewScreen(MinWidth, MinHeight-1)

	Render(screen, s.Snapshot(), View{})

	if !strings.Contains(screen.String(), "too small") {
		t.Errorf("expected too-small notice, got:\n%s", screen.String())
	}
}

func TestRenderColors(t *testing.T) {
	s := setup(t, 1, core.DirLeft, map[int]Cell{
		Index(0, 0): trail(1),
		Index(1, 0): {Type: BlockGrow},
	})
	screen := core.NewScreen(MinWidth, MinHeight)

	Render(screen, s.Snapshot(), View{})

	// Board origin is (0, hudHeight); cells start one inside the frame.
	if c := screen.GetCell(1, hudHeight+1); c.Color != core.ColorHead {
		t.Errorf("head color = %v, expected head", c.Color)
	}
	if c := screen.GetCell(1+cellWidth, hudHeight+1); c.Color != core.ColorGrow {
		t.Errorf("grow color = %v, expected grow", c.Color)
	}
}

func TestOverlayPrecedence(t *testing.T) {
	s := setup(t, 1, core.DirLeft, map[int]Cell{Index(5, 5): trail(1)})
	if _, _, ok := Overlay(s.Snapshot(), View{}); ok {
		t.Error("overlay shown for a running, unpaused game")
	}

	s.end(CausePlacementExhausted)
	line1, line2, ok := Overlay(s.Snapshot(), View{Paused: true, Unfocused: true})
	if !ok || line1 != CausePlacementExhausted.Message() || line2 != "Press R to restart" {
		t.Errorf("Overlay = %q, %q, %v, expected the game-over message", line1, line2, ok)
	}
}

func TestHUDLine(t *testing.T) {
	s := setup(t, 3, core.DirLeft, map[int]Cell{Index(5, 5): trail(3)})

	want := "Blocken  Length: 3  Interval: 200ms  Score: 0"
	if got := HUDLine(s.Snapshot()); got != want {
		t.Errorf("HUDLine = %q, expected %q", got, want)
	}
}
