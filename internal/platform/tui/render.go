package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blocken/internal/config"
	"github.com/vovakirdan/blocken/internal/core"
)

// Styles maps core.Color roles to lipgloss styles.
type Styles map[core.Color]lipgloss.Style

// NewStyles builds the cell styles from a theme.
func NewStyles(theme config.ThemeConfig) Styles {
	fg := func(c config.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	}
	return Styles{
		core.ColorDefault: lipgloss.NewStyle(),
		core.ColorGrid:    fg(theme.Grid),
		core.ColorTrail:   fg(theme.Trail).Bold(true),
		core.ColorHead:    fg(theme.Head).Bold(true),
		core.ColorGrow:    fg(theme.Grow).Bold(true),
		core.ColorSpeed:   fg(theme.Speed).Bold(true),
		core.ColorHUD:     lipgloss.NewStyle().Bold(true),
		core.ColorAlert:   fg(theme.Alert).Bold(true),
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, styles Styles) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[startColor]
			if !ok {
				style = styles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
