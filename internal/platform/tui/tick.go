// Package tui is the terminal frontend. It drives an engine.Session from
// the Bubble Tea update loop and draws the board with lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per frame. The session decides on each frame
// whether a simulation tick is due.
type FrameMsg time.Time

// frameCmd returns a command that sends the next frame message.
func frameCmd(frameRate int) tea.Cmd {
	if frameRate <= 0 {
		frameRate = 60
	}
	interval := time.Second / time.Duration(frameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
