package tui

import (
	"io"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blocken/internal/core"
	"github.com/vovakirdan/blocken/internal/engine"
	"github.com/vovakirdan/blocken/internal/games/blocken"
	"github.com/vovakirdan/blocken/internal/registry"
)

// FrontendID is the registry ID of the terminal frontend.
const FrontendID = "terminal"

func init() {
	registry.Register(FrontendID, func() registry.Frontend { return Frontend{} })
}

// Model is the Bubble Tea model for a blocken session.
type Model struct {
	session *engine.Session
	screen  *core.Screen
	styles  Styles
	keys    KeyMap
	help    help.Model
	synth   *PhaseSynth
	logger  *log.Logger

	runs          RunsModel
	showRuns      bool
	pausedForRuns bool

	frameRate int
	quitting  bool

	copyText func(string) error
	now      func() time.Time
}

// NewModel creates the model for a running session.
func NewModel(session *engine.Session, env registry.Env) Model {
	logger := env.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	w, h := env.Runtime.ScreenW, env.Runtime.ScreenH

	return Model{
		session:   session,
		screen:    core.NewScreen(w, max(h-1, 1)),
		styles:    NewStyles(env.Config.Theme),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		synth:     NewPhaseSynth(env.Config.Input.RepeatWindow(), env.Config.Input.ReleaseTimeout()),
		logger:    logger,
		runs:      NewRunsModel(env.Store, w, h),
		frameRate: env.Runtime.FrameRate,
		copyText:  clipboard.WriteAll,
		now:       time.Now,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.frameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showRuns {
			return m.handleRunsKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		m.runs.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.FocusMsg:
		m.session.SetFocused(true)
		return m, nil

	case tea.BlurMsg:
		m.session.SetFocused(false)
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input while the board is shown.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if dir, ok := m.keys.Direction(msg); ok {
		for _, in := range m.synth.Key(dir, m.now()) {
			m.session.HandleInput(in)
		}
		return m, nil
	}

	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionPause:
		m.session.TogglePause()

	case core.ActionRestart:
		if err := m.session.Restart(); err != nil {
			m.logger.Error("restart failed", "err", err)
			m.quitting = true
			return m, tea.Quit
		}

	case core.ActionScreenshot:
		m.copyBoard()

	case core.ActionRuns:
		if !m.session.View().Paused && !m.session.Ended() {
			m.session.TogglePause()
			m.pausedForRuns = true
		}
		m.runs.Reload()
		m.showRuns = true
	}

	return m, nil
}

// handleRunsKey processes keyboard input while the runs view is shown.
func (m Model) handleRunsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.runs.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.runs.keys.Back):
		m.showRuns = false
		if m.pausedForRuns {
			m.pausedForRuns = false
			m.session.TogglePause()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.runs, cmd = m.runs.Update(msg)
	return m, cmd
}

// handleFrame releases stale keys and lets the session tick.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if in, ok := m.synth.Expire(now); ok {
		m.session.HandleInput(in)
	}
	// Tick errors end the run and are logged by the session; the player
	// can still restart.
	_ = m.session.Update()

	return m, frameCmd(m.frameRate)
}

// copyBoard puts the plain-text board on the system clipboard.
func (m Model) copyBoard() {
	board := blocken.BoardString(m.session.Snapshot())
	if err := m.copyText(board); err != nil {
		m.logger.Warn("clipboard unavailable", "err", err)
		m.session.Notify("Clipboard unavailable")
		return
	}
	m.logger.Debug("board copied", "run", m.session.Run().ID)
	m.session.Notify("Board copied to clipboard")
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showRuns {
		return m.runs.View()
	}

	blocken.Render(m.screen, m.session.Snapshot(), m.session.View())

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen, m.styles) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Frontend runs sessions in the terminal.
type Frontend struct{}

// ID implements registry.Frontend.
func (Frontend) ID() string { return FrontendID }

// Title implements registry.Frontend.
func (Frontend) Title() string { return "Terminal (Bubble Tea)" }

// Run implements registry.Frontend.
func (Frontend) Run(env registry.Env) error {
	session, err := engine.NewSession(env.SessionOptions())
	if err != nil {
		return err
	}
	defer session.Close()

	p := tea.NewProgram(
		NewModel(session, env),
		tea.WithAltScreen(),   // Use alternate screen buffer
		tea.WithReportFocus(), // Pause while the terminal is unfocused
	)

	_, err = p.Run()
	return err
}
