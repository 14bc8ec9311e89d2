// Package window is the desktop frontend. It drives an engine.Session from
// ebiten's update loop and draws the board with vector shapes.
package window

import (
	"io"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/blocken/internal/core"
	"github.com/vovakirdan/blocken/internal/engine"
	"github.com/vovakirdan/blocken/internal/games/blocken"
	"github.com/vovakirdan/blocken/internal/registry"
)

// FrontendID is the registry ID of the window frontend.
const FrontendID = "window"

func init() {
	registry.Register(FrontendID, func() registry.Frontend { return Frontend{} })
}

// Game implements ebiten.Game for a blocken session.
type Game struct {
	session *engine.Session
	palette palette
	face    text.Face
	logger  *log.Logger
	focused bool

	copyText func(string) error
}

// NewGame creates the ebiten game for a running session.
func NewGame(session *engine.Session, env registry.Env) *Game {
	logger := env.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		session:  session,
		palette:  newPalette(env.Config.Theme),
		face:     text.NewGoXFace(basicfont.Face7x13),
		logger:   logger,
		focused:  true,
		copyText: clipboard.WriteAll,
	}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if focused := ebiten.IsFocused(); focused != g.focused {
		g.focused = focused
		g.session.SetFocused(focused)
	}

	if err := g.apply(pollAction()); err != nil {
		return err
	}
	for _, in := range pollSteering() {
		g.session.HandleInput(in)
	}

	// Tick errors end the run and are logged by the session.
	_ = g.session.Update()
	return nil
}

// apply performs a non-directional action. Quit is reported as
// ebiten.Termination.
func (g *Game) apply(a core.Action) error {
	switch a {
	case core.ActionQuit:
		return ebiten.Termination
	case core.ActionPause:
		g.session.TogglePause()
	case core.ActionRestart:
		return g.session.Restart()
	case core.ActionScreenshot:
		g.copyBoard()
	}
	return nil
}

func (g *Game) copyBoard() {
	if err := g.copyText(blocken.BoardString(g.session.Snapshot())); err != nil {
		g.logger.Warn("clipboard unavailable", "err", err)
		g.session.Notify("Clipboard unavailable")
		return
	}
	g.session.Notify("Board copied to clipboard")
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	sn := g.session.Snapshot()
	v := g.session.View()

	screen.Fill(g.palette.background)
	drawBoard(screen, sn, g.palette)
	drawHUD(screen, g.face, sn, v, g.palette)
	drawOverlay(screen, g.face, sn, v, g.palette)
}

// Layout implements ebiten.Game.
func (g *Game) Layout(_, _ int) (int, int) {
	return screenW, screenH
}

// Frontend runs sessions in a desktop window.
type Frontend struct{}

// ID implements registry.Frontend.
func (Frontend) ID() string { return FrontendID }

// Title implements registry.Frontend.
func (Frontend) Title() string { return "Desktop window (Ebiten)" }

// Run implements registry.Frontend.
func (Frontend) Run(env registry.Env) error {
	session, err := engine.NewSession(env.SessionOptions())
	if err != nil {
		return err
	}
	defer session.Close()

	size := env.Config.Window.Size
	ebiten.SetWindowTitle(env.Config.Window.Title)
	ebiten.SetWindowSize(size, size)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetRunnableOnUnfocused(true)

	return ebiten.RunGame(NewGame(session, env))
}
