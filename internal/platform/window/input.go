package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/blocken/internal/core"
)

// Key repeat timing in ticks at ebiten's default 60 TPS.
const (
	repeatDelay    = 15
	repeatInterval = 2
)

// steeringKeys maps physical keys to directions.
var steeringKeys = map[core.Direction][]ebiten.Key{
	core.DirLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA, ebiten.KeyH},
	core.DirRight: {ebiten.KeyArrowRight, ebiten.KeyD, ebiten.KeyL},
	core.DirUp:    {ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyK},
	core.DirDown:  {ebiten.KeyArrowDown, ebiten.KeyS, ebiten.KeyJ},
}

// steeringOrder fixes the order directions are polled in.
var steeringOrder = []core.Direction{core.DirLeft, core.DirRight, core.DirUp, core.DirDown}

// phaseFor returns the phase of a key that has been down for held ticks
// (1 on the tick it went down), or released on the tick after it went up.
func phaseFor(held int, released bool) (core.KeyPhase, bool) {
	switch {
	case released:
		return core.PhaseReleased, true
	case held == 1:
		return core.PhasePressed, true
	case held > repeatDelay && (held-repeatDelay)%repeatInterval == 0:
		return core.PhaseRepeated, true
	}
	return 0, false
}

// pollSteering collects the directional inputs of this tick.
func pollSteering() []core.DirectionalInput {
	var out []core.DirectionalInput
	for _, dir := range steeringOrder {
		for _, k := range steeringKeys[dir] {
			phase, ok := phaseFor(inpututil.KeyPressDuration(k), inpututil.IsKeyJustReleased(k))
			if ok {
				out = append(out, core.DirectionalInput{Direction: dir, Phase: phase})
			}
		}
	}
	return out
}

// pollAction returns the action requested on this tick.
func pollAction() core.Action {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return core.ActionQuit
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS):
		return core.ActionScreenshot
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		return core.ActionPause
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		return core.ActionRestart
	}
	return core.ActionNone
}
