package blocken

import "github.com/vovakirdan/blocken/internal/core"

// Steering translates directional key events into movement changes on a
// Simulation. Holding a key fast-forwards ticking; releasing it restores the
// base interval.
type Steering struct {
	sim *Simulation
}

// NewSteering returns a translator bound to sim.
func NewSteering(sim *Simulation) *Steering {
	return &Steering{sim: sim}
}

// OnDirectionalInput applies one key event. It reports whether the movement
// direction was changed (or confirmed) by the event. A refused reversal
// returns false together with a SteeringRejectedEvent; the run continues.
// Events arriving after game over are ignored.
func (st *Steering) OnDirectionalInput(in core.DirectionalInput) (bool, Event) {
	s := st.sim
	if !s.gameOn {
		return false, nil
	}

	if in.Phase == core.PhaseReleased {
		s.tickInterval = s.baseInterval
		return false, nil
	}

	s.tickInterval = FastTickInterval

	if s.countDown > 1 && in.Direction == s.movement.Opposite() {
		return false, SteeringRejectedEvent{Requested: in.Direction, Current: s.movement}
	}
	s.movement = in.Direction
	return true, nil
}
