package engine

import (
	"time"

	"github.com/vovakirdan/blocken/internal/core"
	"github.com/vovakirdan/blocken/internal/games/blocken"
)

// Pilot chooses the next direction for a headless run.
type Pilot interface {
	Next(sn blocken.Snapshot) (core.Direction, bool)
}

// RunHeadless drives the session's current run without a frontend until it
// ends or maxTicks ticks have been applied. clock must be the session's
// clock. Each steering decision is a tap: pressed, then released.
func RunHeadless(s *Session, clock *ManualClock, pilot Pilot, maxTicks uint64) (blocken.Snapshot, error) {
	for !s.Ended() && s.Snapshot().Ticks < maxTicks {
		if dir, ok := pilot.Next(s.Snapshot()); ok {
			s.HandleInput(core.DirectionalInput{Direction: dir, Phase: core.PhasePressed})
			s.HandleInput(core.DirectionalInput{Direction: dir, Phase: core.PhaseReleased})
		}
		clock.Advance(s.Snapshot().TickInterval + time.Millisecond)
		if err := s.Update(); err != nil {
			return s.Snapshot(), err
		}
	}
	return s.Snapshot(), nil
}
