package blocken

import (
	"time"

	"github.com/vovakirdan/blocken/internal/core"
)

// Snapshot is a read-only copy of the simulation state handed to renderers
// once per frame and used by determinism tests.
type Snapshot struct {
	Cells        []Cell
	CountDown    int
	Movement     core.Direction
	BaseInterval time.Duration
	TickInterval time.Duration
	GameOn       bool
	Cause        Cause
	Ticks        uint64
	GrowEaten    int
	SpeedEaten   int
}

// Snapshot returns the current state. Cells is a fresh copy.
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{
		Cells:        s.grid.Cells(),
		CountDown:    s.countDown,
		Movement:     s.movement,
		BaseInterval: s.baseInterval,
		TickInterval: s.tickInterval,
		GameOn:       s.gameOn,
		Cause:        s.cause,
		Ticks:        s.ticks,
		GrowEaten:    s.growEaten,
		SpeedEaten:   s.speedEaten,
	}
}

// Head returns the index of the head cell, or -1 if there is none.
func (sn Snapshot) Head() int {
	for n, c := range sn.Cells {
		if c.Type == BlockTrail && c.Countdown == sn.CountDown {
			return n
		}
	}
	return -1
}

// TrailLen returns the number of trail cells.
func (sn Snapshot) TrailLen() int {
	total := 0
	for _, c := range sn.Cells {
		if c.Type == BlockTrail {
			total++
		}
	}
	return total
}

// Score returns the number of pickups consumed.
func (sn Snapshot) Score() int {
	return sn.GrowEaten + sn.SpeedEaten
}
