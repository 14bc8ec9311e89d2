package audio

import (
	"time"

	"github.com/vovakirdan/blocken/internal/engine"
	"github.com/vovakirdan/blocken/internal/games/blocken"
)

// Player plays a cue.
type Player interface {
	Play(c Cue)
}

// Cues maps simulation events to sounds.
type Cues struct {
	player Player
}

// NewCues returns an observer that plays through p.
func NewCues(p Player) *Cues {
	return &Cues{player: p}
}

// CueFor returns the cue for an event, if any.
func CueFor(ev blocken.Event) (Cue, bool) {
	switch e := ev.(type) {
	case blocken.PickupConsumedEvent:
		if e.Type == blocken.BlockSpeed {
			return CueSpeed, true
		}
		return CueGrow, true
	case blocken.SteeringRejectedEvent:
		return CueReject, true
	case blocken.GameOverEvent:
		return CueGameOver, true
	}
	return 0, false
}

// RunStarted implements engine.Observer.
func (c *Cues) RunStarted(engine.Run) {}

// Event implements engine.Observer.
func (c *Cues) Event(_ engine.Run, ev blocken.Event) {
	if cue, ok := CueFor(ev); ok {
		c.player.Play(cue)
	}
}

// RunEnded implements engine.Observer.
func (c *Cues) RunEnded(engine.Run, blocken.Snapshot, time.Duration) {}

var (
	_ engine.Observer = (*Cues)(nil)
	_ Player          = (*SoundManager)(nil)
)
