package blocken

import (
	"time"

	"github.com/vovakirdan/blocken/internal/core"
)

// Event is something observable that happened during a tick or while
// steering. Frontends, the audio cues and the run journal consume events.
type Event interface {
	blockenEvent()
}

// PickupConsumedEvent is emitted when the head moves onto a pickup.
type PickupConsumedEvent struct {
	Type      BlockType
	Index     int
	CountDown int           // Trail length budget after the pickup took effect
	Interval  time.Duration // Base tick interval after the pickup took effect
}

func (PickupConsumedEvent) blockenEvent() {}

// PickupPlacedEvent is emitted when a replacement pickup is placed.
type PickupPlacedEvent struct {
	Type  BlockType
	Index int
}

func (PickupPlacedEvent) blockenEvent() {}

// GameOverEvent is emitted once, on the tick that ends the run.
type GameOverEvent struct {
	Cause Cause
	Index int // Cell the head tried to enter, -1 if unknown
}

func (GameOverEvent) blockenEvent() {}

// SteeringRejectedEvent is emitted when a reversal is refused.
type SteeringRejectedEvent struct {
	Requested core.Direction
	Current   core.Direction
}

func (SteeringRejectedEvent) blockenEvent() {}

// Message returns the user-facing explanation for the rejection.
func (e SteeringRejectedEvent) Message() string {
	return "Can't move " + e.Requested.String() + " when going " + e.Current.String() + "!"
}

// Cause describes why a run ended.
type Cause int

const (
	CauseNone               Cause = iota // Still running
	CauseCollision                       // Head moved onto a trail block
	CausePlacementExhausted              // No empty cell left for a pickup
	CauseInconsistent                    // Head could not be located
)

// String returns a short identifier for the cause.
func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseCollision:
		return "collision"
	case CausePlacementExhausted:
		return "placement_exhausted"
	case CauseInconsistent:
		return "inconsistent"
	default:
		return "unknown"
	}
}

// Message returns the game-over line shown to the player.
func (c Cause) Message() string {
	switch c {
	case CauseCollision:
		return "Game over, you hit a blocken block"
	case CausePlacementExhausted:
		return "Game over, we couldn't find a place to put a grow or speed block"
	case CauseInconsistent:
		return "Game over, internal error"
	default:
		return ""
	}
}
