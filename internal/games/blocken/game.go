// Package blocken implements the grid simulation: a marker moves across a
// toroidal board leaving a trail that ages out, and collects grow and speed
// pickups until it runs into its own trail.
package blocken

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/blocken/internal/core"
)

// Fixed tuning values.
const (
	StartCountDown    = 1
	BaseTickInterval  = 200 * time.Millisecond
	SpeedIncrease     = 10 * time.Millisecond // Subtracted per speed pickup
	MaxSpeedInterval  = 90 * time.Millisecond // Floor for the base interval
	FastTickInterval  = 25 * time.Millisecond // While a direction key is held
	StartMovement     = core.DirLeft
	speedPickupChance = 4 // One in N replacement pickups is speed
)

// ErrHeadMissing means no cell carries the current countdown. The trail
// invariants make this unreachable; seeing it indicates a bug.
var ErrHeadMissing = errors.New("head not found")

// Options configures a new Simulation.
type Options struct {
	Seed      int64
	Placement string // PlacementFreeList (default) or PlacementRejection
}

// Simulation owns the board and all state that evolves tick by tick.
//
// A Simulation is not safe for concurrent use. Frontends drive input,
// ticking and rendering from one goroutine.
type Simulation struct {
	grid   *Grid
	placer Placer
	rng    *rand.Rand

	countDown    int
	movement     core.Direction
	baseInterval time.Duration
	tickInterval time.Duration

	gameOn bool
	cause  Cause

	ticks      uint64
	growEaten  int
	speedEaten int
}

// TickResult is returned by AdvanceTick.
type TickResult struct {
	Events   []Event
	Snapshot Snapshot
}

// New creates a simulation with the head and one grow pickup placed at
// random empty cells.
func New(opts Options) (*Simulation, error) {
	rng := rand.New(rand.NewSource(opts.Seed))
	placer, err := NewPlacer(opts.Placement, rng)
	if err != nil {
		return nil, err
	}

	s := &Simulation{
		grid:         NewGrid(),
		placer:       placer,
		rng:          rng,
		countDown:    StartCountDown,
		movement:     StartMovement,
		baseInterval: BaseTickInterval,
		tickInterval: BaseTickInterval,
		gameOn:       true,
	}

	if _, err := placer.Place(s.grid, BlockTrail); err != nil {
		return nil, fmt.Errorf("blocken: cannot place head: %w", err)
	}
	if _, err := placer.Place(s.grid, BlockGrow); err != nil {
		return nil, fmt.Errorf("blocken: cannot place first pickup: %w", err)
	}
	return s, nil
}

// AdvanceTick applies one tick.
//
// Order: locate the head, compute the target cell, age every cell, then
// evaluate the target's post-aging type. The head may therefore enter the
// tail cell that expires on this same tick.
func (s *Simulation) AdvanceTick() (TickResult, error) {
	if !s.gameOn {
		return TickResult{Snapshot: s.Snapshot()}, nil
	}

	head, ok := s.grid.FindCountdown(s.countDown)
	if !ok {
		s.end(CauseInconsistent)
		res := s.result([]Event{GameOverEvent{Cause: CauseInconsistent, Index: -1}})
		return res, fmt.Errorf("blocken: tick %d: countdown %d: %w", s.ticks+1, s.countDown, ErrHeadMissing)
	}
	target := Step(head, s.movement)

	s.grid.Age()
	s.ticks++

	var events []Event
	switch s.grid.At(target).Type {
	case BlockTrail:
		s.end(CauseCollision)
		return s.result(append(events, GameOverEvent{Cause: CauseCollision, Index: target})), nil

	case BlockGrow:
		s.countDown++
		s.growEaten++
		events = append(events, PickupConsumedEvent{
			Type:      BlockGrow,
			Index:     target,
			CountDown: s.countDown,
			Interval:  s.baseInterval,
		})
		events = s.spawnPickup(events)

	case BlockSpeed:
		s.baseInterval = max(s.baseInterval-SpeedIncrease, MaxSpeedInterval)
		s.speedEaten++
		events = append(events, PickupConsumedEvent{
			Type:      BlockSpeed,
			Index:     target,
			CountDown: s.countDown,
			Interval:  s.baseInterval,
		})
		events = s.spawnPickup(events)
	}

	// The move itself is legal even when no replacement pickup fits.
	s.grid.Set(target, Cell{Countdown: s.countDown, Type: BlockTrail})
	s.tickInterval = s.baseInterval

	return s.result(events), nil
}

// spawnPickup places the replacement pickup after one was consumed.
// Speed pickups only appear while the base interval is above the floor.
func (s *Simulation) spawnPickup(events []Event) []Event {
	kind := BlockGrow
	if s.baseInterval > MaxSpeedInterval && s.rng.Intn(speedPickupChance) == speedPickupChance-1 {
		kind = BlockSpeed
	}

	n, err := s.placer.Place(s.grid, kind)
	if err != nil {
		s.end(CausePlacementExhausted)
		return append(events, GameOverEvent{Cause: CausePlacementExhausted, Index: -1})
	}
	return append(events, PickupPlacedEvent{Type: kind, Index: n})
}

func (s *Simulation) end(cause Cause) {
	s.gameOn = false
	s.cause = cause
}

func (s *Simulation) result(events []Event) TickResult {
	return TickResult{Events: events, Snapshot: s.Snapshot()}
}

// GameOn reports whether the run is still active.
func (s *Simulation) GameOn() bool {
	return s.gameOn
}

// Cause returns why the run ended, or CauseNone.
func (s *Simulation) Cause() Cause {
	return s.cause
}

// CountDown returns the current trail length budget.
func (s *Simulation) CountDown() int {
	return s.countDown
}

// Movement returns the current movement direction.
func (s *Simulation) Movement() core.Direction {
	return s.movement
}

// BaseInterval returns the tick interval without fast-forward.
func (s *Simulation) BaseInterval() time.Duration {
	return s.baseInterval
}

// TickInterval returns the interval the control loop should wait before the
// next AdvanceTick.
func (s *Simulation) TickInterval() time.Duration {
	return s.tickInterval
}

// Cell returns the cell at index n.
func (s *Simulation) Cell(n int) Cell {
	return s.grid.At(n)
}

// Score returns the number of pickups consumed so far.
func (s *Simulation) Score() int {
	return s.growEaten + s.speedEaten
}
