package engine

import (
	"time"

	"github.com/vovakirdan/blocken/internal/games/blocken"
)

// Ticker is the part of the simulation the loop schedules.
type Ticker interface {
	AdvanceTick() (blocken.TickResult, error)
	TickInterval() time.Duration
	GameOn() bool
}

// Loop applies at most one tick per Poll, once more than the ticker's
// current interval has passed since the previous tick.
type Loop struct {
	clock    Clock
	ticker   Ticker
	lastTick time.Time
	paused   bool
}

// NewLoop returns a loop whose interval starts counting now.
func NewLoop(clock Clock, ticker Ticker) *Loop {
	return &Loop{
		clock:    clock,
		ticker:   ticker,
		lastTick: clock.Now(),
	}
}

// Poll advances the ticker if its interval has elapsed. ticked reports
// whether AdvanceTick was called.
func (l *Loop) Poll() (res blocken.TickResult, ticked bool, err error) {
	if l.paused || !l.ticker.GameOn() {
		return res, false, nil
	}

	now := l.clock.Now()
	if now.Sub(l.lastTick) <= l.ticker.TickInterval() {
		return res, false, nil
	}
	l.lastTick = now

	res, err = l.ticker.AdvanceTick()
	return res, true, err
}

// Pause stops ticking until Resume.
func (l *Loop) Pause() {
	l.paused = true
}

// Resume restarts ticking. The interval is measured from the moment of
// resuming so no burst of ticks follows a long pause.
func (l *Loop) Resume() {
	l.paused = false
	l.lastTick = l.clock.Now()
}

// Paused reports whether the loop is paused.
func (l *Loop) Paused() bool {
	return l.paused
}

// Reset swaps in a new ticker and restarts the interval.
func (l *Loop) Reset(ticker Ticker) {
	l.ticker = ticker
	l.lastTick = l.clock.Now()
}
