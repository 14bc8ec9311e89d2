package engine

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/blocken/internal/core"
	"github.com/vovakirdan/blocken/internal/games/blocken"
)

// DefaultStatusDuration is how long a rejected-turn message stays visible.
const DefaultStatusDuration = 1500 * time.Millisecond

// Run identifies one game from New to game over.
type Run struct {
	ID        string
	Seed      int64
	StartedAt time.Time
}

// Observer receives simulation events. Observers are called synchronously
// from the session's goroutine and must not block.
type Observer interface {
	RunStarted(run Run)
	Event(run Run, ev blocken.Event)
	RunEnded(run Run, final blocken.Snapshot, elapsed time.Duration)
}

// SessionOptions configures a Session.
type SessionOptions struct {
	Seed           int64 // 0 derives seeds from the clock
	Placement      string
	Clock          Clock
	Logger         *log.Logger
	Observers      []Observer
	StatusDuration time.Duration
}

// Session owns the running simulation, its steering and its control loop,
// and starts a fresh run on Restart. All methods must be called from the
// frontend's update goroutine.
type Session struct {
	opts   SessionOptions
	clock  Clock
	logger *log.Logger

	sim   *blocken.Simulation
	steer *blocken.Steering
	loop  *Loop

	run     Run
	runs    int
	ended   bool
	playing time.Duration // Unpaused time in the current run
	resumed time.Time

	userPaused bool
	unfocused  bool

	status      string
	statusUntil time.Time
}

// NewSession creates a session and starts its first run.
func NewSession(opts SessionOptions) (*Session, error) {
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.StatusDuration <= 0 {
		opts.StatusDuration = DefaultStatusDuration
	}

	s := &Session{
		opts:   opts,
		clock:  opts.Clock,
		logger: opts.Logger,
	}
	if err := s.start(); err != nil {
		return nil, err
	}
	return s, nil
}

// start begins a new run with the next seed.
func (s *Session) start() error {
	seed := s.opts.Seed
	if seed == 0 {
		seed = s.clock.Now().UnixNano()
	}
	seed += int64(s.runs)

	sim, err := blocken.New(blocken.Options{Seed: seed, Placement: s.opts.Placement})
	if err != nil {
		return fmt.Errorf("engine: cannot start run: %w", err)
	}

	now := s.clock.Now()
	s.sim = sim
	s.steer = blocken.NewSteering(sim)
	if s.loop == nil {
		s.loop = NewLoop(s.clock, sim)
	} else {
		s.loop.Reset(sim)
	}
	s.run = Run{ID: uuid.NewString(), Seed: seed, StartedAt: now}
	s.runs++
	s.ended = false
	s.playing = 0
	s.resumed = now
	s.status = ""
	s.userPaused = false
	s.applyPause()

	s.logger.Info("run started", "run", s.run.ID, "seed", seed, "placement", s.opts.Placement)
	for _, o := range s.opts.Observers {
		o.RunStarted(s.run)
	}
	return nil
}

// Restart ends the current run, recording it if it was still going, and
// starts a new one.
func (s *Session) Restart() error {
	if !s.ended {
		s.finish()
	}
	return s.start()
}

// Close records the current run if it is still going. The session must not
// be used afterwards.
func (s *Session) Close() {
	if !s.ended {
		s.finish()
	}
}

// HandleInput forwards a directional key event to the steering.
func (s *Session) HandleInput(in core.DirectionalInput) {
	if s.loop.Paused() {
		return
	}
	accepted, ev := s.steer.OnDirectionalInput(in)
	if ev == nil {
		if accepted {
			s.logger.Debug("turn", "dir", in.Direction, "phase", in.Phase)
		}
		return
	}
	if rej, ok := ev.(blocken.SteeringRejectedEvent); ok {
		s.setStatus(rej.Message())
	}
	s.dispatch(ev)
}

// Update polls the loop, applying a tick when one is due. It returns the
// error of a failed tick; the run is over in that case.
func (s *Session) Update() error {
	if s.status != "" && !s.clock.Now().Before(s.statusUntil) {
		s.status = ""
	}

	res, ticked, err := s.loop.Poll()
	if !ticked {
		return nil
	}
	for _, ev := range res.Events {
		s.dispatch(ev)
	}
	if err != nil {
		s.logger.Error("tick failed", "run", s.run.ID, "err", err)
	}
	if !s.sim.GameOn() && !s.ended {
		s.finish()
	}
	return err
}

// dispatch logs an event and forwards it to observers.
func (s *Session) dispatch(ev blocken.Event) {
	switch e := ev.(type) {
	case blocken.PickupConsumedEvent:
		s.logger.Info("pickup consumed", "type", e.Type, "countdown", e.CountDown, "interval", e.Interval)
	case blocken.PickupPlacedEvent:
		x, y := blocken.XY(e.Index)
		s.logger.Debug("pickup placed", "type", e.Type, "x", x, "y", y)
	case blocken.GameOverEvent:
		s.logger.Info("game over", "run", s.run.ID, "cause", e.Cause)
	case blocken.SteeringRejectedEvent:
		s.logger.Debug("turn rejected", "requested", e.Requested, "current", e.Current)
	}
	for _, o := range s.opts.Observers {
		o.Event(s.run, ev)
	}
}

func (s *Session) finish() {
	s.ended = true
	elapsed := s.elapsed()
	final := s.sim.Snapshot()
	s.logger.Info("run ended",
		"run", s.run.ID,
		"cause", final.Cause,
		"score", final.Score(),
		"length", final.CountDown,
		"ticks", final.Ticks,
		"elapsed", elapsed.Round(time.Millisecond),
	)
	for _, o := range s.opts.Observers {
		o.RunEnded(s.run, final, elapsed)
	}
}

// SetFocused pauses ticking while the frontend has lost focus.
func (s *Session) SetFocused(focused bool) {
	if s.unfocused == !focused {
		return
	}
	s.unfocused = !focused
	s.logger.Debug("focus changed", "focused", focused)
	s.applyPause()
}

// TogglePause pauses or resumes the run at the player's request.
func (s *Session) TogglePause() {
	if s.ended {
		return
	}
	s.userPaused = !s.userPaused
	s.applyPause()
}

func (s *Session) applyPause() {
	want := s.userPaused || s.unfocused
	switch {
	case want && !s.loop.Paused():
		s.playing += s.clock.Now().Sub(s.resumed)
		s.loop.Pause()
	case !want && s.loop.Paused():
		s.resumed = s.clock.Now()
		s.loop.Resume()
	}
}

func (s *Session) elapsed() time.Duration {
	if s.loop.Paused() {
		return s.playing
	}
	return s.playing + s.clock.Now().Sub(s.resumed)
}

// Notify shows a transient status message.
func (s *Session) Notify(msg string) {
	s.setStatus(msg)
}

func (s *Session) setStatus(msg string) {
	s.status = msg
	s.statusUntil = s.clock.Now().Add(s.opts.StatusDuration)
}

// Snapshot returns the current simulation state.
func (s *Session) Snapshot() blocken.Snapshot {
	return s.sim.Snapshot()
}

// View returns the overlay state for renderers.
func (s *Session) View() blocken.View {
	return blocken.View{
		Status:    s.status,
		Paused:    s.userPaused,
		Unfocused: s.unfocused,
	}
}

// Run returns the identity of the current run.
func (s *Session) Run() Run {
	return s.run
}

// Ended reports whether the current run is over.
func (s *Session) Ended() bool {
	return s.ended
}
