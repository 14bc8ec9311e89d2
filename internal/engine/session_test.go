package engine

import (
	"testing"
	"time"

	"github.com/vovakirdan/blocken/internal/core"
	"github.com/vovakirdan/blocken/internal/games/blocken"
	"github.com/vovakirdan/blocken/internal/storage"
)

// recorder is an Observer that keeps everything it sees.
type recorder struct {
	started []Run
	events  []blocken.Event
	ended   []blocken.Snapshot
}

func (r *recorder) RunStarted(run Run) {
	r.started = append(r.started, run)
}

func (r *recorder) Event(_ Run, ev blocken.Event) {
	r.events = append(r.events, ev)
}

func (r *recorder) RunEnded(_ Run, final blocken.Snapshot, _ time.Duration) {
	r.ended = append(r.ended, final)
}

func newTestSession(t *testing.T, observers ...Observer) (*Session, *ManualClock) {
	t.Helper()
	clock := NewManualClock(epoch)
	s, err := NewSession(SessionOptions{
		Seed:      11,
		Clock:     clock,
		Observers: observers,
	})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s, clock
}

// step lets one tick elapse, steering with the autopilot first.
func step(t *testing.T, s *Session, clock *ManualClock) {
	t.Helper()
	if dir, ok := (blocken.Autopilot{}).Next(s.Snapshot()); ok {
		s.HandleInput(core.DirectionalInput{Direction: dir, Phase: core.PhasePressed})
		s.HandleInput(core.DirectionalInput{Direction: dir, Phase: core.PhaseReleased})
	}
	clock.Advance(blocken.BaseTickInterval + time.Millisecond)
	if err := s.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
}

func TestSessionStartsRun(t *testing.T) {
	rec := &recorder{}
	s, _ := newTestSession(t, rec)

	if len(rec.started) != 1 {
		t.Fatalf("expected one started run, got %d", len(rec.started))
	}
	run := s.Run()
	if run.ID == "" || run.Seed != 11 {
		t.Errorf("unexpected run %+v", run)
	}
	if !run.StartedAt.Equal(epoch) {
		t.Errorf("StartedAt = %v, expected %v", run.StartedAt, epoch)
	}
}

func TestSessionRestart(t *testing.T) {
	rec := &recorder{}
	s, clock := newTestSession(t, rec)
	first := s.Run()

	step(t, s, clock)
	if err := s.Restart(); err != nil {
		t.Fatalf("Restart: %v", err)
	}

	second := s.Run()
	if second.ID == first.ID {
		t.Error("restart should assign a new run ID")
	}
	if second.Seed != first.Seed+1 {
		t.Errorf("Seed = %d, expected %d", second.Seed, first.Seed+1)
	}
	if len(rec.ended) != 1 {
		t.Fatalf("expected abandoned run to be reported, got %d", len(rec.ended))
	}
	if rec.ended[0].Cause != blocken.CauseNone {
		t.Errorf("abandoned run cause = %v, expected none", rec.ended[0].Cause)
	}
	if s.Snapshot().Ticks != 0 {
		t.Errorf("new run should start at tick 0, got %d", s.Snapshot().Ticks)
	}
}

func TestSessionRejectedTurnStatus(t *testing.T) {
	rec := &recorder{}
	s, clock := newTestSession(t, rec)

	for range 2000 {
		if s.Snapshot().CountDown > 1 {
			break
		}
		step(t, s, clock)
	}
	sn := s.Snapshot()
	if sn.CountDown < 2 || !sn.GameOn {
		t.Fatalf("autopilot did not grow the trail: %+v", sn.CountDown)
	}

	s.HandleInput(core.DirectionalInput{Direction: sn.Movement.Opposite(), Phase: core.PhasePressed})

	if s.Snapshot().Movement != sn.Movement {
		t.Error("reversal should have been rejected")
	}
	if s.View().Status == "" {
		t.Fatal("expected a status message after a rejected turn")
	}
	if _, ok := rec.events[len(rec.events)-1].(blocken.SteeringRejectedEvent); !ok {
		t.Errorf("last event = %T, expected SteeringRejectedEvent", rec.events[len(rec.events)-1])
	}

	clock.Advance(DefaultStatusDuration)
	s.Update()
	if s.View().Status != "" {
		t.Errorf("status should expire, got %q", s.View().Status)
	}
}

func TestSessionFocusPause(t *testing.T) {
	s, clock := newTestSession(t)

	s.SetFocused(false)
	if !s.View().Unfocused {
		t.Error("expected unfocused view")
	}
	clock.Advance(time.Second)
	s.Update()
	if s.Snapshot().Ticks != 0 {
		t.Errorf("ticked while unfocused: %d", s.Snapshot().Ticks)
	}

	s.SetFocused(true)
	clock.Advance(blocken.BaseTickInterval + time.Millisecond)
	s.Update()
	if s.Snapshot().Ticks != 1 {
		t.Errorf("Ticks = %d after refocus, expected 1", s.Snapshot().Ticks)
	}
}

func TestSessionUserPause(t *testing.T) {
	s, clock := newTestSession(t)

	s.TogglePause()
	clock.Advance(time.Second)
	s.Update()
	if !s.View().Paused || s.Snapshot().Ticks != 0 {
		t.Errorf("expected paused session, ticks = %d", s.Snapshot().Ticks)
	}

	s.TogglePause()
	clock.Advance(blocken.BaseTickInterval + time.Millisecond)
	s.Update()
	if s.Snapshot().Ticks != 1 {
		t.Errorf("Ticks = %d after unpause, expected 1", s.Snapshot().Ticks)
	}
}

func TestJournalRecordsRuns(t *testing.T) {
	store, err := storage.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer store.Close()

	s, clock := newTestSession(t, NewJournal(store, nil))
	for range 5 {
		step(t, s, clock)
	}
	first := s.Run()
	if err := s.Restart(); err != nil {
		t.Fatalf("Restart: %v", err)
	}

	got, err := store.RunByID(first.ID)
	if err != nil {
		t.Fatalf("RunByID: %v", err)
	}
	if got == nil {
		t.Fatal("run was not journaled")
	}
	if got.Ticks != 5 {
		t.Errorf("Ticks = %d, expected 5", got.Ticks)
	}
	if got.Seed != first.Seed {
		t.Errorf("Seed = %d, expected %d", got.Seed, first.Seed)
	}
	if got.Duration != 5*(blocken.BaseTickInterval+time.Millisecond) {
		t.Errorf("Duration = %v", got.Duration)
	}
}

func TestSessionCloseRecordsUnfinishedRun(t *testing.T) {
	rec := &recorder{}
	s, _ := newTestSession(t, rec)

	s.Close()

	if len(rec.ended) != 1 || rec.ended[0].Cause != blocken.CauseNone {
		t.Fatalf("ended = %+v, expected one unfinished run", rec.ended)
	}
	if !s.Ended() {
		t.Error("session not marked ended after Close")
	}

	s.Close()
	if len(rec.ended) != 1 {
		t.Errorf("Close recorded the run %d times", len(rec.ended))
	}
}
