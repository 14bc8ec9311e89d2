package engine

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/blocken/internal/games/blocken"
)

func headless(t *testing.T, seed int64, maxTicks uint64) blocken.Snapshot {
	t.Helper()
	clock := NewManualClock(epoch)
	s, err := NewSession(SessionOptions{Seed: seed, Clock: clock})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	final, err := RunHeadless(s, clock, blocken.Autopilot{}, maxTicks)
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	return final
}

func TestRunHeadlessStopsAtLimit(t *testing.T) {
	final := headless(t, 21, 50)

	if final.GameOn && final.Ticks != 50 {
		t.Errorf("ticks = %d, expected 50 for a run still going", final.Ticks)
	}
	if final.Ticks > 50 {
		t.Errorf("ticks = %d, expected at most 50", final.Ticks)
	}
}

func TestRunHeadlessDeterministic(t *testing.T) {
	a := headless(t, 8, 400)
	b := headless(t, 8, 400)

	if !reflect.DeepEqual(a, b) {
		t.Error("same seed produced different runs")
	}
	if a.Score() == 0 {
		t.Error("autopilot collected nothing in 400 ticks")
	}
}
