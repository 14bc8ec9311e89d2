package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/blocken/internal/core"
	"github.com/vovakirdan/blocken/internal/engine"
	"github.com/vovakirdan/blocken/internal/games/blocken"
)

// drain streams s to completion and returns the sample count and peak.
func drain(s beep.Streamer) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = max(peak, smp[0], -smp[0])
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestToneLengthAndEnvelope(t *testing.T) {
	rate := beep.SampleRate(44100)
	tn := newTone(440, 100*time.Millisecond, WaveSquare, rate)

	total, peak := drain(tn)

	if want := rate.N(100 * time.Millisecond); total != want {
		t.Errorf("samples = %d, expected %d", total, want)
	}
	if peak > 1 || peak == 0 {
		t.Errorf("peak = %f, expected within (0, 1]", peak)
	}
}

func TestToneStartsSilent(t *testing.T) {
	tn := newTone(440, 50*time.Millisecond, WaveSquare, beep.SampleRate(44100))
	buf := make([][2]float64, 1)
	tn.Stream(buf)
	if buf[0][0] != 0 {
		t.Errorf("first sample = %f, expected 0 at the start of the attack", buf[0][0])
	}
}

func TestCueStreamers(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, c := range []Cue{CueGrow, CueSpeed, CueReject, CueGameOver} {
		t.Run(c.String(), func(t *testing.T) {
			total, peak := drain(c.Streamer(rate, 1))

			if want := rate.N(c.Duration()); total < want-len(cueNotes[c]) || total > want+len(cueNotes[c]) {
				t.Errorf("samples = %d, expected about %d", total, want)
			}
			if peak > 1 {
				t.Errorf("peak = %f, expected at most 1", peak)
			}
		})
	}
}

func TestCueSilentAtZeroVolume(t *testing.T) {
	_, peak := drain(CueGrow.Streamer(beep.SampleRate(44100), 0))
	if peak != 0 {
		t.Errorf("peak = %f, expected silence", peak)
	}
}

type fakePlayer struct {
	played []Cue
}

func (f *fakePlayer) Play(c Cue) {
	f.played = append(f.played, c)
}

func TestCuesObserver(t *testing.T) {
	p := &fakePlayer{}
	cues := NewCues(p)
	run := engine.Run{ID: "r"}

	events := []blocken.Event{
		blocken.PickupConsumedEvent{Type: blocken.BlockGrow},
		blocken.PickupPlacedEvent{Type: blocken.BlockSpeed},
		blocken.PickupConsumedEvent{Type: blocken.BlockSpeed},
		blocken.SteeringRejectedEvent{Requested: core.DirRight, Current: core.DirLeft},
		blocken.GameOverEvent{Cause: blocken.CauseCollision},
	}
	for _, ev := range events {
		cues.Event(run, ev)
	}

	want := []Cue{CueGrow, CueSpeed, CueReject, CueGameOver}
	if len(p.played) != len(want) {
		t.Fatalf("played %v, expected %v", p.played, want)
	}
	for i := range want {
		if p.played[i] != want[i] {
			t.Errorf("played[%d] = %v, expected %v", i, p.played[i], want[i])
		}
	}
}

func TestPlayBeforeInitialize(t *testing.T) {
	sm := NewSoundManager(0.5)
	sm.Play(CueGrow) // must not touch the speaker
	sm.Cleanup()
}
