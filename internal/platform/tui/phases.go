package tui

import (
	"time"

	"github.com/vovakirdan/blocken/internal/core"
)

// PhaseSynth turns terminal key messages into pressed/repeated/released
// phases. Terminals only report key presses and auto-repeats, so a held
// key is inferred from messages arriving within the repeat window and a
// release from silence longer than the release timeout.
type PhaseSynth struct {
	repeatWindow   time.Duration
	releaseTimeout time.Duration

	held bool
	dir  core.Direction
	last time.Time
}

// NewPhaseSynth creates a synthesizer with the given timings.
func NewPhaseSynth(repeatWindow, releaseTimeout time.Duration) *PhaseSynth {
	return &PhaseSynth{
		repeatWindow:   repeatWindow,
		releaseTimeout: releaseTimeout,
	}
}

// Key records a directional key message received at now.
func (p *PhaseSynth) Key(dir core.Direction, now time.Time) []core.DirectionalInput {
	var out []core.DirectionalInput

	if p.held && dir == p.dir && now.Sub(p.last) <= p.repeatWindow {
		p.last = now
		return append(out, core.DirectionalInput{Direction: dir, Phase: core.PhaseRepeated})
	}

	if p.held {
		out = append(out, core.DirectionalInput{Direction: p.dir, Phase: core.PhaseReleased})
	}
	p.held, p.dir, p.last = true, dir, now
	return append(out, core.DirectionalInput{Direction: dir, Phase: core.PhasePressed})
}

// Expire releases the held key once no message arrived for the release
// timeout. It is called once per frame.
func (p *PhaseSynth) Expire(now time.Time) (core.DirectionalInput, bool) {
	if !p.held || now.Sub(p.last) <= p.releaseTimeout {
		return core.DirectionalInput{}, false
	}
	p.held = false
	return core.DirectionalInput{Direction: p.dir, Phase: core.PhaseReleased}, true
}

// Held reports the direction currently considered held.
func (p *PhaseSynth) Held() (core.Direction, bool) {
	return p.dir, p.held
}
