package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Cue is a short sound tied to a game event.
type Cue int

const (
	CueGrow Cue = iota
	CueSpeed
	CueReject
	CueGameOver
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueGrow:
		return "grow"
	case CueSpeed:
		return "speed"
	case CueReject:
		return "reject"
	case CueGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

type note struct {
	freq float64
	dur  time.Duration
	wave Wave
}

var cueNotes = map[Cue][]note{
	CueGrow:     {{440, 60 * time.Millisecond, WaveSine}, {660, 80 * time.Millisecond, WaveSine}},
	CueSpeed:    {{880, 40 * time.Millisecond, WaveSquare}, {1175, 40 * time.Millisecond, WaveSquare}, {1568, 60 * time.Millisecond, WaveSquare}},
	CueReject:   {{120, 100 * time.Millisecond, WaveSaw}},
	CueGameOver: {{330, 150 * time.Millisecond, WaveSaw}, {247, 150 * time.Millisecond, WaveSaw}, {165, 300 * time.Millisecond, WaveSaw}},
}

// Duration returns the length of the cue.
func (c Cue) Duration() time.Duration {
	var d time.Duration
	for _, n := range cueNotes[c] {
		d += n.dur
	}
	return d
}

// Streamer renders the cue at the given sample rate and volume.
func (c Cue) Streamer(rate beep.SampleRate, volume float64) beep.Streamer {
	notes := cueNotes[c]
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, newTone(n.freq, n.dur, n.wave, rate))
	}
	return withVolume(beep.Seq(parts...), volume*0.3)
}
