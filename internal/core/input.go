package core

// Direction is one of the four cardinal movement directions.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	default:
		return DirUp
	}
}

// Delta returns the column/row step for one move in this direction.
// Rows grow downwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirUp:
		return 0, -1
	default:
		return 0, 1
	}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// KeyPhase describes where a directional key is in its press lifecycle.
type KeyPhase int

const (
	PhasePressed  KeyPhase = iota // Key went down this frame
	PhaseRepeated                 // Key is held and auto-repeating
	PhaseReleased                 // Key went up
)

// String returns a human-readable name for the phase.
func (p KeyPhase) String() string {
	switch p {
	case PhasePressed:
		return "pressed"
	case PhaseRepeated:
		return "repeated"
	case PhaseReleased:
		return "released"
	default:
		return "unknown"
	}
}

// DirectionalInput is a single directional key event delivered by a frontend.
type DirectionalInput struct {
	Direction Direction
	Phase     KeyPhase
}

// Action represents a non-directional intent, abstracted from physical keys.
type Action int

const (
	ActionNone       Action = iota
	ActionPause             // P - toggle pause
	ActionRestart           // R - start a new run after game over
	ActionScreenshot        // Ctrl+S - copy the board to the clipboard
	ActionRuns              // Tab - show the runs of this session
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionScreenshot:
		return "Screenshot"
	case ActionRuns:
		return "Runs"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
