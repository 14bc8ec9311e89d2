package blocken

import (
	"testing"

	"github.com/vovakirdan/blocken/internal/core"
)

func TestAutopilotHeadsForPickup(t *testing.T) {
	s := setup(t, 1, core.DirLeft, map[int]Cell{
		Index(10, 10): trail(1),
		Index(10, 5):  {Type: BlockGrow},
	})

	dir, ok := Autopilot{}.Next(s.Snapshot())

	if !ok || dir != core.DirUp {
		t.Errorf("Next = %v, %v, expected up", dir, ok)
	}
}

func TestAutopilotAvoidsTrail(t *testing.T) {
	// Pickup straight ahead but the cell in between is live trail.
	s := setup(t, 3, core.DirLeft, map[int]Cell{
		Index(9, 10):  trail(2),
		Index(10, 10): trail(3),
		Index(11, 10): trail(1),
		Index(5, 10):  {Type: BlockGrow},
	})

	dir, ok := Autopilot{}.Next(s.Snapshot())

	if !ok {
		t.Fatal("expected a direction")
	}
	if dir == core.DirLeft || dir == core.DirRight {
		t.Errorf("Next = %v, expected a vertical escape", dir)
	}
}

func TestAutopilotNoHead(t *testing.T) {
	s := setup(t, 1, core.DirLeft, nil)

	if _, ok := (Autopilot{}).Next(s.Snapshot()); ok {
		t.Error("expected ok=false without a head")
	}
}
