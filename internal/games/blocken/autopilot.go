package blocken

import "github.com/vovakirdan/blocken/internal/core"

// Autopilot steers toward the nearest pickup while avoiding trail cells that
// are still occupied on the next tick. It is deterministic for a given
// snapshot and is used by the headless simulator and demos.
type Autopilot struct{}

// Next returns the direction to steer for the coming tick. ok is false when
// the head cannot be located.
func (Autopilot) Next(sn Snapshot) (dir core.Direction, ok bool) {
	head := sn.Head()
	if head < 0 {
		return sn.Movement, false
	}

	// Current movement first so ties keep the heading.
	candidates := []core.Direction{sn.Movement, core.DirLeft, core.DirRight, core.DirUp, core.DirDown}
	best, bestDist := sn.Movement, -1
	for _, d := range candidates {
		if sn.CountDown > 1 && d == sn.Movement.Opposite() {
			continue
		}
		target := Step(head, d)
		if !safeAfterAging(sn.Cells[target]) {
			continue
		}
		dist := nearestPickup(sn.Cells, target)
		if bestDist < 0 || dist < bestDist {
			best, bestDist = d, dist
		}
	}
	return best, true
}

// safeAfterAging reports whether the cell will not hold trail once the next
// tick has aged the grid.
func safeAfterAging(c Cell) bool {
	return c.Type != BlockTrail || c.Countdown <= 1
}

// nearestPickup returns the wrapped Manhattan distance from n to the closest
// pickup, or MaxPositions when there is none.
func nearestPickup(cells []Cell, n int) int {
	x, y := XY(n)
	best := MaxPositions
	for i, c := range cells {
		if !c.Type.IsPickup() {
			continue
		}
		px, py := XY(i)
		d := wrapDist(x, px, Columns) + wrapDist(y, py, Rows)
		best = min(best, d)
	}
	return best
}

func wrapDist(a, b, size int) int {
	d := a - b
	if d < 0 {
		d = -d
	}
	return min(d, size-d)
}
