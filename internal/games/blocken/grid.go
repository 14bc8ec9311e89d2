package blocken

import "github.com/vovakirdan/blocken/internal/core"

// Board dimensions. The grid size is fixed.
const (
	Columns      = 25
	Rows         = 24
	MaxPositions = Columns * Rows
)

// BlockType is the content of a grid cell.
type BlockType int

const (
	BlockNone  BlockType = iota // Empty cell
	BlockTrail                  // Trail left by the marker
	BlockGrow                   // Pickup: lengthens the trail
	BlockSpeed                  // Pickup: shortens the tick interval
)

// String returns the name of the block type.
func (b BlockType) String() string {
	switch b {
	case BlockNone:
		return "none"
	case BlockTrail:
		return "trail"
	case BlockGrow:
		return "grow"
	case BlockSpeed:
		return "speed"
	default:
		return "unknown"
	}
}

// IsPickup reports whether the block is a grow or speed pickup.
func (b BlockType) IsPickup() bool {
	return b == BlockGrow || b == BlockSpeed
}

// Cell is one grid position.
// Countdown is the number of ticks until a trail block disappears; pickups
// always have Countdown 0.
type Cell struct {
	Countdown int
	Type      BlockType
}

// Grid is the fixed-size board stored in row-major order: n = y*Columns + x.
// It keeps an index of empty cells so that placement is O(1).
type Grid struct {
	cells [MaxPositions]Cell

	// free holds every index whose Type is BlockNone, in arbitrary order.
	// slot[n] is the position of n inside free, or -1 when n is occupied.
	free []int
	slot [MaxPositions]int
}

// NewGrid creates a grid with every cell empty.
func NewGrid() *Grid {
	g := &Grid{
		free: make([]int, 0, MaxPositions),
	}
	for n := range MaxPositions {
		g.slot[n] = len(g.free)
		g.free = append(g.free, n)
	}
	return g
}

// XY converts a cell index to (column, row).
func XY(n int) (x, y int) {
	return n % Columns, n / Columns
}

// Index converts (column, row) to a cell index.
func Index(x, y int) int {
	return y*Columns + x
}

// Step returns the index reached by moving one cell from n in direction d.
//
// Horizontal moves spill into the neighbouring row: stepping right from the
// last column lands on column 0 of the next row, stepping left from column 0
// lands on the last column of the previous row. Rows wrap top to bottom.
func Step(n int, d core.Direction) int {
	x, y := XY(n)
	dx, dy := d.Delta()
	x += dx
	y += dy

	if x >= Columns {
		x = 0
		y++
	}
	if x < 0 {
		x = Columns - 1
		y--
	}
	if y < 0 {
		y = Rows - 1
	}
	if y >= Rows {
		y = 0
	}
	return Index(x, y)
}

// At returns the cell at index n.
func (g *Grid) At(n int) Cell {
	return g.cells[n]
}

// Set writes a cell and keeps the free index current.
func (g *Grid) Set(n int, c Cell) {
	wasFree := g.cells[n].Type == BlockNone
	g.cells[n] = c
	isFree := c.Type == BlockNone

	switch {
	case wasFree && !isFree:
		g.removeFree(n)
	case !wasFree && isFree:
		g.addFree(n)
	}
}

// Age decrements every positive countdown by one and clears cells that
// reach zero.
func (g *Grid) Age() {
	for n := range g.cells {
		c := &g.cells[n]
		if c.Countdown <= 0 {
			continue
		}
		c.Countdown--
		if c.Countdown == 0 && c.Type != BlockNone {
			c.Type = BlockNone
			g.addFree(n)
		}
	}
}

// FindCountdown returns the first index whose countdown equals v.
func (g *Grid) FindCountdown(v int) (int, bool) {
	for n, c := range g.cells {
		if c.Countdown == v {
			return n, true
		}
	}
	return -1, false
}

// FreeCount returns the number of empty cells.
func (g *Grid) FreeCount() int {
	return len(g.free)
}

// FreeAt returns the i-th entry of the free index.
func (g *Grid) FreeAt(i int) int {
	return g.free[i]
}

// Count returns the number of cells holding the given block type.
func (g *Grid) Count(t BlockType) int {
	total := 0
	for _, c := range g.cells {
		if c.Type == t {
			total++
		}
	}
	return total
}

// Cells returns a copy of all cells in index order.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, MaxPositions)
	copy(out, g.cells[:])
	return out
}

func (g *Grid) addFree(n int) {
	g.slot[n] = len(g.free)
	g.free = append(g.free, n)
}

// removeFree swaps n with the last free entry and truncates.
func (g *Grid) removeFree(n int) {
	i := g.slot[n]
	last := g.free[len(g.free)-1]
	g.free[i] = last
	g.slot[last] = i
	g.free = g.free[:len(g.free)-1]
	g.slot[n] = -1
}
