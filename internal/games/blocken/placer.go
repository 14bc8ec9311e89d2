package blocken

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrNoEmptyCell is returned when a pickup cannot be placed.
var ErrNoEmptyCell = errors.New("no empty cell")

// Placer chooses an empty cell for a new block and writes it.
type Placer interface {
	// Place writes a block of type t into an empty cell of g and returns its
	// index. It returns ErrNoEmptyCell when no cell could be found.
	Place(g *Grid, t BlockType) (int, error)
}

// Placement strategy names accepted by NewPlacer.
const (
	PlacementFreeList  = "freelist"
	PlacementRejection = "rejection"
)

// NewPlacer returns the placement strategy with the given name.
func NewPlacer(name string, rng *rand.Rand) (Placer, error) {
	switch name {
	case "", PlacementFreeList:
		return &FreeListPlacer{rng: rng}, nil
	case PlacementRejection:
		return &RejectionPlacer{rng: rng, maxTries: MaxPositions * MaxPositions}, nil
	default:
		return nil, fmt.Errorf("blocken: unknown placement strategy %q", name)
	}
}

// FreeListPlacer draws uniformly from the grid's index of empty cells.
// Failure is exact: it only fails when the board is full.
type FreeListPlacer struct {
	rng *rand.Rand
}

// Place implements Placer.
func (p *FreeListPlacer) Place(g *Grid, t BlockType) (int, error) {
	free := g.FreeCount()
	if free == 0 {
		return -1, ErrNoEmptyCell
	}
	n := g.FreeAt(p.rng.Intn(free))
	g.Set(n, Cell{Type: t, Countdown: initialCountdown(t)})
	return n, nil
}

// RejectionPlacer draws random indices over the whole board until one is
// empty, giving up after maxTries draws.
type RejectionPlacer struct {
	rng      *rand.Rand
	maxTries int
}

// Place implements Placer.
func (p *RejectionPlacer) Place(g *Grid, t BlockType) (int, error) {
	for range p.maxTries {
		n := p.rng.Intn(MaxPositions)
		if g.At(n).Type != BlockNone {
			continue
		}
		g.Set(n, Cell{Type: t, Countdown: initialCountdown(t)})
		return n, nil
	}
	return -1, ErrNoEmptyCell
}

// initialCountdown returns the countdown a freshly placed block starts with.
// Only the head is placed with a countdown; pickups are static.
func initialCountdown(t BlockType) int {
	if t == BlockTrail {
		return StartCountDown
	}
	return 0
}
