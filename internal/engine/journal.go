package engine

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blocken/internal/games/blocken"
	"github.com/vovakirdan/blocken/internal/storage"
)

// Journal records every finished run in the run store.
type Journal struct {
	store  *storage.Store
	logger *log.Logger
}

// NewJournal returns an observer writing to store.
func NewJournal(store *storage.Store, logger *log.Logger) *Journal {
	return &Journal{store: store, logger: logger}
}

// RunStarted implements Observer.
func (j *Journal) RunStarted(Run) {}

// Event implements Observer.
func (j *Journal) Event(Run, blocken.Event) {}

// RunEnded implements Observer.
func (j *Journal) RunEnded(run Run, final blocken.Snapshot, elapsed time.Duration) {
	_, err := j.store.SaveRun(storage.RunRecord{
		RunID:      run.ID,
		Seed:       run.Seed,
		Score:      final.Score(),
		Length:     final.CountDown,
		GrowEaten:  final.GrowEaten,
		SpeedEaten: final.SpeedEaten,
		Ticks:      final.Ticks,
		Interval:   final.BaseInterval,
		Cause:      final.Cause.String(),
		Duration:   elapsed,
		StartedAt:  run.StartedAt,
	})
	if err != nil && j.logger != nil {
		// Best-effort: a lost journal entry never stops the game.
		j.logger.Warn("cannot record run", "run", run.ID, "err", err)
	}
}

var _ Observer = (*Journal)(nil)
