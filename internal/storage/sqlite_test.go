package storage

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func run(id string, score, length int) RunRecord {
	return RunRecord{
		RunID:     id,
		Seed:      42,
		Score:     score,
		Length:    length,
		GrowEaten: length - 1,
		Ticks:     uint64(score * 10),
		Interval:  190 * time.Millisecond,
		Cause:     "collision",
		Duration:  3 * time.Second,
		StartedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestStoreOpenFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "journal.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveRun(run("a", 1, 2)); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(run("run-1", 7, 5))
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("Expected positive ID, got %d", id)
	}

	got, err := store.RunByID("run-1")
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() returned nil for a saved run")
	}

	if got.Score != 7 || got.Length != 5 || got.GrowEaten != 4 {
		t.Errorf("Unexpected record: %+v", got)
	}
	if got.Ticks != 70 {
		t.Errorf("Expected 70 ticks, got %d", got.Ticks)
	}
	if got.Interval != 190*time.Millisecond {
		t.Errorf("Expected interval 190ms, got %v", got.Interval)
	}
	if got.Duration != 3*time.Second {
		t.Errorf("Expected duration 3s, got %v", got.Duration)
	}
	if got.Cause != "collision" {
		t.Errorf("Expected cause collision, got %q", got.Cause)
	}
	if got.StartedAt.IsZero() {
		t.Error("StartedAt was not read back")
	}
}

func TestStoreRunByIDMissing(t *testing.T) {
	store := openTestStore(t)

	got, err := store.RunByID("nope")
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got != nil {
		t.Errorf("Expected nil for unknown run, got %+v", got)
	}
}

func TestStoreDuplicateRunID(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(run("dup", 1, 1)); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveRun(run("dup", 2, 2)); err == nil {
		t.Error("Expected error for duplicate run ID")
	}
}

func TestStoreTopRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(run("a", 100, 3))
	store.SaveRun(run("b", 300, 2))
	store.SaveRun(run("c", 100, 9))
	store.SaveRun(run("d", 50, 1))

	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}

	// Score descending, then length breaks ties.
	order := []string{"b", "c", "a"}
	for i, want := range order {
		if runs[i].RunID != want {
			t.Errorf("runs[%d] = %s, expected %s", i, runs[i].RunID, want)
		}
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := range 25 {
		store.SaveRun(run(fmt.Sprintf("r%d", i), i, 1))
	}

	runs, err := store.RecentRuns(0)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 20 {
		t.Errorf("Expected default limit of 20, got %d", len(runs))
	}
	if runs[0].RunID != "r24" {
		t.Errorf("Expected newest run first, got %s", runs[0].RunID)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 0 || stats.BestScore != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveRun(run("a", 10, 4))
	store.SaveRun(run("b", 30, 8))

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 {
		t.Errorf("Expected 2 runs, got %d", stats.Runs)
	}
	if stats.BestScore != 30 || stats.BestLength != 8 {
		t.Errorf("Expected best 30/8, got %d/%d", stats.BestScore, stats.BestLength)
	}
	if stats.AvgScore != 20 {
		t.Errorf("Expected average 20, got %f", stats.AvgScore)
	}
	if stats.TotalTicks != 400 {
		t.Errorf("Expected 400 ticks, got %d", stats.TotalTicks)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(run("a", 1, 1))
	store.SaveRun(run("b", 2, 1))

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
}

func TestMemoryStoresAreIndependent(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	a.SaveRun(run("only-a", 1, 1))

	runs, err := b.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected separate in-memory databases, got %d runs", len(runs))
	}
}
