package storage

import (
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreStartsEmpty(t *testing.T) {
	store := openTestStore(t)

	sum, err := store.Summary()
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if sum != (SessionSummary{}) {
		t.Errorf("Summary() = %+v, want zero", sum)
	}

	runs, err := store.TopRuns(5)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	records := []RunRecord{
		{Score: 100, ElapsedMillis: 30000, Kills: 10},
		{Score: 50, ElapsedMillis: 12000, Kills: 5},
		{Score: 200, ElapsedMillis: 61000, Kills: 20, Shots: 31, Hits: 3, Dashes: 4},
		{Score: 100, ElapsedMillis: 45000, Kills: 10},
	}
	for _, r := range records {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}

	if runs[0].Score != 200 || runs[0].Shots != 31 || runs[0].Dashes != 4 {
		t.Errorf("first run = %+v", runs[0])
	}
	// Equal scores: the longer run ranks first.
	if runs[1].ElapsedMillis != 45000 || runs[2].ElapsedMillis != 30000 {
		t.Errorf("tie order: %d then %d", runs[1].ElapsedMillis, runs[2].ElapsedMillis)
	}
	if runs[0].EndedAt.IsZero() {
		t.Error("EndedAt should default to now")
	}
}

func TestStoreKeepsEndTime(t *testing.T) {
	store := openTestStore(t)
	ended := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)

	if _, err := store.SaveRun(RunRecord{Score: 10, EndedAt: ended}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.TopRuns(0)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if !runs[0].EndedAt.Equal(ended) {
		t.Errorf("EndedAt = %v, want %v", runs[0].EndedAt, ended)
	}
}

func TestStoreSummary(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []RunRecord{
		{Score: 30, ElapsedMillis: 9000, Kills: 3},
		{Score: 90, ElapsedMillis: 20000, Kills: 9},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	sum, err := store.Summary()
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	want := SessionSummary{Runs: 2, BestScore: 90, AvgScore: 60, TotalKills: 12, LongestMs: 20000}
	if sum != want {
		t.Errorf("Summary() = %+v, want %+v", sum, want)
	}
}

func TestStoresAreIndependent(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	if _, err := a.SaveRun(RunRecord{Score: 70}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	sum, err := b.Summary()
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if sum.Runs != 0 || sum.BestScore != 0 {
		t.Errorf("second session sees %+v, want no runs", sum)
	}
}
