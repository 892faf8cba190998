package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreCreatesParentDirs(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
}

func TestSaveAndRecentRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []struct {
		layers   int
		moves    uint64
		duration time.Duration
	}{
		{3, 7, 7 * time.Second},
		{4, 15, 15 * time.Second},
		{3, 7, 8 * time.Second},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r.layers, r.moves, r.duration); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	got, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("RecentRuns() returned %d entries, want 3", len(got))
	}

	// Newest first: the last saved run comes back first.
	if got[0].Layers != 3 || got[0].DurationMS != 8000 {
		t.Errorf("first entry = %+v, want the last saved run", got[0])
	}
	if got[0].Moves != 7 {
		t.Errorf("Moves = %d, want 7", got[0].Moves)
	}
}

func TestRecentRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveRun(2, 3, time.Second); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	got, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("RecentRuns(3) returned %d entries", len(got))
	}
}

func TestRunsForLayers(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(4, 15, 20*time.Second)
	store.SaveRun(5, 31, 31*time.Second)
	store.SaveRun(4, 15, 16*time.Second)

	got, err := store.RunsForLayers(4)
	if err != nil {
		t.Fatalf("RunsForLayers() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("RunsForLayers(4) returned %d entries, want 2", len(got))
	}
	// Fastest first.
	if got[0].DurationMS != 16000 {
		t.Errorf("fastest run duration = %dms, want 16000", got[0].DurationMS)
	}
}

func TestRunsForLayersEmpty(t *testing.T) {
	store := openTestStore(t)

	got, err := store.RunsForLayers(9)
	if err != nil {
		t.Fatalf("RunsForLayers() failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no entries, got %d", len(got))
	}
}
