package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, secs := range []float64{1520.5, 980.25, 2100.0} {
		if _, err := store.SaveClearTime(secs); err != nil {
			t.Fatalf("SaveClearTime(%v) failed: %v", secs, err)
		}
	}

	entries, err := store.FastestClears(10)
	if err != nil {
		t.Fatalf("FastestClears() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}

	// Quickest first
	if entries[0].Seconds != 980.25 {
		t.Errorf("Expected fastest to be 980.25, got %v", entries[0].Seconds)
	}
	if entries[1].Seconds != 1520.5 {
		t.Errorf("Expected second to be 1520.5, got %v", entries[1].Seconds)
	}
	if entries[2].Seconds != 2100.0 {
		t.Errorf("Expected third to be 2100.0, got %v", entries[2].Seconds)
	}
}

func TestStorePrunesToTenFastest(t *testing.T) {
	store := openTestStore(t)

	// 15 clears: 100, 200, ... 1500
	for i := 1; i <= 15; i++ {
		if _, err := store.SaveClearTime(float64(i * 100)); err != nil {
			t.Fatalf("SaveClearTime() failed: %v", err)
		}
	}

	entries, err := store.FastestClears(100)
	if err != nil {
		t.Fatalf("FastestClears() failed: %v", err)
	}
	if len(entries) != 10 {
		t.Fatalf("Expected 10 entries after pruning, got %d", len(entries))
	}
	if entries[9].Seconds != 1000 {
		t.Errorf("Expected slowest survivor to be 1000, got %v", entries[9].Seconds)
	}

	// A new record slower than the ten survivors disappears immediately.
	if _, err := store.SaveClearTime(9999); err != nil {
		t.Fatalf("SaveClearTime() failed: %v", err)
	}
	entries, _ = store.FastestClears(100)
	if len(entries) != 10 || entries[9].Seconds != 1000 {
		t.Errorf("Slow record was not pruned: %d entries, slowest %v",
			len(entries), entries[len(entries)-1].Seconds)
	}

	// A new record faster than the slowest survivor displaces it.
	if _, err := store.SaveClearTime(50); err != nil {
		t.Fatalf("SaveClearTime() failed: %v", err)
	}
	entries, _ = store.FastestClears(100)
	if len(entries) != 10 {
		t.Fatalf("Expected 10 entries, got %d", len(entries))
	}
	if entries[0].Seconds != 50 {
		t.Errorf("Expected new fastest to be 50, got %v", entries[0].Seconds)
	}
	if entries[9].Seconds != 900 {
		t.Errorf("Expected slowest survivor to be 900, got %v", entries[9].Seconds)
	}
}

func TestStoreFastestClearsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 5; i++ {
		store.SaveClearTime(float64(i * 100))
	}

	entries, err := store.FastestClears(3)
	if err != nil {
		t.Fatalf("FastestClears() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("Expected 3 entries with limit, got %d", len(entries))
	}
	if entries[0].Seconds != 100 || entries[1].Seconds != 200 || entries[2].Seconds != 300 {
		t.Errorf("Entries not in expected order: %v", entries)
	}
}

func TestStoreBestTime(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestTime()
	if err != nil {
		t.Fatalf("BestTime() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected best time of 0 for empty table, got %v", best)
	}

	store.SaveClearTime(1200)
	store.SaveClearTime(800)
	store.SaveClearTime(1500)

	best, err = store.BestTime()
	if err != nil {
		t.Fatalf("BestTime() failed: %v", err)
	}
	if best != 800 {
		t.Errorf("Expected best time of 800, got %v", best)
	}
}

func TestStoreClearAll(t *testing.T) {
	store := openTestStore(t)

	store.SaveClearTime(100)
	store.SaveClearTime(200)

	if err := store.ClearAll(); err != nil {
		t.Fatalf("ClearAll() failed: %v", err)
	}

	entries, _ := store.FastestClears(10)
	if len(entries) != 0 {
		t.Errorf("Expected 0 entries after ClearAll, got %d", len(entries))
	}
}
