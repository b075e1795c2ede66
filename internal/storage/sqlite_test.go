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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore("classic", 100, 128); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore("classic", 50, 64); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore("classic", 200, 256); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different mode
	if _, err := store.SaveScore("endless", 500, 512); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}
	if scores[0].MaxTile != 256 {
		t.Errorf("Expected max tile 256 on top entry, got %d", scores[0].MaxTile)
	}

	endlessScores, err := store.TopScores("endless", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(endlessScores) != 1 {
		t.Errorf("Expected 1 endless score, got %d", len(endlessScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("classic", (i+1)*100, 2)
	}

	scores, err := store.TopScores("classic", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty mode, got %d", high)
	}

	store.SaveScore("classic", 100, 64)
	store.SaveScore("classic", 300, 256)
	store.SaveScore("classic", 200, 128)

	high, err = store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("classic", 100, 64)
	store.SaveScore("classic", 200, 128)
	store.SaveScore("endless", 300, 256)

	if err := store.ClearScores("classic"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	classicScores, _ := store.TopScores("classic", 10)
	if len(classicScores) != 0 {
		t.Errorf("Expected 0 classic scores after clear, got %d", len(classicScores))
	}

	endlessScores, _ := store.TopScores("endless", 10)
	if len(endlessScores) != 1 {
		t.Errorf("Endless scores should not be affected by clearing classic")
	}
}

func TestStoreModeStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetModeStats("classic")
	if err != nil {
		t.Fatalf("GetModeStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || stats.HighScore != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveScore("classic", 100, 64)
	store.SaveScore("classic", 300, 512)

	stats, err = store.GetModeStats("classic")
	if err != nil {
		t.Fatalf("GetModeStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("Expected 2 games, got %d", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("Expected high score 300, got %d", stats.HighScore)
	}
	if stats.BestTile != 512 {
		t.Errorf("Expected best tile 512, got %d", stats.BestTile)
	}
	if stats.AvgScore != 200 {
		t.Errorf("Expected average 200, got %f", stats.AvgScore)
	}
}

func TestStoreNestedPath(t *testing.T) {
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
