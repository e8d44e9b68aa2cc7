package storage

import (
	"os"
	"path/filepath"
	"testing"
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

	for _, score := range []int{220, 50, 520} {
		if _, err := store.SaveScore("cacaroids", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	// Different difficulty variant keeps its own board
	if _, err := store.SaveScore("cacaroids_hard", 800); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("cacaroids", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Sorted descending
	if scores[0].Score != 520 || scores[1].Score != 220 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %d, %d, %d",
			scores[0].Score, scores[1].Score, scores[2].Score)
	}

	hardScores, err := store.TopScores("cacaroids_hard", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(hardScores) != 1 {
		t.Errorf("Expected 1 hard-mode score, got %d", len(hardScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("cacaroids", (i+1)*100)
	}

	scores, err := store.TopScores("cacaroids", 3)
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

	high, err := store.HighScore("cacaroids")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("cacaroids", 100)
	store.SaveScore("cacaroids", 300)
	store.SaveScore("cacaroids", 200)

	high, err = store.HighScore("cacaroids")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("cacaroids", 100)
	store.SaveScore("cacaroids", 200)
	store.SaveScore("cacaroids_easy", 300)

	if err := store.ClearScores("cacaroids"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	normalScores, _ := store.TopScores("cacaroids", 10)
	if len(normalScores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(normalScores))
	}

	// The other variant's board is untouched
	easyScores, _ := store.TopScores("cacaroids_easy", 10)
	if len(easyScores) != 1 {
		t.Error("Clearing one variant should not affect another")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("cacaroids", i*10)
	}

	scores, err := store.AllScores("cacaroids")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("cacaroids", 100)
	store.SaveScore("cacaroids", 300)
	store.SaveScore("cacaroids", 200)

	stats, err := store.GetGameStats("cacaroids")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.GamesCount != 3 {
		t.Errorf("GamesCount = %d, want 3", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.TotalScore != 600 {
		t.Errorf("TotalScore = %d, want 600", stats.TotalScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
}

func TestStoreAllGamesStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("cacaroids", 100)
	store.SaveScore("cacaroids_hard", 700)

	stats, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}

	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 variants, got %d", len(stats))
	}
	if stats["cacaroids_hard"].HighScore != 700 {
		t.Errorf("hard-mode high score = %d, want 700", stats["cacaroids_hard"].HighScore)
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
