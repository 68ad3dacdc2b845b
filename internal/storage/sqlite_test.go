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
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("shooter", 70); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("shooter")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 70 {
		t.Errorf("HighScore() = %d, expected 70", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("shooter", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	// Different game
	if _, err := store.SaveScore("other", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("shooter", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	expected := []int{200, 100, 50}
	for i, want := range expected {
		if scores[i].Score != want {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, want)
		}
		if scores[i].GameID != "shooter" {
			t.Errorf("scores[%d].GameID = %q, expected shooter", i, scores[i].GameID)
		}
	}

	otherScores, err := store.TopScores("other", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(otherScores) != 1 {
		t.Errorf("Expected 1 score for the other game, got %d", len(otherScores))
	}
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	run := ScoreEntry{GameID: "shooter", Player: "alice", Score: 130, Ticks: 2400, Seed: 42}
	id, err := store.SaveRun(run)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("SaveRun() id = %d, expected positive", id)
	}

	scores, err := store.TopScores("shooter", 1)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(scores))
	}
	got := scores[0]
	if got.ID != id || got.Player != "alice" || got.Score != 130 || got.Ticks != 2400 || got.Seed != 42 {
		t.Errorf("stored run = %+v, expected %+v with id %d", got, run, id)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}
}

func TestStoreSaveRunRequiresGame(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun(ScoreEntry{Score: 10}); err == nil {
		t.Error("SaveRun() without a game id should fail")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("shooter", (i+1)*100)
	}

	scores, err := store.TopScores("shooter", 3)
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

func TestStoreTopScoresTiesKeepOrder(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(ScoreEntry{GameID: "shooter", Player: "first", Score: 90})
	store.SaveRun(ScoreEntry{GameID: "shooter", Player: "second", Score: 90})

	scores, err := store.TopScores("shooter", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].Player != "first" || scores[1].Player != "second" {
		t.Errorf("tied runs = %+v, expected first then second", scores)
	}
}

func TestStorePlayerScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(ScoreEntry{GameID: "shooter", Player: "alice", Score: 10})
	store.SaveRun(ScoreEntry{GameID: "shooter", Player: "bob", Score: 500})
	store.SaveRun(ScoreEntry{GameID: "shooter", Player: "alice", Score: 30})

	scores, err := store.PlayerScores("shooter", "alice", 10)
	if err != nil {
		t.Fatalf("PlayerScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("Expected 2 runs for alice, got %d", len(scores))
	}
	// Most recent first
	if scores[0].Score != 30 || scores[1].Score != 10 {
		t.Errorf("alice runs = %v, expected 30 then 10", scores)
	}
}

func TestStoreRecentScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{300, 10, 200} {
		store.SaveScore("shooter", score)
	}
	store.SaveScore("other", 999)

	scores, err := store.RecentScores("shooter", 2)
	if err != nil {
		t.Fatalf("RecentScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 10 {
		t.Errorf("recent runs = %v, expected 200 then 10", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("shooter")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("shooter", 100)
	store.SaveScore("shooter", 300)
	store.SaveScore("shooter", 200)

	high, err = store.HighScore("shooter")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("shooter", 100)
	store.SaveScore("shooter", 200)
	store.SaveScore("other", 300)

	if err := store.ClearScores("shooter"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	shooterScores, _ := store.TopScores("shooter", 10)
	if len(shooterScores) != 0 {
		t.Errorf("Expected 0 shooter scores after clear, got %d", len(shooterScores))
	}

	otherScores, _ := store.TopScores("other", 10)
	if len(otherScores) != 1 {
		t.Errorf("Other game scores should not be affected by clearing shooter")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("shooter", i*10)
	}

	scores, err := store.AllScores("shooter")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("shooter")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("stats for unplayed game = %+v, expected zero", empty)
	}

	store.SaveRun(ScoreEntry{GameID: "shooter", Score: 40, Ticks: 1000})
	store.SaveRun(ScoreEntry{GameID: "shooter", Score: 80, Ticks: 3000})
	store.SaveRun(ScoreEntry{GameID: "other", Score: 5, Ticks: 10})

	stats, err := store.GetGameStats("shooter")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected 2", stats.GamesCount)
	}
	if stats.HighScore != 80 {
		t.Errorf("HighScore = %d, expected 80", stats.HighScore)
	}
	if stats.AvgScore != 60 {
		t.Errorf("AvgScore = %f, expected 60", stats.AvgScore)
	}
	if stats.TotalScore != 120 {
		t.Errorf("TotalScore = %d, expected 120", stats.TotalScore)
	}
	if stats.LongestRun != 3000 || stats.TotalTicks != 4000 {
		t.Errorf("LongestRun/TotalTicks = %d/%d, expected 3000/4000", stats.LongestRun, stats.TotalTicks)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 games, got %d", len(all))
	}
	if all["other"].HighScore != 5 {
		t.Errorf("other HighScore = %d, expected 5", all["other"].HighScore)
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.arcade/scores.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".arcade", "scores.db")); os.IsNotExist(err) {
		t.Error("~ should expand to the home directory")
	}
}
