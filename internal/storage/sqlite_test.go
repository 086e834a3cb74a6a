package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "a", "b", "scores.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := expandHome("~/.chroma/scores.db")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".chroma", "scores.db"), got)

	got, err = expandHome("./~scores.db")
	require.NoError(t, err)
	assert.Equal(t, "./~scores.db", got)
}

func TestTopScoresPerMode(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		_, err := store.SaveScore("chroma", score)
		require.NoError(t, err)
	}
	_, err := store.SaveScore("chroma_zen", 500)
	require.NoError(t, err)

	scores, err := store.TopScores("chroma", 10)
	require.NoError(t, err)
	require.Len(t, scores, 3)
	assert.Equal(t, []int{200, 100, 50}, []int{scores[0].Score, scores[1].Score, scores[2].Score})
	assert.Equal(t, "chroma", scores[0].GameID)

	limited, err := store.TopScores("chroma", 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	zen, err := store.TopScores("chroma_zen", 0)
	require.NoError(t, err)
	assert.Len(t, zen, 1)
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("chroma")
	require.NoError(t, err)
	assert.Zero(t, high)

	for _, score := range []int{100, 300, 200} {
		_, err := store.SaveScore("chroma", score)
		require.NoError(t, err)
	}
	high, err = store.HighScore("chroma")
	require.NoError(t, err)
	assert.Equal(t, 300, high)
}

func TestSaveRunRecordsScore(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveRun(RunEntry{GameID: "chroma", Score: 450, Lines: 3, Level: 1, MaxCombo: 2, Duration: 95 * time.Second})
	require.NoError(t, err)

	high, err := store.HighScore("chroma")
	require.NoError(t, err)
	assert.Equal(t, 450, high)

	runs, err := store.RecentRuns("chroma", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 3, runs[0].Lines)
	assert.Equal(t, 95*time.Second, runs[0].Duration)
	assert.False(t, runs[0].CreatedAt.IsZero())
}

func TestRecentRunsNewestFirst(t *testing.T) {
	store := openTestStore(t)

	runs := []RunEntry{
		{GameID: "chroma", Score: 1200, Lines: 4, Level: 1, MaxCombo: 2, Duration: 1500 * time.Millisecond},
		{GameID: "chroma", Score: 5400, Lines: 23, Level: 3, MaxCombo: 5, Duration: 7 * time.Minute},
		{GameID: "chroma_zen", Score: 300, Lines: 1, Level: 1, MaxCombo: 1, Duration: 10 * time.Second},
	}
	for _, r := range runs {
		_, err := store.SaveRun(r)
		require.NoError(t, err)
	}

	recent, err := store.RecentRuns("chroma", 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)

	// Same timestamp resolution, so the later insert wins on id
	assert.Equal(t, 5400, recent[0].Score)
	assert.Equal(t, 3, recent[0].Level)
	assert.Equal(t, 5, recent[0].MaxCombo)
	assert.Equal(t, time.Second, recent[1].Duration, "durations keep whole seconds")

	limited, err := store.RecentRuns("chroma", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestClearScoresOnlyTouchesMode(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveRun(RunEntry{GameID: "chroma", Score: 100, Lines: 1, Level: 1})
	require.NoError(t, err)
	_, err = store.SaveScore("chroma", 200)
	require.NoError(t, err)
	_, err = store.SaveRun(RunEntry{GameID: "chroma_zen", Score: 300, Lines: 2, Level: 1})
	require.NoError(t, err)

	require.NoError(t, store.ClearScores("chroma"))

	scores, err := store.TopScores("chroma", 10)
	require.NoError(t, err)
	assert.Empty(t, scores)
	runs, err := store.RecentRuns("chroma", 10)
	require.NoError(t, err)
	assert.Empty(t, runs)

	zen, err := store.TopScores("chroma_zen", 10)
	require.NoError(t, err)
	assert.Len(t, zen, 1)
	zenRuns, err := store.RecentRuns("chroma_zen", 10)
	require.NoError(t, err)
	assert.Len(t, zenRuns, 1)
}

func TestGameStats(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveRun(RunEntry{GameID: "chroma", Score: 100, Lines: 2, Level: 1, MaxCombo: 1})
	require.NoError(t, err)
	_, err = store.SaveRun(RunEntry{GameID: "chroma", Score: 300, Lines: 12, Level: 2, MaxCombo: 3})
	require.NoError(t, err)

	stats, err := store.GetGameStats("chroma")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.GamesCount)
	assert.Equal(t, 300, stats.HighScore)
	assert.Equal(t, int64(400), stats.TotalScore)
	assert.InDelta(t, 200.0, stats.AvgScore, 0.001)
	assert.Equal(t, int64(14), stats.TotalLines)
	assert.Equal(t, 2, stats.BestLevel)
	assert.Equal(t, 3, stats.BestCombo)
	assert.False(t, stats.LastPlayed.IsZero())

	empty, err := store.GetGameStats("chroma_zen")
	require.NoError(t, err)
	assert.Zero(t, empty.GamesCount)
	assert.Zero(t, empty.TotalLines)
	assert.True(t, empty.LastPlayed.IsZero())
}
