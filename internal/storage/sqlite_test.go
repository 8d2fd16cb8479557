package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	assert.FileExists(t, dbPath)
}

func TestStorePicks(t *testing.T) {
	store := openTestStore(t)

	for _, p := range []string{"a.txt", "docs/b.md", "c.go"} {
		_, err := store.SavePick("browser", p)
		require.NoError(t, err)
	}
	_, err := store.SavePick("other", "x")
	require.NoError(t, err)

	picks, err := store.RecentPicks("browser", 10)
	require.NoError(t, err)
	require.Len(t, picks, 3)

	// Newest first
	want := []string{"c.go", "docs/b.md", "a.txt"}
	for i, p := range picks {
		assert.Equal(t, want[i], p.Path, "pick %d", i)
		assert.Equal(t, "browser", p.DemoID, "pick %d", i)
		assert.False(t, p.CreatedAt.IsZero(), "pick %d has no timestamp", i)
	}
}

func TestStoreRecentPicksLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		_, err := store.SavePick("browser", filepath.Join("dir", string(rune('a'+i))))
		require.NoError(t, err)
	}

	picks, err := store.RecentPicks("browser", 2)
	require.NoError(t, err)
	assert.Len(t, picks, 2)
}

func TestStoreRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []RunEntry{
		{DemoID: "widgets", Ticks: 120, Duration: 2 * time.Second},
		{DemoID: "sprites", User: "alice", Ticks: 600, Duration: 10 * time.Second},
		{DemoID: "widgets", User: "bob", Ticks: 60, Duration: 1500 * time.Millisecond},
	}
	for _, r := range runs {
		_, err := store.RecordRun(r)
		require.NoError(t, err)
	}

	all, err := store.RecentRuns("", 10)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "bob", all[0].User, "newest run first")
	assert.Equal(t, 1500*time.Millisecond, all[0].Duration)

	widgets, err := store.RecentRuns("widgets", 10)
	require.NoError(t, err)
	require.Len(t, widgets, 2)
	assert.EqualValues(t, 120, widgets[1].Ticks)
}

func TestStoreDemoStats(t *testing.T) {
	store := openTestStore(t)

	// No runs yet
	stats, err := store.DemoStats("widgets")
	require.NoError(t, err)
	assert.Zero(t, stats.Runs)
	assert.True(t, stats.LastRun.IsZero())

	_, err = store.RecordRun(RunEntry{DemoID: "widgets", Ticks: 100, Duration: time.Second})
	require.NoError(t, err)
	_, err = store.RecordRun(RunEntry{DemoID: "widgets", Ticks: 50, Duration: 500 * time.Millisecond})
	require.NoError(t, err)

	stats, err = store.DemoStats("widgets")
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.Runs)
	assert.EqualValues(t, 150, stats.TotalTicks)
	assert.Equal(t, 1500*time.Millisecond, stats.TotalDuration)
	assert.False(t, stats.LastRun.IsZero(), "LastRun not set")
}

func TestStoreClearHistory(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SavePick("browser", "a")
	require.NoError(t, err)
	_, err = store.RecordRun(RunEntry{DemoID: "browser", Ticks: 1})
	require.NoError(t, err)
	_, err = store.RecordRun(RunEntry{DemoID: "widgets", Ticks: 1})
	require.NoError(t, err)

	require.NoError(t, store.ClearHistory("browser"))

	picks, err := store.RecentPicks("browser", 10)
	require.NoError(t, err)
	assert.Empty(t, picks)

	runs, err := store.RecentRuns("", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1, "clearing browser leaves widgets alone")
	assert.Equal(t, "widgets", runs[0].DemoID)
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	assert.FileExists(t, dbPath, "nested directories are created")
}
