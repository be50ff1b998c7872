package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewStore(db)
}

func TestDateKey(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	// 2026-01-01 03:00 +09:00 is still 2025-12-31 in UTC.
	assert.Equal(t, "2025-12-31", DateKey(time.Date(2026, 1, 1, 3, 0, 0, 0, loc)))
}

func TestInsertAndRecent(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	results := []Result{
		{SessionID: "a1", Mode: "wordle", Date: "2026-08-24", WordLength: 5, Attempts: 4, Solved: true, Answer: "crane", ElapsedMs: 60_000},
		{SessionID: "b2", Mode: "wordle", Date: "2026-08-25", WordLength: 5, Attempts: 6, Solved: false, ElapsedMs: 90_000},
		{SessionID: "c3", Mode: "hurdle", Date: "2026-08-25", WordLength: 5, Attempts: 3, Solved: true, Answer: "slate", ElapsedMs: 45_000},
	}
	for _, r := range results {
		require.NoError(t, st.Insert(ctx, r))
	}

	recent, err := st.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	// Newest first.
	assert.Equal(t, "c3", recent[0].SessionID)
	assert.Equal(t, "b2", recent[1].SessionID)
	assert.True(t, recent[0].Solved)
	assert.False(t, recent[1].Solved)
	assert.Equal(t, "slate", recent[0].Answer)
}

func TestStats(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	empty, err := st.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, empty.Played)
	assert.Zero(t, empty.AvgAttempts)

	require.NoError(t, st.Insert(ctx, Result{SessionID: "a", Mode: "wordle", Date: "2026-08-25", WordLength: 5, Attempts: 2, Solved: true}))
	require.NoError(t, st.Insert(ctx, Result{SessionID: "b", Mode: "wordle", Date: "2026-08-25", WordLength: 5, Attempts: 4, Solved: true}))
	require.NoError(t, st.Insert(ctx, Result{SessionID: "c", Mode: "wordle", Date: "2026-08-25", WordLength: 5, Attempts: 6, Solved: false}))

	got, err := st.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Played)
	assert.Equal(t, 2, got.Solved)
	assert.InDelta(t, 3.0, got.AvgAttempts, 1e-9)
}
