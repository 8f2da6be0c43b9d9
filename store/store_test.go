package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *SQLStore {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "scores.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLStoreHighScoreDefaultsToZero(t *testing.T) {
	s := openTestStore(t)

	got, err := s.HighScore(context.Background(), "skysim")
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestSQLStoreSetHighScoreUpserts(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetHighScore(ctx, "skysim", 120))
	require.NoError(t, s.SetHighScore(ctx, "skysim", 340))
	require.NoError(t, s.SetHighScore(ctx, "flappy", 7))

	got, err := s.HighScore(ctx, "skysim")
	require.NoError(t, err)
	assert.Equal(t, 340, got)

	got, err = s.HighScore(ctx, "flappy")
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestSQLStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")
	ctx := context.Background()

	first, err := OpenSQLite(path, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, first.SetHighScore(ctx, "flappy", 42))
	require.NoError(t, first.Close())

	second, err := OpenSQLite(path, zerolog.Nop())
	require.NoError(t, err)
	defer second.Close()

	got, err := second.HighScore(ctx, "flappy")
	require.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestSQLStoreRecordRun(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, s.RecordRun(ctx, Run{Game: "skysim", Score: 10, Reason: "crash", EndedAt: base}))
	require.NoError(t, s.RecordRun(ctx, Run{Game: "skysim", Score: 20, Reason: "crash", EndedAt: base.Add(time.Minute)}))
	require.NoError(t, s.RecordRun(ctx, Run{Game: "flappy", Score: 3, EndedAt: base}))

	runs, err := s.Runs(ctx, "skysim", 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, 20, runs[0].Score)
	assert.NotEmpty(t, runs[0].ID)
	assert.NotEqual(t, runs[0].ID, runs[1].ID)
}

func TestPrepareFailsOnClosedConnection(t *testing.T) {
	s := openTestStore(t)
	sqlDB, err := s.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	err = prepare(s.db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pragma")
}

func TestMemoryStore(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	got, err := m.HighScore(ctx, "flappy")
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	require.NoError(t, m.SetHighScore(ctx, "flappy", 5))
	got, _ = m.HighScore(ctx, "flappy")
	assert.Equal(t, 5, got)

	require.NoError(t, m.RecordRun(ctx, Run{Game: "flappy", Score: 5}))
	runs := m.Runs()
	require.Len(t, runs, 1)
	assert.NotEmpty(t, runs[0].ID)
}
