package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ghvault-cli/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleRun(id string) domain.BackupRun {
	started := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	return domain.BackupRun{
		ID:         id,
		Username:   "octocat",
		StartedAt:  started,
		FinishedAt: started.Add(time.Minute),
		Succeeded:  2,
		Failed:     1,
		TotalBytes: 4096,
	}
}

func TestNewStore(t *testing.T) {
	store := newTestStore(t)

	assert.NotEmpty(t, store.Path())
}

func TestStore_SaveRunAndGetRun(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	run := sampleRun("run-1")
	require.NoError(t, store.SaveRun(ctx, run))

	got, err := store.GetRun(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, run.Username, got.Username)
	assert.Equal(t, run.Succeeded, got.Succeeded)
	assert.Equal(t, run.Failed, got.Failed)
	assert.Equal(t, run.TotalBytes, got.TotalBytes)
	assert.True(t, got.StartedAt.Equal(run.StartedAt))
}

func TestStore_SaveRun_Upserts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	run := sampleRun("run-1")
	require.NoError(t, store.SaveRun(ctx, run))

	run.Succeeded = 5
	require.NoError(t, store.SaveRun(ctx, run))

	got, err := store.GetRun(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, 5, got.Succeeded)
}

func TestStore_GetRun_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetRun(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_ListRuns_NewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	older := sampleRun("run-old")
	newer := sampleRun("run-new")
	newer.StartedAt = older.StartedAt.Add(time.Hour)
	require.NoError(t, store.SaveRun(ctx, older))
	require.NoError(t, store.SaveRun(ctx, newer))

	runs, err := store.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "run-new", runs[0].ID)
	assert.Equal(t, "run-old", runs[1].ID)
}

func TestStore_ListRuns_Limit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		run := sampleRun(id)
		require.NoError(t, store.SaveRun(ctx, run))
	}

	runs, err := store.ListRuns(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestStore_SaveAndListResults(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveRun(ctx, sampleRun("run-1")))

	ok := domain.RepoResult{
		RunID:       "run-1",
		Repo:        "Hello-World",
		Status:      domain.StatusOK,
		ArchivePath: "/tmp/Hello-World.zip",
		Bytes:       2048,
		FinishedAt:  time.Now().UTC(),
	}
	failed := domain.RepoResult{
		RunID:      "run-1",
		Repo:       "Spoon-Knife",
		Status:     domain.StatusFailed,
		Error:      "http status 404",
		FinishedAt: time.Now().UTC(),
	}
	require.NoError(t, store.SaveResult(ctx, ok))
	require.NoError(t, store.SaveResult(ctx, failed))

	results, err := store.ListResults(ctx, "run-1")
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Ordered by repo name.
	assert.Equal(t, "Hello-World", results[0].Repo)
	assert.Equal(t, domain.StatusOK, results[0].Status)
	assert.Equal(t, int64(2048), results[0].Bytes)
	assert.Equal(t, "Spoon-Knife", results[1].Repo)
	assert.Equal(t, domain.StatusFailed, results[1].Status)
	assert.Equal(t, "http status 404", results[1].Error)
}

func TestStore_MigrationsAreIdempotent(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Reopening must not re-run applied migrations.
	store, err = NewStore(dir)
	require.NoError(t, err)
	assert.NoError(t, store.Close())
}
