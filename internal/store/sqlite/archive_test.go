package sqlite

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forkrul/toast/internal/core/notify"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func record(id string, createdAt time.Time) notify.Record {
	return notify.Record{
		ID:        id,
		Kind:      notify.KindInfo,
		Title:     "title " + id,
		Message:   "message body",
		Duration:  5 * time.Second,
		Source:    "test/" + id,
		CreatedAt: createdAt,
	}
}

func TestArchiveStore_roundtrip(t *testing.T) {
	store := NewArchiveStore(openTestDB(t), 0)
	ctx := context.Background()

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	saved := notify.Record{
		ID:        "abc-123",
		Kind:      notify.KindError,
		Title:     "Oops",
		Message:   "it broke",
		Duration:  8 * time.Second,
		Source:    "build/worker",
		CreatedAt: now,
	}
	require.NoError(t, store.Save(ctx, saved))

	records, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, notify.KindError, got.Kind)
	assert.Equal(t, "Oops", got.Title)
	assert.Equal(t, "it broke", got.Message)
	assert.Equal(t, 8*time.Second, got.Duration)
	assert.Equal(t, "build/worker", got.Source)
	assert.True(t, got.CreatedAt.Equal(now))
}

func TestArchiveStore_List_newest_first(t *testing.T) {
	store := NewArchiveStore(openTestDB(t), 0)
	ctx := context.Background()

	base := time.Now()
	for i := range 3 {
		r := record(fmt.Sprintf("id-%d", i), base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, store.Save(ctx, r))
	}

	records, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "id-2", records[0].ID)
	assert.Equal(t, "id-0", records[2].ID)
}

func TestArchiveStore_prunes_past_max_entries(t *testing.T) {
	store := NewArchiveStore(openTestDB(t), 2)
	ctx := context.Background()

	base := time.Now()
	for i := range 5 {
		r := record(fmt.Sprintf("id-%d", i), base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, store.Save(ctx, r))
	}

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	records, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "id-4", records[0].ID, "pruning must keep the newest entries")
	assert.Equal(t, "id-3", records[1].ID)
}

func TestArchiveStore_Clear(t *testing.T) {
	store := NewArchiveStore(openTestDB(t), 0)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, record("id-1", time.Now())))
	require.NoError(t, store.Clear(ctx))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	records, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestOpen_is_idempotent(t *testing.T) {
	dir := t.TempDir()

	db1, err := Open(dir)
	require.NoError(t, err)
	store := NewArchiveStore(db1, 0)
	require.NoError(t, store.Save(context.Background(), record("id-1", time.Now())))
	require.NoError(t, db1.Close())

	// Re-opening must not re-apply the schema or lose data.
	db2, err := Open(dir)
	require.NoError(t, err)
	defer db2.Close()

	count, err := NewArchiveStore(db2, 0).Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
