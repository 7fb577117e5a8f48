package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/forkrul/toast/internal/core/notify"
)

// ArchiveStore implements notify.Archive on SQLite. Action effects
// are process-local closures and are not persisted; an archived
// record carries everything else.
type ArchiveStore struct {
	db         *DB
	maxEntries int
}

var _ notify.Archive = (*ArchiveStore)(nil)

// NewArchiveStore creates a SQLite-backed archive. maxEntries caps
// the retained history; 0 means unlimited.
func NewArchiveStore(db *DB, maxEntries int) *ArchiveStore {
	return &ArchiveStore{db: db, maxEntries: maxEntries}
}

// Save appends a record and prunes history past the retention cap.
func (s *ArchiveStore) Save(ctx context.Context, r notify.Record) error {
	_, err := s.db.conn.ExecContext(ctx, `
		INSERT INTO notifications (id, kind, title, message, duration_ms, source, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, string(r.Kind), r.Title, r.Message, r.Duration.Milliseconds(), r.Source, r.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("save notification: %w", err)
	}

	if s.maxEntries > 0 {
		_, err = s.db.conn.ExecContext(ctx, `
			DELETE FROM notifications WHERE id NOT IN (
				SELECT id FROM notifications ORDER BY created_at DESC, id LIMIT ?
			)`, s.maxEntries)
		if err != nil {
			return fmt.Errorf("prune notifications: %w", err)
		}
	}

	return nil
}

// List returns all archived notifications, newest first.
func (s *ArchiveStore) List(ctx context.Context) ([]notify.Record, error) {
	rows, err := s.db.conn.QueryContext(ctx, `
		SELECT id, kind, title, message, duration_ms, source, created_at
		FROM notifications ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var records []notify.Record
	for rows.Next() {
		var (
			r          notify.Record
			kind       string
			durationMs int64
			createdAt  int64
		)
		if err := rows.Scan(&r.ID, &kind, &r.Title, &r.Message, &durationMs, &r.Source, &createdAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		r.Kind = notify.Kind(kind)
		r.Duration = time.Duration(durationMs) * time.Millisecond
		r.CreatedAt = time.Unix(0, createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notifications: %w", err)
	}

	return records, nil
}

// Clear deletes all archived notifications.
func (s *ArchiveStore) Clear(ctx context.Context) error {
	if _, err := s.db.conn.ExecContext(ctx, "DELETE FROM notifications"); err != nil {
		return fmt.Errorf("clear notifications: %w", err)
	}
	return nil
}

// Count returns the number of archived notifications.
func (s *ArchiveStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM notifications").Scan(&count); err != nil {
		return 0, fmt.Errorf("count notifications: %w", err)
	}
	return count, nil
}
