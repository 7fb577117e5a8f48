package notify

import "context"

// Archive persists every raised notification to durable storage for
// later review. The active set never reads back from the archive; it
// is an append-only history.
type Archive interface {
	Save(ctx context.Context, r Record) error
	List(ctx context.Context) ([]Record, error)
	Clear(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}
