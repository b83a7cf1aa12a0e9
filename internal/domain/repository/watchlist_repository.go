package repository

import (
	"context"

	"bazaartrack/internal/domain/entity"
)

type WatchListRepository interface {
	Add(ctx context.Context, entry *entity.WatchListEntry) error
	ListByEmail(ctx context.Context, email string) ([]*entity.WatchListEntry, error)
	// Delete removes the entry only when it belongs to email.
	Delete(ctx context.Context, id, email string) (int64, error)
}
