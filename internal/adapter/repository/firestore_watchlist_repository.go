package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"bazaartrack/internal/domain/entity"
	"bazaartrack/internal/domain/repository"
	"bazaartrack/pkg/errors"
)

type firestoreWatchListRepository struct {
	client *firestore.Client
}

func NewFirestoreWatchListRepository(client *firestore.Client) repository.WatchListRepository {
	return &firestoreWatchListRepository{
		client: client,
	}
}

func (r *firestoreWatchListRepository) Add(ctx context.Context, entry *entity.WatchListEntry) error {
	if entry.ID == "" {
		entry.ID = r.client.Collection(watchListCollection).NewDoc().ID
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	_, err := r.client.Collection(watchListCollection).Doc(entry.ID).Set(ctx, entry)
	if err != nil {
		return errors.Upstream("Failed to add watch list entry", err)
	}
	return nil
}

func (r *firestoreWatchListRepository) ListByEmail(ctx context.Context, email string) ([]*entity.WatchListEntry, error) {
	query := r.client.Collection(watchListCollection).Where("email", "==", email)

	entries, err := queryDocs[entity.WatchListEntry](ctx, query, watchListCollection)
	if err != nil {
		return nil, err
	}

	newestFirst(entries, func(e *entity.WatchListEntry) time.Time { return e.CreatedAt })
	return entries, nil
}

// Delete only removes entries owned by email; a foreign id counts as no match.
func (r *firestoreWatchListRepository) Delete(ctx context.Context, id, email string) (int64, error) {
	ref := r.client.Collection(watchListCollection).Doc(id)

	entry, err := getDoc[entity.WatchListEntry](ctx, ref, "Watch list entry")
	if err != nil {
		if errors.IsNotFound(err) {
			return 0, nil
		}
		return 0, err
	}
	if entry.Email != email {
		return 0, nil
	}

	return deleteDoc(ctx, ref)
}
