package repository

import (
	"context"
	"sync"
	"time"

	"bazaartrack/internal/domain/entity"
	"bazaartrack/internal/domain/repository"
)

type memoryWatchListRepository struct {
	mu      sync.RWMutex
	entries map[string]entity.WatchListEntry
}

func NewMemoryWatchListRepository() repository.WatchListRepository {
	return &memoryWatchListRepository{entries: make(map[string]entity.WatchListEntry)}
}

func (r *memoryWatchListRepository) Add(ctx context.Context, entry *entity.WatchListEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.ID == "" {
		entry.ID = newMemoryID()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	r.entries[entry.ID] = *entry
	return nil
}

func (r *memoryWatchListRepository) ListByEmail(ctx context.Context, email string) ([]*entity.WatchListEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]*entity.WatchListEntry, 0)
	for _, entry := range r.entries {
		if entry.Email == email {
			e := entry
			entries = append(entries, &e)
		}
	}
	newestFirst(entries, func(e *entity.WatchListEntry) time.Time { return e.CreatedAt })
	return entries, nil
}

func (r *memoryWatchListRepository) Delete(ctx context.Context, id, email string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[id]
	if !ok || entry.Email != email {
		return 0, nil
	}
	delete(r.entries, id)
	return 1, nil
}
