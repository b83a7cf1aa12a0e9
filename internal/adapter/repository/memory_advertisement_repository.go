package repository

import (
	"context"
	"sync"
	"time"

	"bazaartrack/internal/domain/entity"
	"bazaartrack/internal/domain/repository"
	"bazaartrack/pkg/errors"
)

type memoryAdvertisementRepository struct {
	mu  sync.RWMutex
	ads map[string]entity.Advertisement
}

func NewMemoryAdvertisementRepository() repository.AdvertisementRepository {
	return &memoryAdvertisementRepository{ads: make(map[string]entity.Advertisement)}
}

func (r *memoryAdvertisementRepository) Create(ctx context.Context, ad *entity.Advertisement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ad.ID == "" {
		ad.ID = newMemoryID()
	}
	now := time.Now()
	if ad.CreatedAt.IsZero() {
		ad.CreatedAt = now
	}
	ad.UpdatedAt = now
	r.ads[ad.ID] = *ad
	return nil
}

func (r *memoryAdvertisementRepository) GetByID(ctx context.Context, id string) (*entity.Advertisement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ad, ok := r.ads[id]
	if !ok {
		return nil, errors.NotFound("Advertisement", nil)
	}
	return &ad, nil
}

func (r *memoryAdvertisementRepository) List(ctx context.Context, filter entity.AdvertisementFilter) ([]*entity.Advertisement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ads := make([]*entity.Advertisement, 0)
	for _, ad := range r.ads {
		if filter.VendorEmail != "" && ad.VendorEmail != filter.VendorEmail {
			continue
		}
		if filter.Status != "" && ad.Status != filter.Status {
			continue
		}
		a := ad
		ads = append(ads, &a)
	}
	newestFirst(ads, func(a *entity.Advertisement) time.Time { return a.CreatedAt })
	return paginate(ads, filter.Limit, 0), nil
}

func (r *memoryAdvertisementRepository) Update(ctx context.Context, ad *entity.Advertisement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.ads[ad.ID]; !ok {
		return errors.NotFound("Advertisement", nil)
	}
	ad.UpdatedAt = time.Now()
	r.ads[ad.ID] = *ad
	return nil
}

func (r *memoryAdvertisementRepository) UpdateStatus(ctx context.Context, id string, status entity.AdvertisementStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ad, ok := r.ads[id]
	if !ok {
		return errors.NotFound("Advertisement", nil)
	}
	ad.Status = status
	ad.UpdatedAt = time.Now()
	r.ads[id] = ad
	return nil
}

func (r *memoryAdvertisementRepository) Delete(ctx context.Context, id string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.ads[id]; !ok {
		return 0, nil
	}
	delete(r.ads, id)
	return 1, nil
}

func (r *memoryAdvertisementRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.ads)), nil
}
