package repository

import (
	"context"
	"sync"
	"time"

	"bazaartrack/internal/domain/entity"
	"bazaartrack/internal/domain/repository"
)

type memoryReviewRepository struct {
	mu      sync.RWMutex
	reviews []entity.Review
}

func NewMemoryReviewRepository() repository.ReviewRepository {
	return &memoryReviewRepository{}
}

func (r *memoryReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if review.ID == "" {
		review.ID = newMemoryID()
	}
	if review.Date.IsZero() {
		review.Date = time.Now()
	}
	r.reviews = append(r.reviews, *review)
	return nil
}

func (r *memoryReviewRepository) ListByProduct(ctx context.Context, productID string) ([]*entity.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reviews := make([]*entity.Review, 0)
	for _, review := range r.reviews {
		if review.ProductID == productID {
			rv := review
			reviews = append(reviews, &rv)
		}
	}
	return reviews, nil
}
