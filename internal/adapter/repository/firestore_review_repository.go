package repository

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"

	"bazaartrack/internal/domain/entity"
	"bazaartrack/internal/domain/repository"
	"bazaartrack/pkg/errors"
)

type firestoreReviewRepository struct {
	client *firestore.Client
}

func NewFirestoreReviewRepository(client *firestore.Client) repository.ReviewRepository {
	return &firestoreReviewRepository{
		client: client,
	}
}

func (r *firestoreReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	if review.ID == "" {
		review.ID = r.client.Collection(reviewsCollection).NewDoc().ID
	}
	if review.Date.IsZero() {
		review.Date = time.Now()
	}

	_, err := r.client.Collection(reviewsCollection).Doc(review.ID).Set(ctx, review)
	if err != nil {
		return errors.Upstream("Failed to create review", err)
	}
	return nil
}

func (r *firestoreReviewRepository) ListByProduct(ctx context.Context, productID string) ([]*entity.Review, error) {
	query := r.client.Collection(reviewsCollection).Where("productId", "==", productID)

	reviews, err := queryDocs[entity.Review](ctx, query, reviewsCollection)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(reviews, func(i, j int) bool { return reviews[i].Date.Before(reviews[j].Date) })
	return reviews, nil
}
