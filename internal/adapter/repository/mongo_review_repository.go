package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bazaartrack/internal/domain/entity"
	"bazaartrack/internal/domain/repository"
	"bazaartrack/pkg/errors"
)

type mongoReviewRepository struct {
	col *mongo.Collection
}

func NewMongoReviewRepository(db *mongo.Database) repository.ReviewRepository {
	return &mongoReviewRepository{
		col: db.Collection(reviewsCollection),
	}
}

func (r *mongoReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	if review.ID == "" {
		review.ID = newObjectID()
	}
	if review.Date.IsZero() {
		review.Date = time.Now()
	}

	if _, err := r.col.InsertOne(ctx, review); err != nil {
		return errors.Upstream("Failed to create review", err)
	}
	return nil
}

func (r *mongoReviewRepository) ListByProduct(ctx context.Context, productID string) ([]*entity.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	return findAll[entity.Review](ctx, r.col, bson.M{"productId": productID}, opts)
}
