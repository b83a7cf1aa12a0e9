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

type mongoWatchListRepository struct {
	col *mongo.Collection
}

func NewMongoWatchListRepository(db *mongo.Database) repository.WatchListRepository {
	return &mongoWatchListRepository{
		col: db.Collection(watchListCollection),
	}
}

func (r *mongoWatchListRepository) Add(ctx context.Context, entry *entity.WatchListEntry) error {
	if entry.ID == "" {
		entry.ID = newObjectID()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	if _, err := r.col.InsertOne(ctx, entry); err != nil {
		return errors.Upstream("Failed to add watch list entry", err)
	}
	return nil
}

func (r *mongoWatchListRepository) ListByEmail(ctx context.Context, email string) ([]*entity.WatchListEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return findAll[entity.WatchListEntry](ctx, r.col, bson.M{"email": email}, opts)
}

func (r *mongoWatchListRepository) Delete(ctx context.Context, id, email string) (int64, error) {
	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "email": email})
	if err != nil {
		return 0, errors.Upstream("Failed to delete watch list entry", err)
	}
	return result.DeletedCount, nil
}
