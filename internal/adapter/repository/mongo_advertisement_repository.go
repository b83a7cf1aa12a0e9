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

type mongoAdvertisementRepository struct {
	col *mongo.Collection
}

func NewMongoAdvertisementRepository(db *mongo.Database) repository.AdvertisementRepository {
	return &mongoAdvertisementRepository{
		col: db.Collection(advertisementsCollection),
	}
}

func (r *mongoAdvertisementRepository) Create(ctx context.Context, ad *entity.Advertisement) error {
	if ad.ID == "" {
		ad.ID = newObjectID()
	}

	now := time.Now()
	if ad.CreatedAt.IsZero() {
		ad.CreatedAt = now
	}
	ad.UpdatedAt = now

	if _, err := r.col.InsertOne(ctx, ad); err != nil {
		return errors.Upstream("Failed to create advertisement", err)
	}
	return nil
}

func (r *mongoAdvertisementRepository) GetByID(ctx context.Context, id string) (*entity.Advertisement, error) {
	return findOne[entity.Advertisement](ctx, r.col, bson.M{"_id": id}, "Advertisement")
}

func (r *mongoAdvertisementRepository) List(ctx context.Context, filter entity.AdvertisementFilter) ([]*entity.Advertisement, error) {
	query := bson.M{}
	if filter.VendorEmail != "" {
		query["vendorEmail"] = filter.VendorEmail
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}
	return findAll[entity.Advertisement](ctx, r.col, query, opts)
}

func (r *mongoAdvertisementRepository) Update(ctx context.Context, ad *entity.Advertisement) error {
	ad.UpdatedAt = time.Now()

	result, err := r.col.ReplaceOne(ctx, bson.M{"_id": ad.ID}, ad)
	if err != nil {
		return errors.Upstream("Failed to update advertisement", err)
	}
	if result.MatchedCount == 0 {
		return errors.NotFound("Advertisement", nil)
	}
	return nil
}

func (r *mongoAdvertisementRepository) UpdateStatus(ctx context.Context, id string, status entity.AdvertisementStatus) error {
	result, err := r.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}})
	if err != nil {
		return errors.Upstream("Failed to update advertisement status", err)
	}
	if result.MatchedCount == 0 {
		return errors.NotFound("Advertisement", nil)
	}
	return nil
}

func (r *mongoAdvertisementRepository) Delete(ctx context.Context, id string) (int64, error) {
	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, errors.Upstream("Failed to delete advertisement", err)
	}
	return result.DeletedCount, nil
}

func (r *mongoAdvertisementRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, errors.Upstream("Failed to count advertisements", err)
	}
	return count, nil
}
