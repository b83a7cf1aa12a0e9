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

type mongoProductRepository struct {
	col *mongo.Collection
}

func NewMongoProductRepository(db *mongo.Database) repository.ProductRepository {
	return &mongoProductRepository{
		col: db.Collection(productsCollection),
	}
}

func (r *mongoProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		product.ID = newObjectID()
	}

	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now

	if _, err := r.col.InsertOne(ctx, product); err != nil {
		return errors.Upstream("Failed to create product", err)
	}
	return nil
}

func (r *mongoProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return findOne[entity.Product](ctx, r.col, bson.M{"_id": id}, "Product")
}

func productQuery(filter entity.ProductFilter) bson.M {
	query := bson.M{}
	if filter.VendorEmail != "" {
		query["vendorEmail"] = filter.VendorEmail
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.From != nil || filter.To != nil {
		date := bson.M{}
		if filter.From != nil {
			date["$gte"] = *filter.From
		}
		if filter.To != nil {
			date["$lte"] = *filter.To
		}
		query["date"] = date
	}
	return query
}

func productSort(filter entity.ProductFilter) bson.D {
	field := filter.SortField
	order := 1
	if field == "" {
		field = "createdAt"
		order = -1
	}
	if filter.SortDesc {
		order = -1
	}
	return bson.D{{Key: field, Value: order}, {Key: "_id", Value: 1}}
}

func (r *mongoProductRepository) List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, int64, error) {
	query := productQuery(filter)

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, errors.Upstream("Failed to count products", err)
	}

	opts := options.Find().SetSort(productSort(filter))
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}
	if filter.Offset > 0 {
		opts.SetSkip(int64(filter.Offset))
	}

	products, err := findAll[entity.Product](ctx, r.col, query, opts)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *mongoProductRepository) Update(ctx context.Context, product *entity.Product) error {
	product.UpdatedAt = time.Now()

	result, err := r.col.ReplaceOne(ctx, bson.M{"_id": product.ID}, product)
	if err != nil {
		return errors.Upstream("Failed to update product", err)
	}
	if result.MatchedCount == 0 {
		return errors.NotFound("Product", nil)
	}
	return nil
}

func (r *mongoProductRepository) UpdateStatus(ctx context.Context, id string, status entity.ProductStatus, reason string) error {
	set := bson.M{"status": status, "updatedAt": time.Now()}
	update := bson.M{"$set": set}
	if reason != "" {
		set["rejectionReason"] = reason
	} else {
		update["$unset"] = bson.M{"rejectionReason": ""}
	}

	result, err := r.col.UpdateByID(ctx, id, update)
	if err != nil {
		return errors.Upstream("Failed to update product status", err)
	}
	if result.MatchedCount == 0 {
		return errors.NotFound("Product", nil)
	}
	return nil
}

func (r *mongoProductRepository) Delete(ctx context.Context, id string) (int64, error) {
	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, errors.Upstream("Failed to delete product", err)
	}
	return result.DeletedCount, nil
}
