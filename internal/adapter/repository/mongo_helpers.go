package repository

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bazaartrack/pkg/errors"
)

const (
	usersCollection          = "users"
	productsCollection       = "products"
	advertisementsCollection = "advertisements"
	paymentsCollection       = "payments"
	watchListCollection      = "watchList"
	reviewsCollection        = "reviews"
)

// Documents keep hex strings in _id so identifiers are the same across store drivers.
func newObjectID() string {
	return primitive.NewObjectID().Hex()
}

func findAll[T any](ctx context.Context, col *mongo.Collection, filter interface{}, opts ...*options.FindOptions) ([]*T, error) {
	cursor, err := col.Find(ctx, filter, opts...)
	if err != nil {
		return nil, errors.Upstream("Failed to query "+col.Name(), err)
	}
	defer cursor.Close(ctx)

	items := make([]*T, 0)
	for cursor.Next(ctx) {
		var item T
		if err := cursor.Decode(&item); err != nil {
			return nil, errors.Upstream("Failed to decode "+col.Name(), err)
		}
		items = append(items, &item)
	}
	if err := cursor.Err(); err != nil {
		return nil, errors.Upstream("Failed to iterate "+col.Name(), err)
	}
	return items, nil
}

func findOne[T any](ctx context.Context, col *mongo.Collection, filter interface{}, resource string) (*T, error) {
	var item T
	err := col.FindOne(ctx, filter).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return nil, errors.NotFound(resource, err)
	}
	if err != nil {
		return nil, errors.Upstream("Failed to get "+col.Name(), err)
	}
	return &item, nil
}

func containsPattern(query string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(query), "$options": "i"}
}
