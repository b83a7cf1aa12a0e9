package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"bazaartrack/pkg/errors"
)

func getDoc[T any](ctx context.Context, ref *firestore.DocumentRef, resource string) (*T, error) {
	doc, err := ref.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound(resource, err)
		}
		return nil, errors.Upstream("Failed to get "+ref.Parent.ID, err)
	}

	var item T
	if err := doc.DataTo(&item); err != nil {
		return nil, errors.Upstream("Failed to parse "+ref.Parent.ID+" data", err)
	}
	return &item, nil
}

func queryDocs[T any](ctx context.Context, query firestore.Query, collection string) ([]*T, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	items := make([]*T, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Upstream("Failed to iterate "+collection, err)
		}

		var item T
		if err := doc.DataTo(&item); err != nil {
			return nil, errors.Upstream("Failed to parse "+collection+" data", err)
		}
		items = append(items, &item)
	}
	return items, nil
}

// deleteDoc reports 0 when the document did not exist, matching the Mongo driver's DeletedCount.
func deleteDoc(ctx context.Context, ref *firestore.DocumentRef) (int64, error) {
	_, err := ref.Delete(ctx, firestore.Exists)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return 0, nil
		}
		return 0, errors.Upstream("Failed to delete from "+ref.Parent.ID, err)
	}
	return 1, nil
}

func updateDoc(ctx context.Context, ref *firestore.DocumentRef, resource string, updates []firestore.Update) error {
	_, err := ref.Update(ctx, updates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound(resource, err)
		}
		return errors.Upstream("Failed to update "+ref.Parent.ID, err)
	}
	return nil
}

func countDocs(ctx context.Context, query firestore.Query, collection string) (int64, error) {
	result, err := query.NewAggregationQuery().WithCount("all").Get(ctx)
	if err != nil {
		return 0, errors.Upstream("Failed to count "+collection, err)
	}

	count, ok := result["all"]
	if !ok {
		return 0, nil
	}
	// The count arrives as a protobuf Value.
	if v, ok := count.(interface{ GetIntegerValue() int64 }); ok {
		return v.GetIntegerValue(), nil
	}
	return 0, nil
}

func sumDocs(ctx context.Context, query firestore.Query, field, collection string) (float64, error) {
	result, err := query.NewAggregationQuery().WithSum(field, "total").Get(ctx)
	if err != nil {
		return 0, errors.Upstream("Failed to sum "+collection, err)
	}

	total, ok := result["total"]
	if !ok {
		return 0, nil
	}
	// Sums of whole numbers arrive as integers, anything else as doubles.
	if v, ok := total.(interface{ GetIntegerValue() int64 }); ok && v.GetIntegerValue() != 0 {
		return float64(v.GetIntegerValue()), nil
	}
	if v, ok := total.(interface{ GetDoubleValue() float64 }); ok {
		return v.GetDoubleValue(), nil
	}
	return 0, nil
}
