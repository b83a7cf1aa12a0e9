package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"bazaartrack/internal/domain/entity"
	"bazaartrack/internal/domain/repository"
	"bazaartrack/pkg/errors"
)

type firestoreProductRepository struct {
	client *firestore.Client
}

func NewFirestoreProductRepository(client *firestore.Client) repository.ProductRepository {
	return &firestoreProductRepository{
		client: client,
	}
}

func (r *firestoreProductRepository) Create(ctx context.Context, product *entity.Product) error {
	// Generate ID if not provided
	if product.ID == "" {
		product.ID = r.client.Collection(productsCollection).NewDoc().ID
	}

	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now

	_, err := r.client.Collection(productsCollection).Doc(product.ID).Set(ctx, product)
	if err != nil {
		return errors.Upstream("Failed to create product", err)
	}
	return nil
}

func (r *firestoreProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return getDoc[entity.Product](ctx, r.client.Collection(productsCollection).Doc(id), "Product")
}

// List pushes equality and date filters to Firestore, then sorts and pages in memory
// so no composite index is needed per sort field.
func (r *firestoreProductRepository) List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, int64, error) {
	query := r.client.Collection(productsCollection).Query
	if filter.VendorEmail != "" {
		query = query.Where("vendorEmail", "==", filter.VendorEmail)
	}
	if filter.Status != "" {
		query = query.Where("status", "==", filter.Status)
	}
	if filter.From != nil {
		query = query.Where("date", ">=", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("date", "<=", *filter.To)
	}

	products, err := queryDocs[entity.Product](ctx, query, productsCollection)
	if err != nil {
		return nil, 0, err
	}

	sortProducts(products, filter.SortField, filter.SortDesc)
	return paginate(products, filter.Limit, filter.Offset), int64(len(products)), nil
}

func (r *firestoreProductRepository) Update(ctx context.Context, product *entity.Product) error {
	product.UpdatedAt = time.Now()

	ref := r.client.Collection(productsCollection).Doc(product.ID)
	if _, err := getDoc[entity.Product](ctx, ref, "Product"); err != nil {
		return err
	}

	if _, err := ref.Set(ctx, product); err != nil {
		return errors.Upstream("Failed to update product", err)
	}
	return nil
}

func (r *firestoreProductRepository) UpdateStatus(ctx context.Context, id string, status entity.ProductStatus, reason string) error {
	reasonValue := interface{}(reason)
	if reason == "" {
		reasonValue = firestore.Delete
	}

	return updateDoc(ctx, r.client.Collection(productsCollection).Doc(id), "Product", []firestore.Update{
		{Path: "status", Value: status},
		{Path: "rejectionReason", Value: reasonValue},
		{Path: "updatedAt", Value: time.Now()},
	})
}

func (r *firestoreProductRepository) Delete(ctx context.Context, id string) (int64, error) {
	return deleteDoc(ctx, r.client.Collection(productsCollection).Doc(id))
}
