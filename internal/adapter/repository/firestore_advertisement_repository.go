package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"bazaartrack/internal/domain/entity"
	"bazaartrack/internal/domain/repository"
	"bazaartrack/pkg/errors"
)

type firestoreAdvertisementRepository struct {
	client *firestore.Client
}

func NewFirestoreAdvertisementRepository(client *firestore.Client) repository.AdvertisementRepository {
	return &firestoreAdvertisementRepository{
		client: client,
	}
}

func (r *firestoreAdvertisementRepository) Create(ctx context.Context, ad *entity.Advertisement) error {
	if ad.ID == "" {
		ad.ID = r.client.Collection(advertisementsCollection).NewDoc().ID
	}

	now := time.Now()
	if ad.CreatedAt.IsZero() {
		ad.CreatedAt = now
	}
	ad.UpdatedAt = now

	_, err := r.client.Collection(advertisementsCollection).Doc(ad.ID).Set(ctx, ad)
	if err != nil {
		return errors.Upstream("Failed to create advertisement", err)
	}
	return nil
}

func (r *firestoreAdvertisementRepository) GetByID(ctx context.Context, id string) (*entity.Advertisement, error) {
	return getDoc[entity.Advertisement](ctx, r.client.Collection(advertisementsCollection).Doc(id), "Advertisement")
}

func (r *firestoreAdvertisementRepository) List(ctx context.Context, filter entity.AdvertisementFilter) ([]*entity.Advertisement, error) {
	query := r.client.Collection(advertisementsCollection).Query
	if filter.VendorEmail != "" {
		query = query.Where("vendorEmail", "==", filter.VendorEmail)
	}
	if filter.Status != "" {
		query = query.Where("status", "==", filter.Status)
	}

	ads, err := queryDocs[entity.Advertisement](ctx, query, advertisementsCollection)
	if err != nil {
		return nil, err
	}

	newestFirst(ads, func(a *entity.Advertisement) time.Time { return a.CreatedAt })
	return paginate(ads, filter.Limit, 0), nil
}

func (r *firestoreAdvertisementRepository) Update(ctx context.Context, ad *entity.Advertisement) error {
	ad.UpdatedAt = time.Now()

	ref := r.client.Collection(advertisementsCollection).Doc(ad.ID)
	if _, err := getDoc[entity.Advertisement](ctx, ref, "Advertisement"); err != nil {
		return err
	}

	if _, err := ref.Set(ctx, ad); err != nil {
		return errors.Upstream("Failed to update advertisement", err)
	}
	return nil
}

func (r *firestoreAdvertisementRepository) UpdateStatus(ctx context.Context, id string, status entity.AdvertisementStatus) error {
	return updateDoc(ctx, r.client.Collection(advertisementsCollection).Doc(id), "Advertisement", []firestore.Update{
		{Path: "status", Value: status},
		{Path: "updatedAt", Value: time.Now()},
	})
}

func (r *firestoreAdvertisementRepository) Delete(ctx context.Context, id string) (int64, error) {
	return deleteDoc(ctx, r.client.Collection(advertisementsCollection).Doc(id))
}

func (r *firestoreAdvertisementRepository) Count(ctx context.Context) (int64, error) {
	return countDocs(ctx, r.client.Collection(advertisementsCollection).Query, advertisementsCollection)
}
