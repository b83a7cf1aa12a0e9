package repository

import (
	"context"

	"bazaartrack/internal/domain/entity"
)

type AdvertisementRepository interface {
	Create(ctx context.Context, ad *entity.Advertisement) error
	GetByID(ctx context.Context, id string) (*entity.Advertisement, error)
	// List returns newest first.
	List(ctx context.Context, filter entity.AdvertisementFilter) ([]*entity.Advertisement, error)
	Update(ctx context.Context, ad *entity.Advertisement) error
	UpdateStatus(ctx context.Context, id string, status entity.AdvertisementStatus) error
	Delete(ctx context.Context, id string) (int64, error)
	Count(ctx context.Context) (int64, error)
}
