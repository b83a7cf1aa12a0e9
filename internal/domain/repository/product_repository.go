package repository

import (
	"context"

	"bazaartrack/internal/domain/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, int64, error)
	Update(ctx context.Context, product *entity.Product) error
	UpdateStatus(ctx context.Context, id string, status entity.ProductStatus, reason string) error
	// Delete returns the number of removed documents, zero when id matched nothing.
	Delete(ctx context.Context, id string) (int64, error)
}
