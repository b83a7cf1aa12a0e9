package repository

import (
	"context"

	"bazaartrack/internal/domain/entity"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	// List returns newest first.
	List(ctx context.Context, filter entity.PaymentFilter) ([]*entity.Payment, error)
	Count(ctx context.Context) (int64, error)
	// SumAmount totals the amount of payments in status.
	SumAmount(ctx context.Context, status entity.PaymentStatus) (float64, error)
}
