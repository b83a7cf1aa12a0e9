package repository

import (
	"context"
	"sync"
	"time"

	"bazaartrack/internal/domain/entity"
	"bazaartrack/internal/domain/repository"
)

type memoryPaymentRepository struct {
	mu       sync.RWMutex
	payments []entity.Payment
}

func NewMemoryPaymentRepository() repository.PaymentRepository {
	return &memoryPaymentRepository{}
}

func (r *memoryPaymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if payment.ID == "" {
		payment.ID = newMemoryID()
	}
	if payment.CreatedAt.IsZero() {
		payment.CreatedAt = time.Now()
	}
	r.payments = append(r.payments, *payment)
	return nil
}

func (r *memoryPaymentRepository) List(ctx context.Context, filter entity.PaymentFilter) ([]*entity.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	payments := make([]*entity.Payment, 0)
	for _, payment := range r.payments {
		if filter.UserEmail != "" && payment.UserEmail != filter.UserEmail {
			continue
		}
		if filter.Status != "" && payment.Status != filter.Status {
			continue
		}
		p := payment
		payments = append(payments, &p)
	}
	newestFirst(payments, func(p *entity.Payment) time.Time { return p.CreatedAt })
	return payments, nil
}

func (r *memoryPaymentRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.payments)), nil
}

func (r *memoryPaymentRepository) SumAmount(ctx context.Context, status entity.PaymentStatus) (float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var total float64
	for _, payment := range r.payments {
		if payment.Status == status {
			total += payment.Amount
		}
	}
	return total, nil
}
