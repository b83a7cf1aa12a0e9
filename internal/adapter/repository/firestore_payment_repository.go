package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"bazaartrack/internal/domain/entity"
	"bazaartrack/internal/domain/repository"
	"bazaartrack/pkg/errors"
)

type firestorePaymentRepository struct {
	client *firestore.Client
}

func NewFirestorePaymentRepository(client *firestore.Client) repository.PaymentRepository {
	return &firestorePaymentRepository{
		client: client,
	}
}

func (r *firestorePaymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	if payment.ID == "" {
		payment.ID = r.client.Collection(paymentsCollection).NewDoc().ID
	}
	if payment.CreatedAt.IsZero() {
		payment.CreatedAt = time.Now()
	}

	_, err := r.client.Collection(paymentsCollection).Doc(payment.ID).Set(ctx, payment)
	if err != nil {
		return errors.Upstream("Failed to record payment", err)
	}
	return nil
}

func (r *firestorePaymentRepository) List(ctx context.Context, filter entity.PaymentFilter) ([]*entity.Payment, error) {
	query := r.client.Collection(paymentsCollection).Query
	if filter.UserEmail != "" {
		query = query.Where("userEmail", "==", filter.UserEmail)
	}
	if filter.Status != "" {
		query = query.Where("status", "==", filter.Status)
	}

	payments, err := queryDocs[entity.Payment](ctx, query, paymentsCollection)
	if err != nil {
		return nil, err
	}

	newestFirst(payments, func(p *entity.Payment) time.Time { return p.CreatedAt })
	return payments, nil
}

func (r *firestorePaymentRepository) Count(ctx context.Context) (int64, error) {
	return countDocs(ctx, r.client.Collection(paymentsCollection).Query, paymentsCollection)
}

func (r *firestorePaymentRepository) SumAmount(ctx context.Context, status entity.PaymentStatus) (float64, error) {
	query := r.client.Collection(paymentsCollection).Where("status", "==", status)
	return sumDocs(ctx, query, "amount", paymentsCollection)
}
