package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bazaartrack/internal/adapter/repository"
	"bazaartrack/internal/domain/entity"
	"bazaartrack/internal/domain/service"
	"bazaartrack/pkg/errors"
)

type stubGateway struct {
	last service.PaymentIntentRequest
	err  error
}

func (g *stubGateway) CreatePaymentIntent(_ context.Context, req service.PaymentIntentRequest) (*entity.PaymentIntent, error) {
	g.last = req
	if g.err != nil {
		return nil, g.err
	}
	return &entity.PaymentIntent{ID: "pi_1", ClientSecret: "secret", Amount: req.Amount, Currency: req.Currency}, nil
}

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		amount float64
		want   int64
	}{
		{10, 1000},
		{12.5, 1250},
		{19.99, 1999},
		{0.1 + 0.2, 30},
		{1.005, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToMinorUnits(tt.amount), "amount %v", tt.amount)
	}
}

func TestCreatePaymentIntent(t *testing.T) {
	gateway := &stubGateway{}
	uc := NewPaymentUseCase(repository.NewMemoryPaymentRepository(), gateway, "USD")

	intent, err := uc.CreatePaymentIntent(context.Background(), testUser, 19.99)
	require.NoError(t, err)
	assert.Equal(t, int64(1999), intent.Amount)
	assert.Equal(t, "usd", gateway.last.Currency)
	assert.Equal(t, "user@example.com", gateway.last.Email)

	_, err = uc.CreatePaymentIntent(context.Background(), testUser, 0)
	assert.True(t, errors.Is(err, errors.CodeValidation))

	gateway.err = assert.AnError
	_, err = uc.CreatePaymentIntent(context.Background(), testUser, 5)
	assert.True(t, errors.Is(err, errors.CodeUpstreamFailure))
	assert.ErrorIs(t, err, assert.AnError)
}

func TestCreatePaymentIntent_NoGateway(t *testing.T) {
	uc := NewPaymentUseCase(repository.NewMemoryPaymentRepository(), nil, "usd")

	_, err := uc.CreatePaymentIntent(context.Background(), testUser, 5)
	assert.True(t, errors.Is(err, errors.CodeUpstreamFailure))
}

func TestRecordPaymentAndMyOrders(t *testing.T) {
	repo := repository.NewMemoryPaymentRepository()
	uc := NewPaymentUseCase(repo, nil, "usd")
	ctx := context.Background()

	paid, err := uc.RecordPayment(ctx, testUser, RecordPaymentInput{ProductID: "p1", Amount: 40, TransactionID: "pi_1"})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPaid, paid.Status)

	_, err = uc.RecordPayment(ctx, testUser, RecordPaymentInput{Amount: 40})
	assert.True(t, errors.Is(err, errors.CodeValidation))

	require.NoError(t, repo.Create(ctx, &entity.Payment{UserEmail: testUser.Email, ProductID: "p2", Amount: 5, Status: entity.PaymentFailed}))
	_, err = uc.RecordPayment(ctx, otherVendor, RecordPaymentInput{ProductID: "p3", Amount: 7})
	require.NoError(t, err)

	mine, err := uc.MyOrders(ctx, testUser)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "p1", mine[0].ProductID)

	all, err := uc.ListOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
