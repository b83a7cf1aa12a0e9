package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bazaartrack/internal/adapter/repository"
	"bazaartrack/internal/domain/entity"
	domainrepo "bazaartrack/internal/domain/repository"
	"bazaartrack/pkg/errors"
)

// noListAds and noListPayments fail any full listing so Dashboard must aggregate.
type noListAds struct{ domainrepo.AdvertisementRepository }

func (noListAds) List(context.Context, entity.AdvertisementFilter) ([]*entity.Advertisement, error) {
	return nil, errors.Upstream("listing advertisements", nil)
}

type noListPayments struct{ domainrepo.PaymentRepository }

func (noListPayments) List(context.Context, entity.PaymentFilter) ([]*entity.Payment, error) {
	return nil, errors.Upstream("listing payments", nil)
}

func TestDashboard_UsesAggregates(t *testing.T) {
	ctx := context.Background()

	users := repository.NewMemoryUserRepository()
	require.NoError(t, users.Create(ctx, &entity.User{Email: "a@example.com", Role: entity.RoleUser}))

	products := repository.NewMemoryProductRepository()
	require.NoError(t, products.Create(ctx, &entity.Product{VendorEmail: "v@example.com", Status: entity.ProductPending}))

	ads := repository.NewMemoryAdvertisementRepository()
	require.NoError(t, ads.Create(ctx, &entity.Advertisement{VendorEmail: "v@example.com", Title: "Sale"}))
	require.NoError(t, ads.Create(ctx, &entity.Advertisement{VendorEmail: "v@example.com", Title: "Fresh"}))

	payments := repository.NewMemoryPaymentRepository()
	require.NoError(t, payments.Create(ctx, &entity.Payment{UserEmail: "a@example.com", Amount: 12.5, Status: entity.PaymentPaid}))
	require.NoError(t, payments.Create(ctx, &entity.Payment{UserEmail: "a@example.com", Amount: 7.5, Status: entity.PaymentPaid}))
	require.NoError(t, payments.Create(ctx, &entity.Payment{UserEmail: "a@example.com", Amount: 100, Status: entity.PaymentFailed}))

	uc := NewStatsUseCase(users, products, noListAds{ads}, noListPayments{payments})

	stats, err := uc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Users)
	assert.Equal(t, int64(1), stats.Products[entity.ProductPending])
	assert.Equal(t, int64(0), stats.Products[entity.ProductApproved])
	assert.Equal(t, int64(2), stats.Advertisements)
	assert.Equal(t, int64(3), stats.Payments)
	assert.Equal(t, 20.0, stats.Revenue)
}
