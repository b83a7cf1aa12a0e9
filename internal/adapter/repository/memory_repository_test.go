package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bazaartrack/internal/domain/entity"
	"bazaartrack/pkg/errors"
)

func TestMemoryProductRepository_ListFiltersSortsAndPages(t *testing.T) {
	repo := NewMemoryProductRepository()
	ctx := context.Background()
	base := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	for i, price := range []float64{25, 5, 15, 35} {
		status := entity.ProductApproved
		if i == 3 {
			status = entity.ProductPending
		}
		require.NoError(t, repo.Create(ctx, &entity.Product{
			VendorEmail:  "vendor@example.com",
			ItemName:     "Rice",
			Date:         base.AddDate(0, 0, i),
			Status:       status,
			PricePerUnit: price,
			CreatedAt:    base.Add(time.Duration(i) * time.Hour),
		}))
	}

	products, total, err := repo.List(ctx, entity.ProductFilter{Status: entity.ProductApproved, SortField: "pricePerUnit"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, []float64{5, 15, 25}, []float64{products[0].PricePerUnit, products[1].PricePerUnit, products[2].PricePerUnit})

	products, total, err = repo.List(ctx, entity.ProductFilter{Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	require.Len(t, products, 2)
	assert.Equal(t, []float64{5, 25}, []float64{products[0].PricePerUnit, products[1].PricePerUnit}, "default order is newest first")

	products, _, err = repo.List(ctx, entity.ProductFilter{Offset: 10})
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestMemoryProductRepository_ReturnsCopies(t *testing.T) {
	repo := NewMemoryProductRepository()
	ctx := context.Background()

	product := &entity.Product{ItemName: "Lentils", Prices: []entity.PricePoint{{Price: 90}}}
	require.NoError(t, repo.Create(ctx, product))

	got, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	got.Prices[0].Price = 1
	got.ItemName = "changed"

	again, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lentils", again.ItemName)
	assert.Equal(t, 90.0, again.Prices[0].Price)
}

func TestMemoryProductRepository_MissingRecords(t *testing.T) {
	repo := NewMemoryProductRepository()
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "nope")
	assert.True(t, errors.IsNotFound(err))

	assert.True(t, errors.IsNotFound(repo.Update(ctx, &entity.Product{ID: "nope"})))
	assert.True(t, errors.IsNotFound(repo.UpdateStatus(ctx, "nope", entity.ProductApproved, "")))

	deleted, err := repo.Delete(ctx, "nope")
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestMemoryWatchListRepository_DeleteMatchesOwner(t *testing.T) {
	repo := NewMemoryWatchListRepository()
	ctx := context.Background()

	entry := &entity.WatchListEntry{Email: "user@example.com", ProductID: "p1"}
	require.NoError(t, repo.Add(ctx, entry))

	deleted, err := repo.Delete(ctx, entry.ID, "someone@example.com")
	require.NoError(t, err)
	assert.Zero(t, deleted)

	deleted, err = repo.Delete(ctx, entry.ID, "user@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}

func TestMemoryUserRepository_TouchLastLogin(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	at := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	assert.True(t, errors.IsNotFound(repo.TouchLastLogin(ctx, "ghost@example.com", at)))

	require.NoError(t, repo.Create(ctx, &entity.User{Email: "user@example.com", Role: entity.RoleUser}))
	require.NoError(t, repo.TouchLastLogin(ctx, "user@example.com", at))

	user, err := repo.GetByEmail(ctx, "user@example.com")
	require.NoError(t, err)
	assert.True(t, user.LastLogin.Equal(at))
}

func TestPaginate_OutOfRangeOffsets(t *testing.T) {
	items := []int{1, 2, 3}

	assert.Equal(t, []int{2, 3}, paginate(items, 0, 1))
	assert.Equal(t, []int{2}, paginate(items, 1, 1))
	assert.Empty(t, paginate(items, 10, 3))
	assert.Empty(t, paginate(items, 10, -5))
}

func TestMemoryRepositories_CountAndSum(t *testing.T) {
	ctx := context.Background()

	ads := NewMemoryAdvertisementRepository()
	require.NoError(t, ads.Create(ctx, &entity.Advertisement{Title: "a"}))
	count, err := ads.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	payments := NewMemoryPaymentRepository()
	require.NoError(t, payments.Create(ctx, &entity.Payment{Amount: 3, Status: entity.PaymentPaid}))
	require.NoError(t, payments.Create(ctx, &entity.Payment{Amount: 4.5, Status: entity.PaymentPaid}))
	require.NoError(t, payments.Create(ctx, &entity.Payment{Amount: 9, Status: entity.PaymentPending}))

	count, err = payments.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	paid, err := payments.SumAmount(ctx, entity.PaymentPaid)
	require.NoError(t, err)
	assert.Equal(t, 7.5, paid)

	failed, err := payments.SumAmount(ctx, entity.PaymentFailed)
	require.NoError(t, err)
	assert.Zero(t, failed)
}
