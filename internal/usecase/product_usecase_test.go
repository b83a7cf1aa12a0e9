package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bazaartrack/internal/adapter/repository"
	"bazaartrack/internal/domain/entity"
	"bazaartrack/internal/domain/service"
	"bazaartrack/pkg/errors"
)

type recordingNotifier struct {
	mu      sync.Mutex
	updates []service.PriceUpdate
}

func (n *recordingNotifier) PublishPriceUpdate(update service.PriceUpdate) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.updates = append(n.updates, update)
}

var (
	testVendor  = service.Principal{Identity: service.Identity{Email: "vendor@example.com", Name: "Vendor"}, Role: entity.RoleVendor}
	otherVendor = service.Principal{Identity: service.Identity{Email: "other@example.com"}, Role: entity.RoleVendor}
	testAdmin   = service.Principal{Identity: service.Identity{Email: "admin@example.com"}, Role: entity.RoleAdmin}
	testUser    = service.Principal{Identity: service.Identity{Email: "user@example.com", Name: "User"}, Role: entity.RoleUser}
)

func newProductUseCase(t *testing.T) (*ProductUseCase, *recordingNotifier) {
	t.Helper()
	notifier := &recordingNotifier{}
	uc := NewProductUseCase(repository.NewMemoryProductRepository(), notifier)
	uc.now = func() time.Time { return time.Date(2026, 10, 5, 12, 0, 0, 0, time.UTC) }
	return uc, notifier
}

func onionInput() CreateProductInput {
	return CreateProductInput{
		MarketName:   " Karwan Bazar ",
		Date:         time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		ItemName:     "Onion",
		PricePerUnit: 40,
	}
}

func TestCreateProduct_StartsPendingWithOnePricePoint(t *testing.T) {
	uc, _ := newProductUseCase(t)

	product, err := uc.CreateProduct(context.Background(), testVendor, onionInput())
	require.NoError(t, err)

	assert.NotEmpty(t, product.ID)
	assert.Equal(t, entity.ProductPending, product.Status)
	assert.Equal(t, "Karwan Bazar", product.MarketName)
	assert.Equal(t, "Vendor", product.VendorName)
	assert.Equal(t, []entity.PricePoint{{Date: onionInput().Date, Price: 40}}, product.Prices)
}

func TestCreateProduct_Validation(t *testing.T) {
	uc, _ := newProductUseCase(t)

	tests := []struct {
		name   string
		modify func(*CreateProductInput)
	}{
		{"blank market", func(in *CreateProductInput) { in.MarketName = "  " }},
		{"missing date", func(in *CreateProductInput) { in.Date = time.Time{} }},
		{"blank item", func(in *CreateProductInput) { in.ItemName = "" }},
		{"zero price", func(in *CreateProductInput) { in.PricePerUnit = 0 }},
		{"negative price", func(in *CreateProductInput) { in.PricePerUnit = -3 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := onionInput()
			tt.modify(&input)

			_, err := uc.CreateProduct(context.Background(), testVendor, input)
			assert.True(t, errors.Is(err, errors.CodeValidation), "got %v", err)
		})
	}

	products, err := uc.ListProducts(context.Background(), testAdmin, "", "")
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestUpdateProduct_Ownership(t *testing.T) {
	uc, _ := newProductUseCase(t)
	ctx := context.Background()
	product, err := uc.CreateProduct(ctx, testVendor, onionInput())
	require.NoError(t, err)

	name := "Red onion"
	_, err = uc.UpdateProduct(ctx, otherVendor, product.ID, UpdateProductInput{ItemName: &name})
	assert.True(t, errors.Is(err, errors.CodeForbidden))

	_, err = uc.DeleteProduct(ctx, otherVendor, product.ID)
	assert.True(t, errors.Is(err, errors.CodeForbidden))

	updated, err := uc.UpdateProduct(ctx, testAdmin, product.ID, UpdateProductInput{ItemName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Red onion", updated.ItemName)
}

func TestUpdateProduct_PriceChangeAppendsPointAndNotifies(t *testing.T) {
	uc, notifier := newProductUseCase(t)
	ctx := context.Background()
	product, err := uc.CreateProduct(ctx, testVendor, onionInput())
	require.NoError(t, err)
	_, err = uc.ApproveProduct(ctx, product.ID)
	require.NoError(t, err)

	price := 42.5
	updated, err := uc.UpdateProduct(ctx, testVendor, product.ID, UpdateProductInput{PricePerUnit: &price})
	require.NoError(t, err)

	assert.Equal(t, entity.ProductPending, updated.Status)
	require.Len(t, updated.Prices, 2)
	assert.Equal(t, entity.PricePoint{Date: uc.now(), Price: 42.5}, updated.Prices[1])

	same := 42.5
	updated, err = uc.UpdateProduct(ctx, testVendor, product.ID, UpdateProductInput{PricePerUnit: &same})
	require.NoError(t, err)
	assert.Len(t, updated.Prices, 2)

	require.Len(t, notifier.updates, 3)
	assert.Equal(t, product.ID, notifier.updates[1].ProductID)
	assert.Equal(t, 42.5, notifier.updates[1].PricePerUnit)
}

func TestUpdateProduct_AdminEditKeepsStatus(t *testing.T) {
	uc, _ := newProductUseCase(t)
	ctx := context.Background()
	product, err := uc.CreateProduct(ctx, testVendor, onionInput())
	require.NoError(t, err)
	_, err = uc.ApproveProduct(ctx, product.ID)
	require.NoError(t, err)

	desc := "Local harvest"
	updated, err := uc.UpdateProduct(ctx, testAdmin, product.ID, UpdateProductInput{ItemDescription: &desc})
	require.NoError(t, err)
	assert.Equal(t, entity.ProductApproved, updated.Status)
}

func TestRejectProduct_ThenApproveClearsReason(t *testing.T) {
	uc, _ := newProductUseCase(t)
	ctx := context.Background()
	product, err := uc.CreateProduct(ctx, testVendor, onionInput())
	require.NoError(t, err)

	rejected, err := uc.RejectProduct(ctx, product.ID, "  price looks wrong ")
	require.NoError(t, err)
	assert.Equal(t, entity.ProductRejected, rejected.Status)
	assert.Equal(t, "price looks wrong", rejected.RejectionReason)

	approved, err := uc.ApproveProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ProductApproved, approved.Status)
	assert.Empty(t, approved.RejectionReason)
}

func TestApproveProduct_Missing(t *testing.T) {
	uc, notifier := newProductUseCase(t)

	_, err := uc.ApproveProduct(context.Background(), "missing")
	assert.True(t, errors.IsNotFound(err))
	assert.Empty(t, notifier.updates)
}

func TestListApproved_SortAndDateRange(t *testing.T) {
	uc, _ := newProductUseCase(t)
	ctx := context.Background()

	for i, price := range []float64{30, 10, 20} {
		input := onionInput()
		input.PricePerUnit = price
		input.Date = input.Date.AddDate(0, 0, i)
		product, err := uc.CreateProduct(ctx, testVendor, input)
		require.NoError(t, err)
		_, err = uc.ApproveProduct(ctx, product.ID)
		require.NoError(t, err)
	}

	asc, err := uc.ListApproved(ctx, "asc", nil, nil)
	require.NoError(t, err)
	require.Len(t, asc, 3)
	assert.Equal(t, []float64{10, 20, 30}, []float64{asc[0].PricePerUnit, asc[1].PricePerUnit, asc[2].PricePerUnit})

	desc, err := uc.ListApproved(ctx, "DESC", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 30.0, desc[0].PricePerUnit)

	from := time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 10, 2, 23, 59, 59, 0, time.UTC)
	ranged, err := uc.ListApproved(ctx, "", &from, &to)
	require.NoError(t, err)
	require.Len(t, ranged, 1)
	assert.Equal(t, 10.0, ranged[0].PricePerUnit)

	_, err = uc.ListApproved(ctx, "sideways", nil, nil)
	assert.True(t, errors.Is(err, errors.CodeValidation))
}

func TestHomeProducts_CapsAtSix(t *testing.T) {
	uc, _ := newProductUseCase(t)
	ctx := context.Background()

	for i := 0; i < 8; i++ {
		product, err := uc.CreateProduct(ctx, testVendor, onionInput())
		require.NoError(t, err)
		_, err = uc.ApproveProduct(ctx, product.ID)
		require.NoError(t, err)
	}

	products, err := uc.HomeProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, homeProductLimit)
}

func TestPriceTrend_SortedByDate(t *testing.T) {
	uc, _ := newProductUseCase(t)
	ctx := context.Background()

	input := onionInput()
	input.Prices = []entity.PricePoint{
		{Date: time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC), Price: 38},
		{Date: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), Price: 35},
		{Date: time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC), Price: 36},
	}
	product, err := uc.CreateProduct(ctx, testVendor, input)
	require.NoError(t, err)

	points, err := uc.PriceTrend(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, []float64{35, 36, 38}, []float64{points[0].Price, points[1].Price, points[2].Price})
}
