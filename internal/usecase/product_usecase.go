package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"bazaartrack/internal/domain/entity"
	"bazaartrack/internal/domain/repository"
	"bazaartrack/internal/domain/service"
	"bazaartrack/pkg/errors"
	"bazaartrack/pkg/logger"
)

const homeProductLimit = 6

type ProductUseCase struct {
	productRepo repository.ProductRepository
	notifier    service.PriceNotifier
	now         func() time.Time
}

func NewProductUseCase(productRepo repository.ProductRepository, notifier service.PriceNotifier) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		notifier:    notifier,
		now:         time.Now,
	}
}

type CreateProductInput struct {
	MarketName        string
	MarketDescription string
	Date              time.Time
	ItemName          string
	ItemDescription   string
	Image             string
	PricePerUnit      float64
	Prices            []entity.PricePoint
}

// UpdateProductInput only changes the fields that are set.
type UpdateProductInput struct {
	MarketName        *string
	MarketDescription *string
	Date              *time.Time
	ItemName          *string
	ItemDescription   *string
	Image             *string
	PricePerUnit      *float64
}

func validateProductInput(input CreateProductInput) error {
	switch {
	case strings.TrimSpace(input.MarketName) == "":
		return errors.Validation("marketName is required")
	case input.Date.IsZero():
		return errors.Validation("date is required")
	case strings.TrimSpace(input.ItemName) == "":
		return errors.Validation("itemName is required")
	case input.PricePerUnit <= 0:
		return errors.Validation("pricePerUnit must be greater than 0")
	}
	return nil
}

func (uc *ProductUseCase) CreateProduct(ctx context.Context, vendor service.Principal, input CreateProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	prices := input.Prices
	if len(prices) == 0 {
		prices = []entity.PricePoint{{Date: input.Date, Price: input.PricePerUnit}}
	}

	now := uc.now()
	product := &entity.Product{
		VendorEmail:       vendor.Email,
		VendorName:        vendor.Name,
		MarketName:        strings.TrimSpace(input.MarketName),
		MarketDescription: input.MarketDescription,
		Date:              input.Date,
		ItemName:          strings.TrimSpace(input.ItemName),
		ItemDescription:   input.ItemDescription,
		Image:             input.Image,
		Status:            entity.ProductPending,
		PricePerUnit:      input.PricePerUnit,
		Prices:            prices,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	logger.Info("Product %s created by %s", product.ID, vendor.Email)
	return product, nil
}

func (uc *ProductUseCase) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

// ListProducts scopes vendors to their own listings; admins may filter freely.
func (uc *ProductUseCase) ListProducts(ctx context.Context, caller service.Principal, status, vendorEmail string) ([]*entity.Product, error) {
	filter := entity.ProductFilter{}
	if caller.IsAdmin() {
		filter.VendorEmail = vendorEmail
	} else {
		filter.VendorEmail = caller.Email
	}

	if status != "" {
		s := entity.ProductStatus(status)
		if s != entity.ProductPending && s != entity.ProductApproved && s != entity.ProductRejected {
			return nil, errors.Validation("status must be one of: pending approved rejected")
		}
		filter.Status = s
	}

	products, _, err := uc.productRepo.List(ctx, filter)
	return products, err
}

// ListApproved sorts by pricePerUnit when sort is asc or desc, newest first otherwise.
func (uc *ProductUseCase) ListApproved(ctx context.Context, sortOrder string, from, to *time.Time) ([]*entity.Product, error) {
	filter := entity.ProductFilter{
		Status: entity.ProductApproved,
		From:   from,
		To:     to,
	}

	switch strings.ToLower(sortOrder) {
	case "":
	case "asc":
		filter.SortField = "pricePerUnit"
	case "desc":
		filter.SortField = "pricePerUnit"
		filter.SortDesc = true
	default:
		return nil, errors.Validation("sort must be one of: asc desc")
	}

	products, _, err := uc.productRepo.List(ctx, filter)
	return products, err
}

func (uc *ProductUseCase) HomeProducts(ctx context.Context) ([]*entity.Product, error) {
	products, _, err := uc.productRepo.List(ctx, entity.ProductFilter{
		Status:    entity.ProductApproved,
		SortField: "createdAt",
		SortDesc:  true,
		Limit:     homeProductLimit,
	})
	return products, err
}

func (uc *ProductUseCase) PaginatedApproved(ctx context.Context, limit, offset int) ([]*entity.Product, int64, error) {
	return uc.productRepo.List(ctx, entity.ProductFilter{
		Status:    entity.ProductApproved,
		SortField: "createdAt",
		SortDesc:  true,
		Limit:     limit,
		Offset:    offset,
	})
}

func (uc *ProductUseCase) PriceTrend(ctx context.Context, id string) ([]entity.PricePoint, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	points := append([]entity.PricePoint(nil), product.Prices...)
	sort.SliceStable(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return points, nil
}

func (uc *ProductUseCase) UpdateProduct(ctx context.Context, caller service.Principal, id string, input UpdateProductInput) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !caller.Owns(product.VendorEmail) {
		return nil, errors.Forbidden("You can only update your own products", nil)
	}

	if input.MarketName != nil {
		if strings.TrimSpace(*input.MarketName) == "" {
			return nil, errors.Validation("marketName cannot be empty")
		}
		product.MarketName = strings.TrimSpace(*input.MarketName)
	}
	if input.MarketDescription != nil {
		product.MarketDescription = *input.MarketDescription
	}
	if input.Date != nil {
		product.Date = *input.Date
	}
	if input.ItemName != nil {
		if strings.TrimSpace(*input.ItemName) == "" {
			return nil, errors.Validation("itemName cannot be empty")
		}
		product.ItemName = strings.TrimSpace(*input.ItemName)
	}
	if input.ItemDescription != nil {
		product.ItemDescription = *input.ItemDescription
	}
	if input.Image != nil {
		product.Image = *input.Image
	}
	if input.PricePerUnit != nil {
		if *input.PricePerUnit <= 0 {
			return nil, errors.Validation("pricePerUnit must be greater than 0")
		}
		if *input.PricePerUnit != product.PricePerUnit {
			date := product.Date
			if input.Date == nil {
				date = uc.now()
			}
			product.PricePerUnit = *input.PricePerUnit
			product.Prices = append(product.Prices, entity.PricePoint{Date: date, Price: product.PricePerUnit})
		}
	}

	// A vendor edit goes back through review.
	if !caller.IsAdmin() {
		product.Status = entity.ProductPending
		product.RejectionReason = ""
	}

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	uc.publish(product)
	return product, nil
}

func (uc *ProductUseCase) DeleteProduct(ctx context.Context, caller service.Principal, id string) (int64, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}

	if !caller.Owns(product.VendorEmail) {
		return 0, errors.Forbidden("You can only delete your own products", nil)
	}

	deleted, err := uc.productRepo.Delete(ctx, id)
	if err != nil {
		return 0, err
	}

	logger.Info("Product %s deleted by %s", id, caller.Email)
	return deleted, nil
}

func (uc *ProductUseCase) ApproveProduct(ctx context.Context, id string) (*entity.Product, error) {
	return uc.setStatus(ctx, id, entity.ProductApproved, "")
}

func (uc *ProductUseCase) RejectProduct(ctx context.Context, id, reason string) (*entity.Product, error) {
	return uc.setStatus(ctx, id, entity.ProductRejected, strings.TrimSpace(reason))
}

func (uc *ProductUseCase) setStatus(ctx context.Context, id string, status entity.ProductStatus, reason string) (*entity.Product, error) {
	if err := uc.productRepo.UpdateStatus(ctx, id, status, reason); err != nil {
		return nil, err
	}

	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	logger.Info("Product %s marked %s", id, status)
	uc.publish(product)
	return product, nil
}

func (uc *ProductUseCase) publish(product *entity.Product) {
	if uc.notifier == nil {
		return
	}
	uc.notifier.PublishPriceUpdate(service.PriceUpdate{
		ProductID:    product.ID,
		ItemName:     product.ItemName,
		MarketName:   product.MarketName,
		Status:       product.Status,
		PricePerUnit: product.PricePerUnit,
		At:           uc.now(),
	})
}
