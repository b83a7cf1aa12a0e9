package usecase

import (
	"context"

	"bazaartrack/internal/domain/entity"
	"bazaartrack/internal/domain/repository"
)

type StatsUseCase struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	adRepo      repository.AdvertisementRepository
	paymentRepo repository.PaymentRepository
}

func NewStatsUseCase(
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	adRepo repository.AdvertisementRepository,
	paymentRepo repository.PaymentRepository,
) *StatsUseCase {
	return &StatsUseCase{
		userRepo:    userRepo,
		productRepo: productRepo,
		adRepo:      adRepo,
		paymentRepo: paymentRepo,
	}
}

// Dashboard counts paid payments only toward revenue.
func (uc *StatsUseCase) Dashboard(ctx context.Context) (*entity.DashboardStats, error) {
	users, err := uc.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	stats := &entity.DashboardStats{
		Users:    users,
		Products: make(map[entity.ProductStatus]int64),
	}

	for _, status := range []entity.ProductStatus{entity.ProductPending, entity.ProductApproved, entity.ProductRejected} {
		_, total, err := uc.productRepo.List(ctx, entity.ProductFilter{Status: status, Limit: 1})
		if err != nil {
			return nil, err
		}
		stats.Products[status] = total
	}

	if stats.Advertisements, err = uc.adRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Payments, err = uc.paymentRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Revenue, err = uc.paymentRepo.SumAmount(ctx, entity.PaymentPaid); err != nil {
		return nil, err
	}

	return stats, nil
}
