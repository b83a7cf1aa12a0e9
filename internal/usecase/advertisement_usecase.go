package usecase

import (
	"context"
	"strings"

	"bazaartrack/internal/domain/entity"
	"bazaartrack/internal/domain/repository"
	"bazaartrack/internal/domain/service"
	"bazaartrack/pkg/errors"
	"bazaartrack/pkg/logger"
)

const highlightLimit = 6

type AdvertisementUseCase struct {
	adRepo repository.AdvertisementRepository
}

func NewAdvertisementUseCase(adRepo repository.AdvertisementRepository) *AdvertisementUseCase {
	return &AdvertisementUseCase{
		adRepo: adRepo,
	}
}

type AdvertisementInput struct {
	Title       string
	Description string
	Image       string
}

type UpdateAdvertisementInput struct {
	Title       *string
	Description *string
	Image       *string
}

func (uc *AdvertisementUseCase) CreateAdvertisement(ctx context.Context, vendor service.Principal, input AdvertisementInput) (*entity.Advertisement, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, errors.Validation("title is required")
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, errors.Validation("description is required")
	}

	ad := &entity.Advertisement{
		VendorEmail: vendor.Email,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Image:       input.Image,
		Status:      entity.AdvertisementPending,
	}
	if err := uc.adRepo.Create(ctx, ad); err != nil {
		return nil, err
	}

	logger.Info("Advertisement %s submitted by %s", ad.ID, vendor.Email)
	return ad, nil
}

func (uc *AdvertisementUseCase) ListVendorAdvertisements(ctx context.Context, vendor service.Principal) ([]*entity.Advertisement, error) {
	return uc.adRepo.List(ctx, entity.AdvertisementFilter{VendorEmail: vendor.Email})
}

func (uc *AdvertisementUseCase) ListAllAdvertisements(ctx context.Context, status string) ([]*entity.Advertisement, error) {
	s := entity.AdvertisementStatus(status)
	if s != "" && !s.Valid() {
		return nil, errors.Validation("status must be one of: pending approved rejected")
	}
	return uc.adRepo.List(ctx, entity.AdvertisementFilter{Status: s})
}

func (uc *AdvertisementUseCase) Highlights(ctx context.Context) ([]*entity.Advertisement, error) {
	return uc.adRepo.List(ctx, entity.AdvertisementFilter{
		Status: entity.AdvertisementApproved,
		Limit:  highlightLimit,
	})
}

func (uc *AdvertisementUseCase) UpdateAdvertisement(ctx context.Context, vendor service.Principal, id string, input UpdateAdvertisementInput) (*entity.Advertisement, error) {
	ad, err := uc.adRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if ad.VendorEmail != vendor.Email {
		return nil, errors.Forbidden("You can only update your own advertisements", nil)
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, errors.Validation("title cannot be empty")
		}
		ad.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		if strings.TrimSpace(*input.Description) == "" {
			return nil, errors.Validation("description cannot be empty")
		}
		ad.Description = strings.TrimSpace(*input.Description)
	}
	if input.Image != nil {
		ad.Image = *input.Image
	}

	if err := uc.adRepo.Update(ctx, ad); err != nil {
		return nil, err
	}
	return ad, nil
}

func (uc *AdvertisementUseCase) DeleteAdvertisement(ctx context.Context, caller service.Principal, id string) (int64, error) {
	ad, err := uc.adRepo.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}

	if !caller.Owns(ad.VendorEmail) {
		return 0, errors.Forbidden("You can only delete your own advertisements", nil)
	}

	return uc.adRepo.Delete(ctx, id)
}

func (uc *AdvertisementUseCase) UpdateStatus(ctx context.Context, id, status string) (*entity.Advertisement, error) {
	s := entity.AdvertisementStatus(strings.ToLower(strings.TrimSpace(status)))
	if !s.Valid() {
		return nil, errors.Validation("status must be one of: pending approved rejected")
	}

	if err := uc.adRepo.UpdateStatus(ctx, id, s); err != nil {
		return nil, err
	}

	logger.Info("Advertisement %s marked %s", id, s)
	return uc.adRepo.GetByID(ctx, id)
}
