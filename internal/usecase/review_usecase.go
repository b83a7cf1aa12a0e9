package usecase

import (
	"context"
	"strings"

	"bazaartrack/internal/domain/entity"
	"bazaartrack/internal/domain/repository"
	"bazaartrack/internal/domain/service"
	"bazaartrack/pkg/errors"
)

type ReviewUseCase struct {
	reviewRepo repository.ReviewRepository
	userRepo   repository.UserRepository
}

func NewReviewUseCase(reviewRepo repository.ReviewRepository, userRepo repository.UserRepository) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
	}
}

type CreateReviewInput struct {
	ProductID string
	Rating    int
	Comment   string
}

func (uc *ReviewUseCase) CreateReview(ctx context.Context, caller service.Principal, input CreateReviewInput) (*entity.Review, error) {
	if strings.TrimSpace(input.ProductID) == "" {
		return nil, errors.Validation("productId is required")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.Validation("rating must be between 1 and 5")
	}

	review := &entity.Review{
		ProductID: input.ProductID,
		UserEmail: caller.Email,
		UserName:  caller.Name,
		Rating:    input.Rating,
		Comment:   strings.TrimSpace(input.Comment),
	}

	// Prefer the stored profile for display fields; a guest reviewer keeps the token name.
	if user, err := uc.userRepo.GetByEmail(ctx, caller.Email); err == nil {
		if user.Name != "" {
			review.UserName = user.Name
		}
		review.UserPhoto = user.PhotoURL
	} else if !errors.IsNotFound(err) {
		return nil, err
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (uc *ReviewUseCase) ListReviews(ctx context.Context, productID string) ([]*entity.Review, error) {
	return uc.reviewRepo.ListByProduct(ctx, productID)
}
