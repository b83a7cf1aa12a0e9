package usecase

import (
	"context"
	"strings"

	"bazaartrack/internal/domain/entity"
	"bazaartrack/internal/domain/repository"
	"bazaartrack/internal/domain/service"
	"bazaartrack/pkg/errors"
)

type WatchListUseCase struct {
	watchListRepo repository.WatchListRepository
}

func NewWatchListUseCase(watchListRepo repository.WatchListRepository) *WatchListUseCase {
	return &WatchListUseCase{
		watchListRepo: watchListRepo,
	}
}

type AddWatchListInput struct {
	ProductID  string
	ItemName   string
	MarketName string
}

// AddEntry does not dedupe; watching the same product twice yields two entries.
func (uc *WatchListUseCase) AddEntry(ctx context.Context, caller service.Principal, input AddWatchListInput) (*entity.WatchListEntry, error) {
	if strings.TrimSpace(input.ProductID) == "" {
		return nil, errors.Validation("productId is required")
	}

	entry := &entity.WatchListEntry{
		Email:      caller.Email,
		ProductID:  input.ProductID,
		ItemName:   input.ItemName,
		MarketName: input.MarketName,
	}
	if err := uc.watchListRepo.Add(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (uc *WatchListUseCase) ListEntries(ctx context.Context, caller service.Principal) ([]*entity.WatchListEntry, error) {
	return uc.watchListRepo.ListByEmail(ctx, caller.Email)
}

// RemoveEntry returns the deleted count alongside a NotFound error when nothing matched.
func (uc *WatchListUseCase) RemoveEntry(ctx context.Context, caller service.Principal, id string) (int64, error) {
	deleted, err := uc.watchListRepo.Delete(ctx, id, caller.Email)
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, errors.NotFound("Watch list entry", nil)
	}
	return deleted, nil
}
