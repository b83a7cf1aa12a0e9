package usecase

import (
	"context"
	"strings"
	"time"

	"bazaartrack/internal/domain/entity"
	"bazaartrack/internal/domain/repository"
	"bazaartrack/internal/domain/service"
	"bazaartrack/pkg/errors"
	"bazaartrack/pkg/logger"
)

type UserUseCase struct {
	userRepo repository.UserRepository
	now      func() time.Time
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		now:      time.Now,
	}
}

type CreateUserInput struct {
	Email    string
	Name     string
	PhotoURL string
	Provider string
}

type CreateUserResult struct {
	Inserted bool         `json:"inserted"`
	User     *entity.User `json:"user"`
}

// CreateUser registers the caller on first sign-in. The existence check and the insert are
// separate store calls, so two concurrent first sign-ins can both insert.
func (uc *UserUseCase) CreateUser(ctx context.Context, caller service.Principal, input CreateUserInput) (*CreateUserResult, error) {
	email := strings.TrimSpace(input.Email)
	if !strings.EqualFold(email, caller.Email) {
		return nil, errors.Forbidden("Cannot create a user for another email", nil)
	}
	email = caller.Email

	now := uc.now()
	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err == nil {
		if err := uc.userRepo.TouchLastLogin(ctx, email, now); err != nil {
			return nil, err
		}
		existing.LastLogin = now
		return &CreateUserResult{Inserted: false, User: existing}, nil
	}
	if !errors.IsNotFound(err) {
		return nil, err
	}

	name := input.Name
	if name == "" {
		name = caller.Name
	}

	user := &entity.User{
		Email:     email,
		Name:      name,
		PhotoURL:  input.PhotoURL,
		Provider:  input.Provider,
		Role:      entity.RoleUser,
		CreatedAt: now,
		LastLogin: now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("Registered user %s", email)
	return &CreateUserResult{Inserted: true, User: user}, nil
}

func (uc *UserUseCase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	return uc.userRepo.List(ctx)
}

func (uc *UserUseCase) SearchUsers(ctx context.Context, query string, role string) ([]*entity.User, error) {
	r := entity.Role(strings.ToLower(strings.TrimSpace(role)))
	if r != "" && !r.Valid() {
		return nil, errors.Validation("role must be one of: user vendor admin")
	}
	return uc.userRepo.Search(ctx, strings.TrimSpace(query), r)
}

func (uc *UserUseCase) UpdateRole(ctx context.Context, id string, role string) (*entity.User, error) {
	r := entity.Role(strings.ToLower(strings.TrimSpace(role)))
	if !r.Valid() {
		return nil, errors.Validation("role must be one of: user vendor admin")
	}

	if err := uc.userRepo.UpdateRole(ctx, id, r); err != nil {
		return nil, err
	}

	logger.Info("User %s role changed to %s", id, r)
	return uc.userRepo.GetByID(ctx, id)
}
