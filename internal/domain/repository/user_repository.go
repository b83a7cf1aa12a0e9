package repository

import (
	"context"
	"time"

	"bazaartrack/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	// Search matches query case-insensitively against name and email; role narrows when non-empty.
	Search(ctx context.Context, query string, role entity.Role) ([]*entity.User, error)
	UpdateRole(ctx context.Context, id string, role entity.Role) error
	TouchLastLogin(ctx context.Context, email string, at time.Time) error
	Count(ctx context.Context) (int64, error)
}
