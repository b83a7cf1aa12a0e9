package service

import (
	"context"
	"time"

	"bazaartrack/internal/domain/entity"
)

// Identity is the caller as vouched for by the identity provider.
type Identity struct {
	UID   string
	Email string
	Name  string
}

type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

// TokenIssuer mints credentials for local development; only the JWT verifier provides one.
type TokenIssuer interface {
	Issue(identity Identity, ttl time.Duration) (string, error)
}

// Principal is a verified caller together with the role resolved for it.
type Principal struct {
	Identity
	Role entity.Role
}

func (p Principal) IsAdmin() bool {
	return p.Role == entity.RoleAdmin
}

// Owns reports whether the principal may mutate a record owned by ownerEmail.
func (p Principal) Owns(ownerEmail string) bool {
	return p.IsAdmin() || p.Email == ownerEmail
}
