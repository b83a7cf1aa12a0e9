package usecase

import (
	"context"
	"strings"
	"time"

	"bazaartrack/internal/domain/entity"
	"bazaartrack/internal/domain/repository"
	"bazaartrack/internal/domain/service"
	"bazaartrack/pkg/errors"
)

type AuthUseCase struct {
	userRepo repository.UserRepository
	verifier service.IdentityVerifier
	issuer   service.TokenIssuer
	tokenTTL time.Duration
}

// NewAuthUseCase wires credential verification and role lookup. issuer may be nil when
// the identity provider cannot mint tokens locally.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	verifier service.IdentityVerifier,
	issuer service.TokenIssuer,
	tokenTTL time.Duration,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		verifier: verifier,
		issuer:   issuer,
		tokenTTL: tokenTTL,
	}
}

func (uc *AuthUseCase) VerifyToken(ctx context.Context, token string) (*service.Identity, error) {
	identity, err := uc.verifier.Verify(ctx, token)
	if err != nil {
		return nil, errors.InvalidCredential("Invalid or expired token", err)
	}
	return identity, nil
}

// ResolveRole returns the stored role for email, or guest when no user record exists.
func (uc *AuthUseCase) ResolveRole(ctx context.Context, email string) (entity.Role, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.IsNotFound(err) {
			return entity.RoleGuest, nil
		}
		return "", err
	}
	if !user.Role.Valid() {
		return entity.RoleGuest, nil
	}
	return user.Role, nil
}

func (uc *AuthUseCase) CanIssueTokens() bool {
	return uc.issuer != nil
}

func (uc *AuthUseCase) IssueDevToken(email, name string) (string, error) {
	if uc.issuer == nil {
		return "", errors.NotFound("Token issuer", nil)
	}

	email = strings.TrimSpace(email)
	if email == "" {
		return "", errors.Validation("email is required")
	}

	token, err := uc.issuer.Issue(service.Identity{Email: email, Name: name}, uc.tokenTTL)
	if err != nil {
		return "", errors.Upstream("Failed to issue token", err)
	}
	return token, nil
}
