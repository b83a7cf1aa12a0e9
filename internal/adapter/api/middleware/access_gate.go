package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"bazaartrack/internal/domain/entity"
	"bazaartrack/internal/domain/service"
	"bazaartrack/pkg/errors"
	"bazaartrack/pkg/logger"
	"bazaartrack/pkg/response"
)

const (
	StagePresence      = "presence"
	StageVerification  = "verification"
	StageAuthorization = "authorization"

	principalKey = "principal"
)

type principalCtxKey struct{}

type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*service.Identity, error)
}

type RoleResolver interface {
	ResolveRole(ctx context.Context, email string) (entity.Role, error)
}

// gateRequest accumulates what each stage learns about the caller.
type gateRequest struct {
	rule     Rule
	header   string
	token    string
	identity *service.Identity
	role     entity.Role
}

type gateStage struct {
	name  string
	check func(ctx context.Context, req *gateRequest) error
}

// AccessGate admits or rejects every request against a Policy by running its stages
// in order; the first rejection ends evaluation.
type AccessGate struct {
	policy   Policy
	verifier TokenVerifier
	resolver RoleResolver
	stages   []gateStage
}

func NewAccessGate(policy Policy, verifier TokenVerifier, resolver RoleResolver) *AccessGate {
	g := &AccessGate{
		policy:   policy,
		verifier: verifier,
		resolver: resolver,
	}
	g.stages = []gateStage{
		{name: StagePresence, check: g.presence},
		{name: StageVerification, check: g.verification},
		{name: StageAuthorization, check: g.authorization},
	}
	return g
}

func (g *AccessGate) presence(_ context.Context, req *gateRequest) error {
	scheme, token, ok := strings.Cut(strings.TrimSpace(req.header), " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return errors.Unauthenticated("Authorization header with a Bearer token is required")
	}
	req.token = token
	return nil
}

func (g *AccessGate) verification(ctx context.Context, req *gateRequest) error {
	identity, err := g.verifier.VerifyToken(ctx, req.token)
	if err != nil {
		if errors.Is(err, errors.CodeInvalidCredential) {
			return err
		}
		return errors.InvalidCredential("Invalid or expired token", err)
	}
	req.identity = identity
	return nil
}

func (g *AccessGate) authorization(ctx context.Context, req *gateRequest) error {
	role, err := g.resolver.ResolveRole(ctx, req.identity.Email)
	if err != nil {
		return err
	}
	req.role = role

	if !req.rule.Admits(role) {
		return errors.Forbidden("Requires role "+req.rule.String(), nil)
	}
	return nil
}

// Evaluate runs the stages for one request and names the stage that rejected it.
func (g *AccessGate) Evaluate(ctx context.Context, rule Rule, authHeader string) (*service.Principal, string, error) {
	req := &gateRequest{rule: rule, header: authHeader}
	for _, stage := range g.stages {
		if err := stage.check(ctx, req); err != nil {
			return nil, stage.name, err
		}
	}
	return &service.Principal{Identity: *req.identity, Role: req.role}, "", nil
}

func (g *AccessGate) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			rule := g.policy.RuleFor(req.Method, c.Path())
			if rule.IsPublic() {
				return next(c)
			}

			principal, stage, err := g.Evaluate(req.Context(), rule, req.Header.Get(echo.HeaderAuthorization))
			if err != nil {
				logger.Warn("access denied at %s: %s %s: %v", stage, req.Method, c.Path(), err)
				return response.Error(c, err)
			}

			SetPrincipal(c, *principal)
			return next(c)
		}
	}
}

// SetPrincipal attaches the caller to both the echo context and the request context.
func SetPrincipal(c echo.Context, principal service.Principal) {
	c.Set(principalKey, principal)
	ctx := context.WithValue(c.Request().Context(), principalCtxKey{}, principal)
	c.SetRequest(c.Request().WithContext(ctx))
}

func PrincipalFrom(c echo.Context) (service.Principal, bool) {
	principal, ok := c.Get(principalKey).(service.Principal)
	return principal, ok
}

func PrincipalFromContext(ctx context.Context) (service.Principal, bool) {
	principal, ok := ctx.Value(principalCtxKey{}).(service.Principal)
	return principal, ok
}

// CurrentPrincipal is for handlers behind a non-public rule.
func CurrentPrincipal(c echo.Context) (service.Principal, error) {
	principal, ok := PrincipalFrom(c)
	if !ok {
		return service.Principal{}, errors.Unauthenticated("Authentication required")
	}
	return principal, nil
}
