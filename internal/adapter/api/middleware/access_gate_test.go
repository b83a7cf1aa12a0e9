package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bazaartrack/internal/domain/entity"
	"bazaartrack/internal/domain/service"
)

type spyVerifier struct {
	calls int
	known map[string]string
}

func (v *spyVerifier) VerifyToken(_ context.Context, token string) (*service.Identity, error) {
	v.calls++
	email, ok := v.known[token]
	if !ok {
		return nil, errors.New("bad signature")
	}
	return &service.Identity{UID: token, Email: email}, nil
}

type spyResolver struct {
	calls int
	roles map[string]entity.Role
}

func (r *spyResolver) ResolveRole(_ context.Context, email string) (entity.Role, error) {
	r.calls++
	if role, ok := r.roles[email]; ok {
		return role, nil
	}
	return entity.RoleGuest, nil
}

func newSpyGate(policy Policy) (*AccessGate, *spyVerifier, *spyResolver) {
	verifier := &spyVerifier{known: map[string]string{
		"admin":  "admin@example.com",
		"vendor": "vendor@example.com",
		"guest":  "guest@example.com",
	}}
	resolver := &spyResolver{roles: map[string]entity.Role{
		"admin@example.com":  entity.RoleAdmin,
		"vendor@example.com": entity.RoleVendor,
	}}
	return NewAccessGate(policy, verifier, resolver), verifier, resolver
}

func TestAccessGate_StagesShortCircuit(t *testing.T) {
	rule := RequireRoles(entity.RoleAdmin)

	tests := []struct {
		name          string
		header        string
		wantStage     string
		wantVerified  int
		wantResolved  int
		wantPrincipal bool
	}{
		{"missing header", "", StagePresence, 0, 0, false},
		{"wrong scheme", "Basic admin", StagePresence, 0, 0, false},
		{"empty bearer", "Bearer   ", StagePresence, 0, 0, false},
		{"unknown token", "Bearer forged", StageVerification, 1, 0, false},
		{"wrong role", "Bearer vendor", StageAuthorization, 1, 1, false},
		{"admitted", "Bearer admin", "", 1, 1, true},
		{"scheme is case insensitive", "bearer admin", "", 1, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate, verifier, resolver := newSpyGate(nil)

			principal, stage, err := gate.Evaluate(context.Background(), rule, tt.header)

			assert.Equal(t, tt.wantStage, stage)
			assert.Equal(t, tt.wantVerified, verifier.calls)
			assert.Equal(t, tt.wantResolved, resolver.calls)
			if tt.wantPrincipal {
				require.NoError(t, err)
				require.NotNil(t, principal)
				assert.Equal(t, entity.RoleAdmin, principal.Role)
				assert.Equal(t, "admin@example.com", principal.Email)
			} else {
				assert.Error(t, err)
				assert.Nil(t, principal)
			}
		})
	}
}

func TestAccessGate_AuthenticatedAdmitsGuests(t *testing.T) {
	gate, _, _ := newSpyGate(nil)

	principal, _, err := gate.Evaluate(context.Background(), Authenticated(), "Bearer guest")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleGuest, principal.Role)
}

func TestAccessGate_Middleware(t *testing.T) {
	policy := Policy{
		"GET /private": RequireRoles(entity.RoleVendor),
	}
	gate, verifier, _ := newSpyGate(policy)

	e := echo.New()
	e.Use(gate.Middleware())

	var seen service.Principal
	var seenInContext bool
	e.GET("/private", func(c echo.Context) error {
		seen, _ = PrincipalFrom(c)
		_, seenInContext = PrincipalFromContext(c.Request().Context())
		return c.NoContent(http.StatusNoContent)
	})
	e.GET("/public", func(c echo.Context) error {
		_, err := CurrentPrincipal(c)
		assert.Error(t, err)
		return c.NoContent(http.StatusNoContent)
	})

	tests := []struct {
		name     string
		path     string
		header   string
		wantCode int
		wantErr  string
	}{
		{"public route needs nothing", "/public", "", http.StatusNoContent, ""},
		{"no credential", "/private", "", http.StatusUnauthorized, "UNAUTHENTICATED"},
		{"invalid credential", "/private", "Bearer forged", http.StatusForbidden, "INVALID_CREDENTIAL"},
		{"insufficient role", "/private", "Bearer admin", http.StatusForbidden, "FORBIDDEN"},
		{"admitted", "/private", "Bearer vendor", http.StatusNoContent, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantErr != "" {
				var body struct {
					Error struct {
						Code string `json:"code"`
					} `json:"error"`
				}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.wantErr, body.Error.Code)
			}
		})
	}

	assert.Equal(t, "vendor@example.com", seen.Email)
	assert.Equal(t, entity.RoleVendor, seen.Role)
	assert.True(t, seenInContext)
	assert.Positive(t, verifier.calls)
}

func TestPolicy_RuleFor(t *testing.T) {
	policy := Policy{
		"DELETE /items/:id": RequireRoles(entity.RoleVendor, entity.RoleAdmin),
	}

	rule := policy.RuleFor("delete", "/items/:id")
	assert.False(t, rule.IsPublic())
	assert.True(t, rule.Admits(entity.RoleAdmin))
	assert.True(t, rule.Admits(entity.RoleVendor))
	assert.False(t, rule.Admits(entity.RoleUser))
	assert.Equal(t, "vendor|admin", rule.String())

	assert.True(t, policy.RuleFor(http.MethodGet, "/items/:id").IsPublic())
	assert.True(t, Authenticated().Admits(entity.RoleGuest))
}
