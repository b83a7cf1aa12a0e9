package handler

import (
	"github.com/labstack/echo/v4"

	"bazaartrack/internal/usecase"
	"bazaartrack/pkg/response"
)

type DevTokenHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewDevTokenHandler(authUseCase *usecase.AuthUseCase) *DevTokenHandler {
	return &DevTokenHandler{
		authUseCase: authUseCase,
	}
}

// GenerateToken mints a short-lived HS256 token for ?email=, optionally with &name=.
func (h *DevTokenHandler) GenerateToken(c echo.Context) error {
	email := c.QueryParam("email")

	token, err := h.authUseCase.IssueDevToken(email, c.QueryParam("name"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"email": email,
		"token": token,
		"type":  "Bearer",
	})
}

func (h *DevTokenHandler) Enabled() bool {
	return h.authUseCase.CanIssueTokens()
}
