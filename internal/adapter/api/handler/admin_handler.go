package handler

import (
	"github.com/labstack/echo/v4"

	"bazaartrack/internal/usecase"
	"bazaartrack/pkg/response"
)

type AdminHandler struct {
	statsUseCase *usecase.StatsUseCase
}

func NewAdminHandler(statsUseCase *usecase.StatsUseCase) *AdminHandler {
	return &AdminHandler{
		statsUseCase: statsUseCase,
	}
}

func (h *AdminHandler) GetDashboardStats(c echo.Context) error {
	stats, err := h.statsUseCase.Dashboard(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, stats)
}
