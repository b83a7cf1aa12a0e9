package router

import (
	"github.com/labstack/echo/v4"

	"bazaartrack/internal/adapter/api/handler"
)

func SetupAdminRouter(e *echo.Echo, adminHandler *handler.AdminHandler) {
	e.GET("/admin/stats", adminHandler.GetDashboardStats)
}
