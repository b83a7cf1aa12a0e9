package router

import (
	"github.com/labstack/echo/v4"

	"bazaartrack/internal/adapter/api/handler"
)

func SetupHealthRouter(e *echo.Echo, healthHandler *handler.HealthHandler) {
	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.CheckHealth)
}
