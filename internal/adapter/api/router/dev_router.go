package router

import (
	"github.com/labstack/echo/v4"

	"bazaartrack/internal/adapter/api/handler"
)

// SetupDevRouter exposes token minting in development when a local issuer exists.
func SetupDevRouter(e *echo.Echo, devTokenHandler *handler.DevTokenHandler, environment string) {
	if environment != "development" || !devTokenHandler.Enabled() {
		return
	}
	e.GET("/_dev/token", devTokenHandler.GenerateToken)
}
