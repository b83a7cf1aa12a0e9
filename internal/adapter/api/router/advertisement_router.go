package router

import (
	"github.com/labstack/echo/v4"

	"bazaartrack/internal/adapter/api/handler"
)

func SetupAdvertisementRouter(e *echo.Echo, adHandler *handler.AdvertisementHandler) {
	ads := e.Group("/advertisements")
	ads.GET("", adHandler.ListMyAdvertisements)
	ads.POST("", adHandler.CreateAdvertisement)
	ads.GET("/highlights", adHandler.Highlights)
	ads.PATCH("/:id", adHandler.UpdateAdvertisement)
	ads.DELETE("/:id", adHandler.DeleteAdvertisement)

	admin := e.Group("/admin/advertisements")
	admin.GET("", adHandler.ListAllAdvertisements)
	admin.PATCH("/:id/status", adHandler.UpdateStatus)
}
