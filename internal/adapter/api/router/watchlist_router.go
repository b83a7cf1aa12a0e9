package router

import (
	"github.com/labstack/echo/v4"

	"bazaartrack/internal/adapter/api/handler"
)

func SetupWatchListRouter(e *echo.Echo, watchListHandler *handler.WatchListHandler) {
	watchList := e.Group("/watchList")
	watchList.GET("", watchListHandler.ListEntries)
	watchList.POST("", watchListHandler.AddEntry)
	watchList.DELETE("/:id", watchListHandler.RemoveEntry)
}
