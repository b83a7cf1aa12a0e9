package router

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"bazaartrack/internal/adapter/api/handler"
)

func SetupFileRouter(e *echo.Echo, fileHandler *handler.FileHandler) {
	e.POST("/uploads", fileHandler.UploadImage, middleware.BodyLimit("6M"))
}
