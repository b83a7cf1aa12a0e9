package router

import (
	"github.com/labstack/echo/v4"

	"bazaartrack/internal/adapter/api/handler"
)

func SetupReviewRouter(e *echo.Echo, reviewHandler *handler.ReviewHandler) {
	e.POST("/reviews", reviewHandler.CreateReview)
	e.GET("/reviews/:productId", reviewHandler.ListReviews)
}
