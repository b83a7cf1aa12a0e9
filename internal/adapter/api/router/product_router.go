package router

import (
	"github.com/labstack/echo/v4"

	"bazaartrack/internal/adapter/api/handler"
)

func SetupProductRouter(e *echo.Echo, productHandler *handler.ProductHandler) {
	products := e.Group("/products")
	products.GET("", productHandler.ListProducts)
	products.GET("/approved", productHandler.ListApproved)
	products.GET("/home", productHandler.HomeProducts)
	products.GET("/pagination", productHandler.PaginatedProducts)
	products.GET("/:id", productHandler.GetProduct)
	products.GET("/:id/price-trend", productHandler.PriceTrend)
	products.POST("", productHandler.CreateProduct)
	products.PUT("/:id", productHandler.UpdateProduct)
	products.DELETE("/:id", productHandler.DeleteProduct)

	admin := e.Group("/admin/products")
	admin.PATCH("/:id/approve", productHandler.ApproveProduct)
	admin.PATCH("/:id/reject", productHandler.RejectProduct)
}
