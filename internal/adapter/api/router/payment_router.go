package router

import (
	"github.com/labstack/echo/v4"

	"bazaartrack/internal/adapter/api/handler"
)

func SetupPaymentRouter(e *echo.Echo, paymentHandler *handler.PaymentHandler) {
	e.POST("/create-payment-intent", paymentHandler.CreatePaymentIntent)
	e.POST("/payments", paymentHandler.RecordPayment)
	e.GET("/orders", paymentHandler.ListOrders)
	e.GET("/my-orders", paymentHandler.MyOrders)
}
