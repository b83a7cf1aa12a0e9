package handler

import (
	"github.com/labstack/echo/v4"

	"bazaartrack/internal/adapter/api/middleware"
	"bazaartrack/internal/usecase"
	"bazaartrack/pkg/response"
)

type PaymentHandler struct {
	paymentUseCase *usecase.PaymentUseCase
}

func NewPaymentHandler(paymentUseCase *usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{
		paymentUseCase: paymentUseCase,
	}
}

type paymentIntentRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

type recordPaymentRequest struct {
	ProductID     string  `json:"productId" validate:"required"`
	ItemName      string  `json:"itemName"`
	MarketName    string  `json:"marketName"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	TransactionID string  `json:"transactionId"`
}

func (h *PaymentHandler) CreatePaymentIntent(c echo.Context) error {
	principal, err := middleware.CurrentPrincipal(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req paymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	intent, err := h.paymentUseCase.CreatePaymentIntent(c.Request().Context(), principal, req.Amount)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, intent)
}

func (h *PaymentHandler) RecordPayment(c echo.Context) error {
	principal, err := middleware.CurrentPrincipal(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req recordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	payment, err := h.paymentUseCase.RecordPayment(c.Request().Context(), principal, usecase.RecordPaymentInput{
		ProductID:     req.ProductID,
		ItemName:      req.ItemName,
		MarketName:    req.MarketName,
		Amount:        req.Amount,
		TransactionID: req.TransactionID,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, payment)
}

func (h *PaymentHandler) ListOrders(c echo.Context) error {
	payments, err := h.paymentUseCase.ListOrders(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, payments)
}

func (h *PaymentHandler) MyOrders(c echo.Context) error {
	principal, err := middleware.CurrentPrincipal(c)
	if err != nil {
		return response.Error(c, err)
	}

	payments, err := h.paymentUseCase.MyOrders(c.Request().Context(), principal)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, payments)
}
