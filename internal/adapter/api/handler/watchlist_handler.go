package handler

import (
	"github.com/labstack/echo/v4"

	"bazaartrack/internal/adapter/api/middleware"
	"bazaartrack/internal/usecase"
	"bazaartrack/pkg/errors"
	"bazaartrack/pkg/response"
)

type WatchListHandler struct {
	watchListUseCase *usecase.WatchListUseCase
}

func NewWatchListHandler(watchListUseCase *usecase.WatchListUseCase) *WatchListHandler {
	return &WatchListHandler{
		watchListUseCase: watchListUseCase,
	}
}

type addWatchListRequest struct {
	ProductID  string `json:"productId" validate:"required"`
	ItemName   string `json:"itemName"`
	MarketName string `json:"marketName"`
}

func (h *WatchListHandler) AddEntry(c echo.Context) error {
	principal, err := middleware.CurrentPrincipal(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req addWatchListRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	entry, err := h.watchListUseCase.AddEntry(c.Request().Context(), principal, usecase.AddWatchListInput{
		ProductID:  req.ProductID,
		ItemName:   req.ItemName,
		MarketName: req.MarketName,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, entry)
}

func (h *WatchListHandler) ListEntries(c echo.Context) error {
	principal, err := middleware.CurrentPrincipal(c)
	if err != nil {
		return response.Error(c, err)
	}

	entries, err := h.watchListUseCase.ListEntries(c.Request().Context(), principal)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, entries)
}

func (h *WatchListHandler) RemoveEntry(c echo.Context) error {
	principal, err := middleware.CurrentPrincipal(c)
	if err != nil {
		return response.Error(c, err)
	}

	deleted, err := h.watchListUseCase.RemoveEntry(c.Request().Context(), principal, c.Param("id"))
	if err != nil {
		if errors.IsNotFound(err) {
			return response.ErrorWithData(c, err, map[string]int64{"deletedCount": 0})
		}
		return response.Error(c, err)
	}
	return response.Success(c, map[string]int64{"deletedCount": deleted})
}
