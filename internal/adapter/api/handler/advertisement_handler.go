package handler

import (
	"github.com/labstack/echo/v4"

	"bazaartrack/internal/adapter/api/middleware"
	"bazaartrack/internal/usecase"
	"bazaartrack/pkg/response"
)

type AdvertisementHandler struct {
	adUseCase *usecase.AdvertisementUseCase
}

func NewAdvertisementHandler(adUseCase *usecase.AdvertisementUseCase) *AdvertisementHandler {
	return &AdvertisementHandler{
		adUseCase: adUseCase,
	}
}

type createAdvertisementRequest struct {
	Title       string `json:"title" validate:"required,max=120"`
	Description string `json:"description" validate:"required,max=1000"`
	Image       string `json:"image" validate:"omitempty,url"`
}

type updateAdvertisementRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=120"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	Image       *string `json:"image" validate:"omitempty,url"`
}

type advertisementStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}

func (h *AdvertisementHandler) CreateAdvertisement(c echo.Context) error {
	principal, err := middleware.CurrentPrincipal(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req createAdvertisementRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	ad, err := h.adUseCase.CreateAdvertisement(c.Request().Context(), principal, usecase.AdvertisementInput{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, ad)
}

func (h *AdvertisementHandler) ListMyAdvertisements(c echo.Context) error {
	principal, err := middleware.CurrentPrincipal(c)
	if err != nil {
		return response.Error(c, err)
	}

	ads, err := h.adUseCase.ListVendorAdvertisements(c.Request().Context(), principal)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, ads)
}

func (h *AdvertisementHandler) UpdateAdvertisement(c echo.Context) error {
	principal, err := middleware.CurrentPrincipal(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req updateAdvertisementRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	ad, err := h.adUseCase.UpdateAdvertisement(c.Request().Context(), principal, c.Param("id"), usecase.UpdateAdvertisementInput{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, ad)
}

func (h *AdvertisementHandler) DeleteAdvertisement(c echo.Context) error {
	principal, err := middleware.CurrentPrincipal(c)
	if err != nil {
		return response.Error(c, err)
	}

	deleted, err := h.adUseCase.DeleteAdvertisement(c.Request().Context(), principal, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]int64{"deletedCount": deleted})
}

func (h *AdvertisementHandler) ListAllAdvertisements(c echo.Context) error {
	ads, err := h.adUseCase.ListAllAdvertisements(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, ads)
}

func (h *AdvertisementHandler) UpdateStatus(c echo.Context) error {
	var req advertisementStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	ad, err := h.adUseCase.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, ad)
}

func (h *AdvertisementHandler) Highlights(c echo.Context) error {
	ads, err := h.adUseCase.Highlights(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, ads)
}
