package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"bazaartrack/internal/adapter/api/middleware"
	"bazaartrack/internal/domain/entity"
	"bazaartrack/internal/usecase"
	"bazaartrack/pkg/response"
	"bazaartrack/pkg/utils"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

type pricePointRequest struct {
	Date  string  `json:"date" validate:"required"`
	Price float64 `json:"price" validate:"gt=0"`
}

type createProductRequest struct {
	MarketName        string              `json:"marketName" validate:"required"`
	MarketDescription string              `json:"marketDescription"`
	Date              string              `json:"date" validate:"required"`
	ItemName          string              `json:"itemName" validate:"required"`
	ItemDescription   string              `json:"itemDescription"`
	Image             string              `json:"image" validate:"omitempty,url"`
	PricePerUnit      float64             `json:"pricePerUnit" validate:"required,gt=0"`
	Prices            []pricePointRequest `json:"prices" validate:"omitempty,dive"`
}

type updateProductRequest struct {
	MarketName        *string  `json:"marketName"`
	MarketDescription *string  `json:"marketDescription"`
	Date              *string  `json:"date"`
	ItemName          *string  `json:"itemName"`
	ItemDescription   *string  `json:"itemDescription"`
	Image             *string  `json:"image" validate:"omitempty,url"`
	PricePerUnit      *float64 `json:"pricePerUnit" validate:"omitempty,gt=0"`
}

type rejectProductRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	principal, err := middleware.CurrentPrincipal(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	date, err := parseDate("date", req.Date)
	if err != nil {
		return response.Error(c, err)
	}

	prices := make([]entity.PricePoint, 0, len(req.Prices))
	for _, p := range req.Prices {
		d, err := parseDate("prices.date", p.Date)
		if err != nil {
			return response.Error(c, err)
		}
		prices = append(prices, entity.PricePoint{Date: d, Price: p.Price})
	}

	product, err := h.productUseCase.CreateProduct(c.Request().Context(), principal, usecase.CreateProductInput{
		MarketName:        req.MarketName,
		MarketDescription: req.MarketDescription,
		Date:              date,
		ItemName:          req.ItemName,
		ItemDescription:   req.ItemDescription,
		Image:             req.Image,
		PricePerUnit:      req.PricePerUnit,
		Prices:            prices,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	principal, err := middleware.CurrentPrincipal(c)
	if err != nil {
		return response.Error(c, err)
	}

	products, err := h.productUseCase.ListProducts(
		c.Request().Context(),
		principal,
		c.QueryParam("status"),
		c.QueryParam("vendorEmail"),
	)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, products)
}

func (h *ProductHandler) ListApproved(c echo.Context) error {
	var from, to *time.Time
	if v := c.QueryParam("from"); v != "" {
		t, err := parseDate("from", v)
		if err != nil {
			return response.Error(c, err)
		}
		from = &t
	}
	if v := c.QueryParam("to"); v != "" {
		t, err := parseDate("to", v)
		if err != nil {
			return response.Error(c, err)
		}
		// A bare day includes everything up to its end.
		if len(v) == len(dateLayout) {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		to = &t
	}

	products, err := h.productUseCase.ListApproved(c.Request().Context(), c.QueryParam("sort"), from, to)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, products)
}

func (h *ProductHandler) HomeProducts(c echo.Context) error {
	products, err := h.productUseCase.HomeProducts(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, products)
}

func (h *ProductHandler) PaginatedProducts(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	products, total, err := h.productUseCase.PaginatedApproved(c.Request().Context(), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, products, total, params.Page, params.PageSize)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.productUseCase.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, product)
}

func (h *ProductHandler) PriceTrend(c echo.Context) error {
	id := c.Param("id")

	points, err := h.productUseCase.PriceTrend(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]interface{}{
		"productId": id,
		"prices":    points,
	})
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	principal, err := middleware.CurrentPrincipal(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	input := usecase.UpdateProductInput{
		MarketName:        req.MarketName,
		MarketDescription: req.MarketDescription,
		ItemName:          req.ItemName,
		ItemDescription:   req.ItemDescription,
		Image:             req.Image,
		PricePerUnit:      req.PricePerUnit,
	}
	if req.Date != nil {
		date, err := parseDate("date", *req.Date)
		if err != nil {
			return response.Error(c, err)
		}
		input.Date = &date
	}

	product, err := h.productUseCase.UpdateProduct(c.Request().Context(), principal, c.Param("id"), input)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	principal, err := middleware.CurrentPrincipal(c)
	if err != nil {
		return response.Error(c, err)
	}

	deleted, err := h.productUseCase.DeleteProduct(c.Request().Context(), principal, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]int64{"deletedCount": deleted})
}

func (h *ProductHandler) ApproveProduct(c echo.Context) error {
	product, err := h.productUseCase.ApproveProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, product)
}

func (h *ProductHandler) RejectProduct(c echo.Context) error {
	var req rejectProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.RejectProduct(c.Request().Context(), c.Param("id"), req.Reason)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, product)
}
