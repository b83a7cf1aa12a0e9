package handler

import (
	"time"

	"bazaartrack/internal/domain/service"
	ws "bazaartrack/internal/infrastructure/websocket"
	"bazaartrack/internal/usecase"
	"bazaartrack/pkg/errors"
)

const dateLayout = "2006-01-02"

// Handlers groups every route handler so the router can be built from one value.
type Handlers struct {
	Health        *HealthHandler
	User          *UserHandler
	Product       *ProductHandler
	Advertisement *AdvertisementHandler
	Payment       *PaymentHandler
	WatchList     *WatchListHandler
	Review        *ReviewHandler
	Chat          *ChatHandler
	File          *FileHandler
	Admin         *AdminHandler
	WebSocket     *WebSocketHandler
	DevToken      *DevTokenHandler
}

type Dependencies struct {
	AuthUseCase          *usecase.AuthUseCase
	UserUseCase          *usecase.UserUseCase
	ProductUseCase       *usecase.ProductUseCase
	AdvertisementUseCase *usecase.AdvertisementUseCase
	PaymentUseCase       *usecase.PaymentUseCase
	WatchListUseCase     *usecase.WatchListUseCase
	ReviewUseCase        *usecase.ReviewUseCase
	ChatUseCase          *usecase.ChatUseCase
	StatsUseCase         *usecase.StatsUseCase
	FileService          service.FileUploadService
	PriceHub             *ws.Manager
	AllowedOrigins       []string
}

func Setup(deps Dependencies) *Handlers {
	return &Handlers{
		Health:        NewHealthHandler(),
		User:          NewUserHandler(deps.UserUseCase, deps.AuthUseCase),
		Product:       NewProductHandler(deps.ProductUseCase),
		Advertisement: NewAdvertisementHandler(deps.AdvertisementUseCase),
		Payment:       NewPaymentHandler(deps.PaymentUseCase),
		WatchList:     NewWatchListHandler(deps.WatchListUseCase),
		Review:        NewReviewHandler(deps.ReviewUseCase),
		Chat:          NewChatHandler(deps.ChatUseCase),
		File:          NewFileHandler(deps.FileService),
		Admin:         NewAdminHandler(deps.StatsUseCase),
		WebSocket:     NewWebSocketHandler(deps.PriceHub, deps.AllowedOrigins),
		DevToken:      NewDevTokenHandler(deps.AuthUseCase),
	}
}

// parseDate accepts a calendar day or a full RFC 3339 timestamp.
func parseDate(field, value string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, errors.Validation(field + " must be a date (YYYY-MM-DD)")
	}
	return t, nil
}
