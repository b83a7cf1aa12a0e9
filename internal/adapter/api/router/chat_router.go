package router

import (
	"github.com/labstack/echo/v4"

	"bazaartrack/internal/adapter/api/handler"
)

func SetupChatRouter(e *echo.Echo, chatHandler *handler.ChatHandler, limit echo.MiddlewareFunc) {
	var m []echo.MiddlewareFunc
	if limit != nil {
		m = append(m, limit)
	}
	e.POST("/api/chat", chatHandler.Chat, m...)
}
