package handler

import (
	"github.com/labstack/echo/v4"

	"bazaartrack/internal/usecase"
	"bazaartrack/pkg/response"
)

type ChatHandler struct {
	chatUseCase *usecase.ChatUseCase
}

func NewChatHandler(chatUseCase *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
	}
}

type chatRequest struct {
	Message string `json:"message" validate:"required"`
}

func (h *ChatHandler) Chat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	reply, err := h.chatUseCase.Ask(c.Request().Context(), req.Message)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"reply": reply})
}
