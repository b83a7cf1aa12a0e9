package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"bazaartrack/internal/domain/service"
	"bazaartrack/pkg/errors"
)

const maxChatMessageLength = 2000

type ChatUseCase struct {
	model service.ChatModelService
}

func NewChatUseCase(model service.ChatModelService) *ChatUseCase {
	return &ChatUseCase{
		model: model,
	}
}

func (uc *ChatUseCase) Ask(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", errors.Validation("message is required")
	}
	if utf8.RuneCountInString(message) > maxChatMessageLength {
		return "", errors.Validation("message must be at most 2000 characters")
	}
	if uc.model == nil {
		return "", errors.Upstream("Chat provider is not configured", nil)
	}

	reply, err := uc.model.Complete(ctx, message)
	if err != nil {
		return "", errors.Upstream("Failed to get a reply from the chat provider", err)
	}
	return reply, nil
}
