package service

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

type ChatModelService interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

const chatSystemPrompt = "You are the Bazaar Track assistant. Help shoppers and vendors with " +
	"local market prices, product listings and orders. Keep answers short."

type OpenAIChatService struct {
	client *openai.Client
	model  string
}

func NewOpenAIChatService(apiKey, model string) *OpenAIChatService {
	return &OpenAIChatService{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (s *OpenAIChatService) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: chatSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty completion")
	}
	return resp.Choices[0].Message.Content, nil
}
