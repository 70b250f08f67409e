package ai

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"
)

// Groq совместим с OpenAI API, поэтому ходим через go-openai
const groqBaseURL = "https://api.groq.com/openai/v1"

const defaultModel = "llama3-8b-8192"

// Пауза перед единственным повтором при rate limit
const retryDelay = 2 * time.Second

const systemPrompt = "You are 'AI Ustoz', a helpful and professional programming mentor for the MAKON platform. " +
	"Your goal is to help students learn frontend (React, Tailwind, Next.js) and backend development. " +
	"Be encouraging, concise, and provide code examples where helpful. Always answer in Uzbek language."

// ErrRateLimited: сервис модели перегружен даже после повтора
var ErrRateLimited = errors.New("mentor: rate limited")

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type MentorClient struct {
	client *openai.Client
	model  string
}

func NewMentorClient(apiKey, model string) *MentorClient {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = groqBaseURL

	if model == "" {
		model = defaultModel
	}

	return &MentorClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Ask отправляет историю диалога модели и возвращает ответ ментора.
// Системная роль всегда подставляется первой.
func (c *MentorClient) Ask(ctx context.Context, messages []Message) (string, error) {
	msgs := make([]openai.ChatCompletionMessage, 0, len(messages)+1)
	msgs = append(msgs, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})

	for _, m := range messages {
		role := openai.ChatMessageRoleAssistant
		if m.Role == "user" {
			role = openai.ChatMessageRoleUser
		}
		msgs = append(msgs, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}

	req := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    msgs,
		Temperature: 0.7,
		MaxTokens:   1024,
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if isRateLimit(err) {
		// Один повтор после фиксированной паузы
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(retryDelay):
		}
		resp, err = c.client.CreateChatCompletion(ctx, req)
	}

	if isRateLimit(err) {
		return "", ErrRateLimited
	}
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("mentor: empty response")
	}

	return resp.Choices[0].Message.Content, nil
}

func isRateLimit(err error) bool {
	var apiErr *openai.APIError
	return errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests
}
