package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"makon/internal/infrastructure/ai"

	"github.com/gin-gonic/gin"
)

// Mentor отвечает на вопросы студентов
type Mentor interface {
	Ask(ctx context.Context, messages []ai.Message) (string, error)
}

type ChatHandler struct {
	mentor Mentor
}

func NewChatHandler(mentor Mentor) *ChatHandler {
	return &ChatHandler{mentor: mentor}
}

// POST /api/v1/chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req struct {
		Messages []ai.Message `json:"messages"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Messages) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "messages are required"})
		return
	}

	content, err := h.mentor.Ask(c, req.Messages)
	if err != nil {
		if errors.Is(err, ai.ErrRateLimited) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":   "Too Many Requests",
				"details": "AI serveri juda band (Rate Limit). Iltimos, bir ozdan so'ng urinib ko'ring.",
			})
			return
		}
		log.Printf("Mentor error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "AI service error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"content": content})
}
