package handlers

import (
	"net/http"
	"strconv"

	"makon/internal/application/usecase"

	"github.com/gin-gonic/gin"
)

type LeaderboardHandler struct {
	leaderboard *usecase.LeaderboardUseCase
}

func NewLeaderboardHandler(leaderboard *usecase.LeaderboardUseCase) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboard: leaderboard}
}

// GET /api/v1/leaderboard?limit=20
func (h *LeaderboardHandler) Top(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}

	entries, err := h.leaderboard.Top(c, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leaderboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}
