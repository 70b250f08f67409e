package handlers

import (
	"errors"
	"net/http"

	"makon/internal/application/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CommunityHandler struct {
	community *usecase.CommunityUseCase
}

func NewCommunityHandler(community *usecase.CommunityUseCase) *CommunityHandler {
	return &CommunityHandler{community: community}
}

// GET /api/v1/community/posts
func (h *CommunityHandler) Feed(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	posts, err := h.community.Feed(c, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// POST /api/v1/community/posts
func (h *CommunityHandler) CreatePost(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	post, err := h.community.CreatePost(c, userID, req.Title, req.Content)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyPost) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Post content is empty"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, post)
}

// POST /api/v1/community/posts/:id/like
func (h *CommunityHandler) ToggleLike(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	liked, err := h.community.ToggleLike(c, postID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle like"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "liked": liked})
}
