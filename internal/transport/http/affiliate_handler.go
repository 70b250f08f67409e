package handlers

import (
	"net/http"

	"makon/internal/application/usecase"

	"github.com/gin-gonic/gin"
)

type AffiliateHandler struct {
	affiliate   *usecase.AffiliateUseCase
	frontendURL string
}

func NewAffiliateHandler(affiliate *usecase.AffiliateUseCase, frontendURL string) *AffiliateHandler {
	return &AffiliateHandler{affiliate: affiliate, frontendURL: frontendURL}
}

// GET /api/v1/affiliate/link
func (h *AffiliateHandler) GetLink(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	link, err := h.affiliate.GetOrCreateLink(c, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get affiliate link"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"link": link,
		"url":  h.frontendURL + "/ref/" + link.RefCode,
	})
}

// GET /api/v1/affiliate/stats
func (h *AffiliateHandler) Stats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	stats, err := h.affiliate.Stats(c, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get affiliate stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GET /ref/:code (публичный переход по реферальной ссылке)
func (h *AffiliateHandler) Redirect(c *gin.Context) {
	code := c.Param("code")

	_, err := h.affiliate.TrackClick(c, code, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		// Неизвестный код: на главную
		c.Redirect(http.StatusFound, h.frontendURL+"/")
		return
	}

	c.Redirect(http.StatusFound, h.frontendURL+"/register?ref="+code)
}
