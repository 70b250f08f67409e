package handlers

import (
	"errors"
	"log"
	"net/http"

	"makon/internal/application/usecase"
	"makon/internal/domain"

	"github.com/gin-gonic/gin"
)

type ShopHandler struct {
	shop *usecase.ShopUseCase
}

func NewShopHandler(shop *usecase.ShopUseCase) *ShopHandler {
	return &ShopHandler{shop: shop}
}

// POST /api/v1/shop/buy
func (h *ShopHandler) Buy(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		ItemID string `json:"item_id"`
		Price  int    `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if req.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price"})
		return
	}

	newBalance, err := h.shop.Buy(c, userID, req.ItemID, req.Price)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUnknownItem):
			c.JSON(http.StatusBadRequest, gin.H{"error": "UnknownItem"})
		case errors.Is(err, domain.ErrInsufficientFunds):
			c.JSON(http.StatusBadRequest, gin.H{"error": "InsufficientFunds"})
		default:
			log.Printf("Shop error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "newBalance": newBalance})
}

// GET /api/v1/shop/items
func (h *ShopHandler) Items(c *gin.Context) {
	items := make([]domain.ShopItem, 0, len(domain.ShopCatalog))
	for _, item := range domain.ShopCatalog {
		items = append(items, item)
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
