package handlers

import (
	"log"
	"net/http"

	"makon/internal/application/usecase"

	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	shop *usecase.ShopUseCase
}

func NewWalletHandler(shop *usecase.ShopUseCase) *WalletHandler {
	return &WalletHandler{shop: shop}
}

// GET /api/v1/wallet
func (h *WalletHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	view, err := h.shop.Wallet(c, userID)
	if err != nil {
		log.Printf("Wallet error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, view)
}
