package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrInsufficientFunds: на балансе не хватает средств для списания
var ErrInsufficientFunds = errors.New("insufficient funds")

type WalletTransaction struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index" json:"user_id"`

	// Отрицательная сумма = списание
	Amount  int    `json:"amount"`
	Kind    string `json:"kind"` // "purchase", "topup", "referral"
	Comment string `json:"comment"`

	CreatedAt time.Time `json:"created_at"`
}
