package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email    string    `gorm:"uniqueIndex" json:"email"`
	Username string    `json:"username"`
	Password string    `json:"-"`

	FullName  string `json:"full_name"`
	AvatarURL string `json:"avatar_url"`

	// Баланс в тийинах (UZS), только целые
	WalletBalance int `gorm:"default:0" json:"wallet_balance"`

	// Реферальный код, по которому пользователь пришёл (может быть пустым)
	ReferredBy string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}
