package domain

import (
	"time"

	"github.com/google/uuid"
)

type GamificationProfile struct {
	UserID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	TotalXP int       `gorm:"column:total_xp;default:0" json:"total_xp"`

	// Лига задаётся внешним процессом пересчёта, здесь только читаем
	League string `gorm:"default:'bronze'" json:"league"`

	UpdatedAt time.Time `json:"-"`
}
