package domain

import (
	"time"

	"github.com/google/uuid"
)

type AffiliateLink struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index" json:"user_id"`

	// Пустая строка = общая ссылка на платформу, иначе ссылка на конкретный курс
	CourseID string `json:"course_id"`

	RefCode string `gorm:"column:unique_ref_code;uniqueIndex" json:"unique_ref_code"`

	CreatedAt time.Time `json:"created_at"`
}

type AffiliateClick struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AffiliateID uuid.UUID `gorm:"type:uuid;index" json:"affiliate_id"`
	CourseID    string    `json:"course_id"`
	IPAddress   string    `json:"ip_address"`
	UserAgent   string    `json:"user_agent"`
	CreatedAt   time.Time `json:"created_at"`
}
