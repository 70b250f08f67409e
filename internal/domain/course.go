package domain

import (
	"time"

	"github.com/google/uuid"
)

type Course struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CoverURL    string    `json:"cover_url"`
	Price       int       `gorm:"default:0" json:"price"`
	IsPublished bool      `gorm:"default:false" json:"is_published"`

	Lessons []Lesson `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE;" json:"lessons,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

type Lesson struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CourseID uuid.UUID `gorm:"type:uuid;index" json:"course_id"`
	Title    string    `json:"title"`
	VideoURL string    `json:"video_url"`

	// Длительность видео в секундах
	Duration int `gorm:"default:0" json:"duration"`
	Position int `gorm:"default:0" json:"position"`
}
