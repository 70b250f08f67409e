package domain

import (
	"time"

	"github.com/google/uuid"
)

type UserProgress struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_user_lesson;index" json:"user_id"`
	CourseID string    `gorm:"index" json:"course_id"`
	LessonID string    `gorm:"uniqueIndex:idx_user_lesson" json:"lesson_id"`

	ProgressSeconds int  `gorm:"default:0" json:"progress_seconds"`
	Completed       bool `gorm:"default:false" json:"completed"`

	LastAccessed time.Time `json:"last_accessed"`
}
