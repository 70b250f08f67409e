package repository

import (
	"context"
	"errors"

	"makon/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProgressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// Upsert сохраняет запись прогресса по ключу (user_id, lesson_id).
// Возвращает, был ли урок уже завершён до этого вызова.
func (r *ProgressRepository) Upsert(ctx context.Context, p *domain.UserProgress) (bool, error) {
	var existing domain.UserProgress
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND lesson_id = ?", p.UserID, p.LessonID).
		First(&existing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		p.ID = uuid.New()
		return false, r.db.WithContext(ctx).Create(p).Error
	}
	if err != nil {
		return false, err
	}

	// ЗАЩИТА: завершённый урок не откатываем обратно частичным прогрессом
	p.ID = existing.ID
	p.Completed = p.Completed || existing.Completed

	return existing.Completed, r.db.WithContext(ctx).Save(p).Error
}

// List возвращает прогресс пользователя, опционально по одному курсу
func (r *ProgressRepository) List(ctx context.Context, userID uuid.UUID, courseID string) ([]domain.UserProgress, error) {
	q := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("last_accessed desc")

	if courseID != "" {
		q = q.Where("course_id = ?", courseID)
	}

	var records []domain.UserProgress
	err := q.Find(&records).Error
	return records, err
}
