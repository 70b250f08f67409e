package repository

import (
	"context"
	"errors"

	"makon/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StreakRepository struct {
	db *gorm.DB
}

func NewStreakRepository(db *gorm.DB) *StreakRepository {
	return &StreakRepository{db: db}
}

// Get возвращает (nil, nil), если строки у пользователя ещё нет
func (r *StreakRepository) Get(ctx context.Context, userID uuid.UUID) (*domain.UserStreak, error) {
	var streak domain.UserStreak
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&streak).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &streak, nil
}

// Save создаёт строку стрика или перезаписывает существующую
func (r *StreakRepository) Save(ctx context.Context, streak *domain.UserStreak) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(streak).Error
}
