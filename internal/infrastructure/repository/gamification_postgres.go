package repository

import (
	"context"
	"time"

	"makon/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GamificationRepository struct {
	db *gorm.DB
}

func NewGamificationRepository(db *gorm.DB) *GamificationRepository {
	return &GamificationRepository{db: db}
}

// AddXP атомарно начисляет XP и возвращает новый итог.
// Профиль создаётся лениво при первом начислении.
func (r *GamificationRepository) AddXP(ctx context.Context, userID uuid.UUID, amount int) (int, error) {
	res := r.db.WithContext(ctx).Model(&domain.GamificationProfile{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"total_xp":   gorm.Expr("total_xp + ?", amount),
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return 0, res.Error
	}

	if res.RowsAffected == 0 {
		profile := &domain.GamificationProfile{UserID: userID, TotalXP: amount}
		// Конкурирующий запрос мог успеть создать профиль раньше нас
		err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "user_id"}},
				DoUpdates: clause.Assignments(map[string]interface{}{
					"total_xp": gorm.Expr("gamification_profiles.total_xp + ?", amount),
				}),
			}).
			Create(profile).Error
		if err != nil {
			return 0, err
		}
	}

	var profile domain.GamificationProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return 0, err
	}
	return profile.TotalXP, nil
}

func (r *GamificationRepository) Get(ctx context.Context, userID uuid.UUID) (*domain.GamificationProfile, error) {
	var profile domain.GamificationProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	return &profile, err
}

// Top возвращает лучшие профили по XP (фолбэк, когда Redis пуст)
func (r *GamificationRepository) Top(ctx context.Context, limit int) ([]domain.GamificationProfile, error) {
	var profiles []domain.GamificationProfile
	err := r.db.WithContext(ctx).
		Order("total_xp desc").
		Limit(limit).
		Find(&profiles).Error
	return profiles, err
}
