package repository

import (
	"context"

	"makon/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AffiliateRepository struct {
	db *gorm.DB
}

func NewAffiliateRepository(db *gorm.DB) *AffiliateRepository {
	return &AffiliateRepository{db: db}
}

func (r *AffiliateRepository) Create(ctx context.Context, link *domain.AffiliateLink) error {
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *AffiliateRepository) GetByUser(ctx context.Context, userID uuid.UUID) (*domain.AffiliateLink, error) {
	var link domain.AffiliateLink
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&link).Error
	return &link, err
}

func (r *AffiliateRepository) GetByCode(ctx context.Context, code string) (*domain.AffiliateLink, error) {
	var link domain.AffiliateLink
	err := r.db.WithContext(ctx).Where("unique_ref_code = ?", code).First(&link).Error
	return &link, err
}

func (r *AffiliateRepository) RecordClick(ctx context.Context, click *domain.AffiliateClick) error {
	return r.db.WithContext(ctx).Create(click).Error
}

func (r *AffiliateRepository) CountClicks(ctx context.Context, affiliateID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.AffiliateClick{}).
		Where("affiliate_id = ?", affiliateID).
		Count(&count).Error
	return count, err
}
