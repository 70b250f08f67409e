package usecase

import (
	"context"
	"log"
	"strings"

	"makon/internal/domain"

	"github.com/google/uuid"
)

type AffiliateStore interface {
	Create(ctx context.Context, link *domain.AffiliateLink) error
	GetByUser(ctx context.Context, userID uuid.UUID) (*domain.AffiliateLink, error)
	GetByCode(ctx context.Context, code string) (*domain.AffiliateLink, error)
	RecordClick(ctx context.Context, click *domain.AffiliateClick) error
	CountClicks(ctx context.Context, affiliateID uuid.UUID) (int64, error)
}

type AffiliateUseCase struct {
	store AffiliateStore
}

func NewAffiliateUseCase(store AffiliateStore) *AffiliateUseCase {
	return &AffiliateUseCase{store: store}
}

// GetOrCreateLink возвращает реферальную ссылку пользователя,
// создавая её при первом обращении
func (u *AffiliateUseCase) GetOrCreateLink(ctx context.Context, userID uuid.UUID) (*domain.AffiliateLink, error) {
	link, err := u.store.GetByUser(ctx, userID)
	if err == nil {
		return link, nil
	}

	link = &domain.AffiliateLink{
		ID:      uuid.New(),
		UserID:  userID,
		RefCode: newRefCode(),
	}
	if err := u.store.Create(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

// TrackClick находит ссылку по коду и записывает переход.
// Сбой записи клика не мешает редиректу, просто логируем.
func (u *AffiliateUseCase) TrackClick(ctx context.Context, code, ip, userAgent string) (*domain.AffiliateLink, error) {
	link, err := u.store.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	click := &domain.AffiliateClick{
		ID:          uuid.New(),
		AffiliateID: link.UserID,
		CourseID:    link.CourseID,
		IPAddress:   ip,
		UserAgent:   userAgent,
	}
	if err := u.store.RecordClick(ctx, click); err != nil {
		log.Printf("Failed to record affiliate click for %s: %v", code, err)
	}

	return link, nil
}

type AffiliateStats struct {
	Link   *domain.AffiliateLink `json:"link"`
	Clicks int64                 `json:"clicks"`
}

func (u *AffiliateUseCase) Stats(ctx context.Context, userID uuid.UUID) (*AffiliateStats, error) {
	link, err := u.GetOrCreateLink(ctx, userID)
	if err != nil {
		return nil, err
	}

	clicks, err := u.store.CountClicks(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &AffiliateStats{Link: link, Clicks: clicks}, nil
}

func newRefCode() string {
	// Первого блока UUID достаточно для уникального короткого кода
	return strings.Split(uuid.NewString(), "-")[0]
}
