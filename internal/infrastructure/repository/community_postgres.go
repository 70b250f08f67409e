package repository

import (
	"context"
	"errors"

	"makon/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommunityRepository struct {
	db *gorm.DB
}

func NewCommunityRepository(db *gorm.DB) *CommunityRepository {
	return &CommunityRepository{db: db}
}

func (r *CommunityRepository) CreatePost(ctx context.Context, post *domain.CommunityPost) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *CommunityRepository) ListPosts(ctx context.Context, limit int) ([]domain.CommunityPost, error) {
	var posts []domain.CommunityPost
	err := r.db.WithContext(ctx).
		Order("created_at desc").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

// LikedPostIDs возвращает ID постов из postIDs, которые пользователь уже лайкнул
func (r *CommunityRepository) LikedPostIDs(ctx context.Context, userID uuid.UUID, postIDs []uuid.UUID) ([]uuid.UUID, error) {
	var likes []domain.PostLike
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Find(&likes).Error
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(likes))
	for _, l := range likes {
		ids = append(ids, l.PostID)
	}
	return ids, nil
}

// ToggleLike ставит или снимает лайк, счётчик меняется в той же транзакции.
// Возвращает итоговое состояние (true = лайк стоит).
func (r *CommunityRepository) ToggleLike(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	var liked bool

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing domain.PostLike
		err := tx.Where("post_id = ? AND user_id = ?", postID, userID).First(&existing).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := tx.Create(&domain.PostLike{PostID: postID, UserID: userID}).Error; err != nil {
				return err
			}
			liked = true
			return tx.Model(&domain.CommunityPost{}).
				Where("id = ?", postID).
				Update("likes_count", gorm.Expr("likes_count + 1")).Error
		}
		if err != nil {
			return err
		}

		if err := tx.Delete(&existing).Error; err != nil {
			return err
		}
		liked = false
		return tx.Model(&domain.CommunityPost{}).
			Where("id = ? AND likes_count > 0", postID).
			Update("likes_count", gorm.Expr("likes_count - 1")).Error
	})

	return liked, err
}
