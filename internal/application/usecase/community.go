package usecase

import (
	"context"
	"errors"
	"strings"

	"makon/internal/domain"

	"github.com/google/uuid"
)

var ErrEmptyPost = errors.New("post content is empty")

type CommunityStore interface {
	CreatePost(ctx context.Context, post *domain.CommunityPost) error
	ListPosts(ctx context.Context, limit int) ([]domain.CommunityPost, error)
	LikedPostIDs(ctx context.Context, userID uuid.UUID, postIDs []uuid.UUID) ([]uuid.UUID, error)
	ToggleLike(ctx context.Context, postID, userID uuid.UUID) (bool, error)
}

// PostView: пост с пометкой, лайкнул ли его текущий пользователь
type PostView struct {
	domain.CommunityPost
	Liked bool `json:"liked"`
}

type CommunityUseCase struct {
	store CommunityStore
}

func NewCommunityUseCase(store CommunityStore) *CommunityUseCase {
	return &CommunityUseCase{store: store}
}

func (u *CommunityUseCase) Feed(ctx context.Context, userID uuid.UUID) ([]PostView, error) {
	posts, err := u.store.ListPosts(ctx, 100)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}

	likedSet := map[uuid.UUID]bool{}
	if len(ids) > 0 {
		liked, err := u.store.LikedPostIDs(ctx, userID, ids)
		if err != nil {
			return nil, err
		}
		for _, id := range liked {
			likedSet[id] = true
		}
	}

	views := make([]PostView, 0, len(posts))
	for _, p := range posts {
		views = append(views, PostView{CommunityPost: p, Liked: likedSet[p.ID]})
	}
	return views, nil
}

func (u *CommunityUseCase) CreatePost(ctx context.Context, userID uuid.UUID, title, content string) (*domain.CommunityPost, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyPost
	}

	post := &domain.CommunityPost{
		ID:       uuid.New(),
		AuthorID: userID,
		Title:    title,
		Content:  content,
	}

	if err := u.store.CreatePost(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (u *CommunityUseCase) ToggleLike(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	return u.store.ToggleLike(ctx, postID, userID)
}
