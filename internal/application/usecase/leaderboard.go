package usecase

import (
	"context"

	"makon/internal/domain"
	"makon/internal/infrastructure/cache"
)

type LeaderboardReader interface {
	Top(ctx context.Context, count int) ([]cache.LeaderboardEntry, error)
}

type GamificationReader interface {
	Top(ctx context.Context, limit int) ([]domain.GamificationProfile, error)
}

type LeaderboardUseCase struct {
	redis LeaderboardReader
	db    GamificationReader
}

func NewLeaderboardUseCase(redis LeaderboardReader, db GamificationReader) *LeaderboardUseCase {
	return &LeaderboardUseCase{redis: redis, db: db}
}

// Top читает рейтинг из Redis, при пустом или недоступном кеше идёт в Postgres
func (u *LeaderboardUseCase) Top(ctx context.Context, count int) ([]cache.LeaderboardEntry, error) {
	entries, err := u.redis.Top(ctx, count)
	if err == nil && len(entries) > 0 {
		return entries, nil
	}

	profiles, err := u.db.Top(ctx, count)
	if err != nil {
		return nil, err
	}

	entries = make([]cache.LeaderboardEntry, 0, len(profiles))
	for i, p := range profiles {
		entries = append(entries, cache.LeaderboardEntry{
			UserID: p.UserID.String(),
			XP:     p.TotalXP,
			Rank:   int64(i + 1),
		})
	}
	return entries, nil
}
