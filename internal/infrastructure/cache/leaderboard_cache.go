package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const leaderboardKey = "leaderboard:xp"

// LeaderboardEntry описывает позицию в рейтинге по XP
type LeaderboardEntry struct {
	UserID string `json:"user_id"`
	XP     int    `json:"xp"`
	Rank   int64  `json:"rank"`
}

type LeaderboardCache struct {
	client *redis.Client
}

func NewLeaderboardCache(client *redis.Client) *LeaderboardCache {
	return &LeaderboardCache{client: client}
}

// SetScore выставляет актуальный XP пользователя в ZSET
func (c *LeaderboardCache) SetScore(ctx context.Context, userID string, totalXP int) error {
	return c.client.ZAdd(ctx, leaderboardKey, redis.Z{
		Score:  float64(totalXP),
		Member: userID,
	}).Err()
}

// Top возвращает первые count позиций (по убыванию XP)
func (c *LeaderboardCache) Top(ctx context.Context, count int) ([]LeaderboardEntry, error) {
	zs, err := c.client.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(count-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(zs))
	for i, z := range zs {
		member, _ := z.Member.(string)
		entries = append(entries, LeaderboardEntry{
			UserID: member,
			XP:     int(z.Score),
			Rank:   int64(i + 1),
		})
	}
	return entries, nil
}

// Rank возвращает позицию пользователя (1 = первое место)
func (c *LeaderboardCache) Rank(ctx context.Context, userID string) (int64, error) {
	// ZRevRank отдаёт 0-базный индекс
	rank, err := c.client.ZRevRank(ctx, leaderboardKey, userID).Result()
	if err != nil {
		return 0, err
	}
	return rank + 1, nil
}
