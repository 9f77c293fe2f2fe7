package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/model"
)

// LeaderboardCache handles Redis ZSET operations for per-quiz-type
// leaderboards. Points accumulate across completed sessions.
type LeaderboardCache interface {
	AddPoints(ctx context.Context, quizType, userID string, points float64) error
	GetTop(ctx context.Context, quizType string, limit int) ([]model.LeaderboardEntry, error)
	GetRank(ctx context.Context, quizType, userID string) (int64, error)
}

type leaderboardCache struct {
	client *redis.Client
}

// NewLeaderboardCache creates a new leaderboard cache
func NewLeaderboardCache(client *redis.Client) LeaderboardCache {
	return &leaderboardCache{
		client: client,
	}
}

func (c *leaderboardCache) key(quizType string) string {
	return fmt.Sprintf("leaderboard:%s", quizType)
}

func (c *leaderboardCache) AddPoints(ctx context.Context, quizType, userID string, points float64) error {
	return c.client.ZIncrBy(ctx, c.key(quizType), points, userID).Err()
}

func (c *leaderboardCache) GetTop(ctx context.Context, quizType string, limit int) ([]model.LeaderboardEntry, error) {
	results, err := c.client.ZRevRangeWithScores(ctx, c.key(quizType), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]model.LeaderboardEntry, len(results))
	for i, z := range results {
		entries[i] = model.LeaderboardEntry{
			UserID: z.Member.(string),
			Points: z.Score,
			Rank:   i + 1,
		}
	}
	return entries, nil
}

// GetRank returns the 1-indexed rank, or -1 when the user has no points yet
func (c *leaderboardCache) GetRank(ctx context.Context, quizType, userID string) (int64, error) {
	rank, err := c.client.ZRevRank(ctx, c.key(quizType), userID).Result()
	if err == redis.Nil {
		return -1, nil
	}
	if err != nil {
		return 0, err
	}
	return rank + 1, nil
}
