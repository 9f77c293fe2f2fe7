package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ChallengeCache handles Redis state for the daily challenge: per-user
// attempt counters and the day's question set. Keys embed the UTC date so
// stale entries simply expire.
type ChallengeCache interface {
	IncrementAttempts(ctx context.Context, userID, day string) (int64, error)
	GetAttempts(ctx context.Context, userID, day string) (int, error)
	SetDailyQuestions(ctx context.Context, day string, questionIDs []string) error
	GetDailyQuestions(ctx context.Context, day string) ([]string, error)
}

type challengeCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewChallengeCache creates a new challenge cache
func NewChallengeCache(client *redis.Client) ChallengeCache {
	return &challengeCache{
		client: client,
		ttl:    48 * time.Hour,
	}
}

func (c *challengeCache) counterKey(userID, day string) string {
	return fmt.Sprintf("challenge:%s:count:%s", day, userID)
}

func (c *challengeCache) questionsKey(day string) string {
	return fmt.Sprintf("challenge:%s:questions", day)
}

func (c *challengeCache) IncrementAttempts(ctx context.Context, userID, day string) (int64, error) {
	key := c.counterKey(userID, day)
	count, err := c.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		c.client.Expire(ctx, key, c.ttl)
	}
	return count, nil
}

func (c *challengeCache) GetAttempts(ctx context.Context, userID, day string) (int, error) {
	count, err := c.client.Get(ctx, c.counterKey(userID, day)).Int()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (c *challengeCache) SetDailyQuestions(ctx context.Context, day string, questionIDs []string) error {
	data, err := json.Marshal(questionIDs)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.questionsKey(day), data, c.ttl).Err()
}

func (c *challengeCache) GetDailyQuestions(ctx context.Context, day string) ([]string, error) {
	data, err := c.client.Get(ctx, c.questionsKey(day)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var ids []string
	if err := json.Unmarshal([]byte(data), &ids); err != nil {
		return nil, err
	}
	return ids, nil
}
