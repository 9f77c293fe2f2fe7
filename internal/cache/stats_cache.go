package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/model"
)

// StatsCache holds precomputed question analytics with a short TTL so
// dashboards don't rescan the attempt history on every load
type StatsCache interface {
	GetQuestionAnalytics(ctx context.Context, questionID string) (*model.QuestionAnalytics, error)
	SetQuestionAnalytics(ctx context.Context, analytics *model.QuestionAnalytics) error
	Invalidate(ctx context.Context, questionID string) error
}

type statsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatsCache creates a new stats cache
func NewStatsCache(client *redis.Client) StatsCache {
	return &statsCache{
		client: client,
		ttl:    15 * time.Minute,
	}
}

func (c *statsCache) key(questionID string) string {
	return fmt.Sprintf("question:%s:stats", questionID)
}

func (c *statsCache) GetQuestionAnalytics(ctx context.Context, questionID string) (*model.QuestionAnalytics, error) {
	data, err := c.client.Get(ctx, c.key(questionID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var analytics model.QuestionAnalytics
	if err := json.Unmarshal([]byte(data), &analytics); err != nil {
		return nil, err
	}
	return &analytics, nil
}

func (c *statsCache) SetQuestionAnalytics(ctx context.Context, analytics *model.QuestionAnalytics) error {
	data, err := json.Marshal(analytics)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(analytics.QuestionID), data, c.ttl).Err()
}

func (c *statsCache) Invalidate(ctx context.Context, questionID string) error {
	return c.client.Del(ctx, c.key(questionID)).Err()
}
