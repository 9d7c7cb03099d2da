package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ritmolab/ritmo-engine/internal/core/domain"
)

// SnapshotCache stores computed dashboards in Redis. Every failure is
// log-and-continue: the dashboard service just recomputes on a miss, so a
// broken cache degrades to extra work, never to an error for the caller.
type SnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSnapshotCache(client *redis.Client, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *SnapshotCache) key(userID string) string {
	return fmt.Sprintf("dashboard:%s", userID)
}

// Get returns the cached dashboard, or (nil, nil) on a miss.
func (c *SnapshotCache) Get(ctx context.Context, userID string) (*domain.Dashboard, error) {
	key := c.key(userID)

	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		log.Printf("[CACHE] Redis read error: %v", err)
		return nil, nil
	}

	var dashboard domain.Dashboard
	if err := json.Unmarshal([]byte(val), &dashboard); err != nil {
		log.Printf("[CACHE] Corrupted snapshot for user %s, cleaning up key", userID)
		c.client.Del(ctx, key)
		return nil, nil
	}

	return &dashboard, nil
}

func (c *SnapshotCache) Set(ctx context.Context, userID string, d *domain.Dashboard) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to marshal dashboard snapshot: %w", err)
	}

	if err := c.client.Set(ctx, c.key(userID), data, c.ttl).Err(); err != nil {
		log.Printf("[CACHE] Redis set error: %v", err)
	}
	return nil
}

func (c *SnapshotCache) Invalidate(ctx context.Context, userID string) error {
	if err := c.client.Del(ctx, c.key(userID)).Err(); err != nil {
		log.Printf("[CACHE] Failed to invalidate for user %s: %v", userID, err)
		return err
	}
	return nil
}
