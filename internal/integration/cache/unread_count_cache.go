// Package cache implements Redis-backed caches for the application layer.
package cache

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/pocketvision/ledger/internal/application/adapter"
)

// unreadCountTTL bounds staleness if an invalidation is ever missed.
const unreadCountTTL = 5 * time.Minute

// unreadCountCache implements adapter.UnreadCountCache on Redis.
type unreadCountCache struct {
	client *redis.Client
}

// NewUnreadCountCache creates a new unread count cache instance.
func NewUnreadCountCache(client *redis.Client) adapter.UnreadCountCache {
	return &unreadCountCache{
		client: client,
	}
}

func unreadCountKey(userID uuid.UUID) string {
	return "notifications:unread:" + userID.String()
}

// Get returns the cached count and whether a cached value was present.
func (c *unreadCountCache) Get(ctx context.Context, userID uuid.UUID) (int64, bool, error) {
	value, err := c.client.Get(ctx, unreadCountKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, err
	}

	count, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, false, err
	}
	return count, true, nil
}

// Set stores the count for a user.
func (c *unreadCountCache) Set(ctx context.Context, userID uuid.UUID, count int64) error {
	return c.client.Set(ctx, unreadCountKey(userID), count, unreadCountTTL).Err()
}

// Invalidate drops the cached count for a user.
func (c *unreadCountCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	return c.client.Del(ctx, unreadCountKey(userID)).Err()
}
