package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	unreadCountPrefix = "notification:unread:"
	unreadCountTTL    = 5 * time.Minute
)

// UnreadCountCache caches per-user unread notification counts in Redis. A
// cache miss falls through to the database; writes invalidate rather than
// update so the count can never drift.
type UnreadCountCache struct {
	client *redis.Client
}

func NewUnreadCountCache(client *redis.Client) *UnreadCountCache {
	return &UnreadCountCache{client: client}
}

// Get returns the cached count and whether the key was present.
func (c *UnreadCountCache) Get(ctx context.Context, userID uint) (int64, bool, error) {
	key := unreadCountKey(userID)

	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to get unread count: %w", err)
	}

	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("corrupt unread count value: %w", err)
	}

	return count, true, nil
}

func (c *UnreadCountCache) Set(ctx context.Context, userID uint, count int64) error {
	key := unreadCountKey(userID)

	if err := c.client.Set(ctx, key, count, unreadCountTTL).Err(); err != nil {
		return fmt.Errorf("failed to set unread count: %w", err)
	}

	return nil
}

// Invalidate drops the cached count for one user.
func (c *UnreadCountCache) Invalidate(ctx context.Context, userID uint) error {
	key := unreadCountKey(userID)

	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate unread count: %w", err)
	}

	return nil
}

// InvalidateMany drops cached counts for a fan-out batch of receivers.
func (c *UnreadCountCache) InvalidateMany(ctx context.Context, userIDs []uint) error {
	if len(userIDs) == 0 {
		return nil
	}

	keys := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		keys = append(keys, unreadCountKey(id))
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate unread counts: %w", err)
	}

	return nil
}

func unreadCountKey(userID uint) string {
	return unreadCountPrefix + strconv.FormatUint(uint64(userID), 10)
}
