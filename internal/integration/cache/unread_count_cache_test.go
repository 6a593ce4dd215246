// Package cache implements Redis-backed caches for the application layer.
package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return server, client
}

func TestUnreadCountCache(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("miss before set, hit after", func(t *testing.T) {
		_, client := newTestCache(t)
		cache := NewUnreadCountCache(client)

		if _, hit, err := cache.Get(ctx, userID); err != nil || hit {
			t.Fatalf("expected clean miss, got hit=%v err=%v", hit, err)
		}

		if err := cache.Set(ctx, userID, 5); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		count, hit, err := cache.Get(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !hit || count != 5 {
			t.Errorf("expected hit with count 5, got hit=%v count=%d", hit, count)
		}
	})

	t.Run("invalidate drops the entry", func(t *testing.T) {
		_, client := newTestCache(t)
		cache := NewUnreadCountCache(client)

		_ = cache.Set(ctx, userID, 3)
		if err := cache.Invalidate(ctx, userID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, hit, _ := cache.Get(ctx, userID); hit {
			t.Error("expected miss after invalidation")
		}
	})

	t.Run("entry expires with its TTL", func(t *testing.T) {
		server, client := newTestCache(t)
		cache := NewUnreadCountCache(client)

		_ = cache.Set(ctx, userID, 2)
		server.FastForward(6 * time.Minute)

		if _, hit, _ := cache.Get(ctx, userID); hit {
			t.Error("expected entry expired after TTL")
		}
	})

	t.Run("users do not share entries", func(t *testing.T) {
		_, client := newTestCache(t)
		cache := NewUnreadCountCache(client)

		otherID := uuid.New()
		_ = cache.Set(ctx, userID, 1)
		_ = cache.Set(ctx, otherID, 9)
		_ = cache.Invalidate(ctx, userID)

		count, hit, _ := cache.Get(ctx, otherID)
		if !hit || count != 9 {
			t.Errorf("expected other user's entry intact, got hit=%v count=%d", hit, count)
		}
	})

	t.Run("closed connection surfaces an error", func(t *testing.T) {
		server, client := newTestCache(t)
		cache := NewUnreadCountCache(client)
		server.Close()

		if _, _, err := cache.Get(ctx, userID); err == nil {
			t.Error("expected error when Redis is unreachable")
		}
	})
}
