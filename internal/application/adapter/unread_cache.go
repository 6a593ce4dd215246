// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// UnreadCountCache caches the per-user unread notification count. The count is
// cheap to recompute, so the cache is best-effort: a miss or error falls back
// to the repository.
type UnreadCountCache interface {
	// Get returns the cached count and whether a cached value was present.
	Get(ctx context.Context, userID uuid.UUID) (int64, bool, error)

	// Set stores the count for a user.
	Set(ctx context.Context, userID uuid.UUID, count int64) error

	// Invalidate drops the cached count for a user.
	Invalidate(ctx context.Context, userID uuid.UUID) error
}
