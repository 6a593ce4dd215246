// Package budget contains budget-related use cases and the spent-amount reconciler.
package budget

import (
	"time"

	"github.com/google/uuid"

	"github.com/pocketvision/ledger/internal/domain/entity"
)

// Bucket is the unit of aggregation: one (user, category, month) triple.
// Every expense mutation maps to at most two buckets (the pre- and
// post-mutation one) and every budget row belongs to exactly one.
type Bucket struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
	MonthYear  string
}

// BucketOf resolves the bucket an expense belongs to. It returns ok=false for
// uncategorized or undated expenses, which cannot affect any budget.
func BucketOf(userID uuid.UUID, categoryID *uuid.UUID, expenseDate time.Time) (Bucket, bool) {
	if categoryID == nil || expenseDate.IsZero() {
		return Bucket{}, false
	}
	return Bucket{
		UserID:     userID,
		CategoryID: *categoryID,
		MonthYear:  expenseDate.UTC().Format(entity.MonthYearLayout),
	}, true
}

// AffectedBuckets collects the distinct buckets touched by an expense
// mutation. Either side may be absent (creation has no before, deletion has
// no after, uncategorized expenses have neither).
func AffectedBuckets(before, after *Bucket) []Bucket {
	var buckets []Bucket
	if before != nil {
		buckets = append(buckets, *before)
	}
	if after != nil && (before == nil || *after != *before) {
		buckets = append(buckets, *after)
	}
	return buckets
}
