// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthYearLayout is the Go time layout for a budget month ("yyyy-MM").
const MonthYearLayout = "2006-01"

// Budget represents a per-(user, category, month) spending ceiling.
// SpentAmount is derived state: it is recomputed from the expense log by the
// reconciler and is never user-settable.
type Budget struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CategoryID  uuid.UUID
	MonthYear   string // format: yyyy-MM
	LimitAmount decimal.Decimal
	SpentAmount decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewBudget creates a new Budget entity with zero spent amount.
func NewBudget(userID, categoryID uuid.UUID, monthYear string, limitAmount decimal.Decimal) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:          uuid.New(),
		UserID:      userID,
		CategoryID:  categoryID,
		MonthYear:   monthYear,
		LimitAmount: limitAmount,
		SpentAmount: decimal.Zero,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// MonthRange resolves a monthYear string to the inclusive [first day, last day]
// calendar range of that month, in UTC.
func MonthRange(monthYear string) (start, end time.Time, err error) {
	start, err = time.ParseInLocation(MonthYearLayout, monthYear, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end = start.AddDate(0, 1, -1)
	return start, end, nil
}
