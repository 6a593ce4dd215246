// Package report contains the spending report use case: period totals,
// a per-category breakdown, and basic statistics over a date range.
package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketvision/ledger/internal/application/adapter"
	"github.com/pocketvision/ledger/internal/domain/entity"
)

// uncategorizedName labels expenses without a resolvable category.
const uncategorizedName = "Khác"

// SummaryInput represents the input for the report summary. Zero dates fall
// back to the current month: first day through today.
type SummaryInput struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// CategoryBreakdownEntry is one category slice of the period total.
type CategoryBreakdownEntry struct {
	CategoryID *uuid.UUID
	Name       string
	Icon       string
	Amount     decimal.Decimal
	Percentage decimal.Decimal
}

// Statistics summarizes the expenses inside the period.
type Statistics struct {
	AverageExpense decimal.Decimal
	MaxExpense     decimal.Decimal
	MinExpense     decimal.Decimal
	ExpenseCount   int
	TotalAmount    decimal.Decimal
}

// SummaryOutput represents the output of the report summary.
type SummaryOutput struct {
	TotalExpenses     decimal.Decimal
	PeriodExpenses    decimal.Decimal
	CategoryBreakdown []CategoryBreakdownEntry
	Statistics        Statistics
	StartDate         time.Time
	EndDate           time.Time
	PeriodDays        int
	ExpenseCount      int
}

// SummaryUseCase builds the spending summary report.
type SummaryUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	categoryRepo adapter.CategoryRepository
}

// NewSummaryUseCase creates a new SummaryUseCase instance.
func NewSummaryUseCase(expenseRepo adapter.ExpenseRepository, categoryRepo adapter.CategoryRepository) *SummaryUseCase {
	return &SummaryUseCase{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute builds the report. TotalExpenses covers the user's entire history;
// everything else is restricted to the requested period.
func (uc *SummaryUseCase) Execute(ctx context.Context, input SummaryInput) (*SummaryOutput, error) {
	startDate, endDate := resolvePeriod(input.StartDate, input.EndDate)

	expenses, err := uc.expenseRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	categories, err := uc.categoryRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	totalExpenses := decimal.Zero
	periodTotal := decimal.Zero
	var periodExpenses []*entity.Expense
	for _, expense := range expenses {
		totalExpenses = totalExpenses.Add(expense.TotalAmount)
		if inPeriod(expense.ExpenseDate, startDate, endDate) {
			periodTotal = periodTotal.Add(expense.TotalAmount)
			periodExpenses = append(periodExpenses, expense)
		}
	}

	return &SummaryOutput{
		TotalExpenses:     totalExpenses,
		PeriodExpenses:    periodTotal,
		CategoryBreakdown: buildCategoryBreakdown(periodExpenses, categories, periodTotal),
		Statistics:        buildStatistics(periodExpenses),
		StartDate:         startDate,
		EndDate:           endDate,
		PeriodDays:        int(endDate.Sub(startDate).Hours()/24) + 1,
		ExpenseCount:      len(periodExpenses),
	}, nil
}

// resolvePeriod applies the month-to-date default and normalizes to date
// precision.
func resolvePeriod(startDate, endDate time.Time) (time.Time, time.Time) {
	now := time.Now().UTC()
	if startDate.IsZero() {
		startDate = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
	if endDate.IsZero() {
		endDate = now
	}
	startDate = time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, time.UTC)
	endDate = time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 0, 0, 0, 0, time.UTC)
	return startDate, endDate
}

func inPeriod(date, startDate, endDate time.Time) bool {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(startDate) && !day.After(endDate)
}

// buildCategoryBreakdown groups period expenses by category, largest first.
// Expenses with no category, or one belonging to another user, land in a
// single "Khác" entry. Percentages are of the period total, rounded to two
// decimals.
func buildCategoryBreakdown(
	expenses []*entity.Expense,
	categories []*entity.Category,
	periodTotal decimal.Decimal,
) []CategoryBreakdownEntry {
	categoryByID := make(map[uuid.UUID]*entity.Category, len(categories))
	for _, category := range categories {
		categoryByID[category.ID] = category
	}

	amounts := make(map[uuid.UUID]decimal.Decimal)
	otherAmount := decimal.Zero
	for _, expense := range expenses {
		if expense.CategoryID != nil {
			if _, known := categoryByID[*expense.CategoryID]; known {
				amounts[*expense.CategoryID] = amounts[*expense.CategoryID].Add(expense.TotalAmount)
				continue
			}
		}
		otherAmount = otherAmount.Add(expense.TotalAmount)
	}

	percentageOf := func(amount decimal.Decimal) decimal.Decimal {
		if !periodTotal.IsPositive() {
			return decimal.Zero
		}
		return amount.Div(periodTotal).Mul(decimal.NewFromInt(100)).Round(2)
	}

	breakdown := make([]CategoryBreakdownEntry, 0, len(amounts)+1)
	for categoryID, amount := range amounts {
		category := categoryByID[categoryID]
		id := categoryID
		breakdown = append(breakdown, CategoryBreakdownEntry{
			CategoryID: &id,
			Name:       category.Name,
			Icon:       category.Icon,
			Amount:     amount,
			Percentage: percentageOf(amount),
		})
	}
	if otherAmount.IsPositive() {
		breakdown = append(breakdown, CategoryBreakdownEntry{
			Name:       uncategorizedName,
			Icon:       "❓",
			Amount:     otherAmount,
			Percentage: percentageOf(otherAmount),
		})
	}

	sort.Slice(breakdown, func(i, j int) bool {
		return breakdown[i].Amount.GreaterThan(breakdown[j].Amount)
	})

	return breakdown
}

func buildStatistics(expenses []*entity.Expense) Statistics {
	if len(expenses) == 0 {
		return Statistics{
			AverageExpense: decimal.Zero,
			MaxExpense:     decimal.Zero,
			MinExpense:     decimal.Zero,
			TotalAmount:    decimal.Zero,
		}
	}

	total := decimal.Zero
	maxExpense := expenses[0].TotalAmount
	minExpense := expenses[0].TotalAmount
	for _, expense := range expenses {
		total = total.Add(expense.TotalAmount)
		if expense.TotalAmount.GreaterThan(maxExpense) {
			maxExpense = expense.TotalAmount
		}
		if expense.TotalAmount.LessThan(minExpense) {
			minExpense = expense.TotalAmount
		}
	}

	return Statistics{
		AverageExpense: total.Div(decimal.NewFromInt(int64(len(expenses)))).Round(2),
		MaxExpense:     maxExpense,
		MinExpense:     minExpense,
		ExpenseCount:   len(expenses),
		TotalAmount:    total,
	}
}
