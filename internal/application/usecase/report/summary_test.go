// Package report contains the spending report use case.
package report

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketvision/ledger/internal/domain/entity"
	domainerror "github.com/pocketvision/ledger/internal/domain/error"
)

// stubExpenseRepo serves a fixed expense list.
type stubExpenseRepo struct {
	expenses []*entity.Expense
}

func (r *stubExpenseRepo) Create(_ context.Context, _ *entity.Expense) error { return nil }

func (r *stubExpenseRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.Expense, error) {
	return nil, domainerror.ErrExpenseNotFound
}

func (r *stubExpenseRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Expense, error) {
	var result []*entity.Expense
	for _, expense := range r.expenses {
		if expense.UserID == userID {
			result = append(result, expense)
		}
	}
	return result, nil
}

func (r *stubExpenseRepo) FindByUserCategoryDateRange(_ context.Context, _, _ uuid.UUID, _, _ time.Time) ([]*entity.Expense, error) {
	return nil, nil
}

func (r *stubExpenseRepo) SearchByKeyword(_ context.Context, _ uuid.UUID, _ string) ([]*entity.Expense, error) {
	return nil, nil
}

func (r *stubExpenseRepo) Update(_ context.Context, _ *entity.Expense) error { return nil }

func (r *stubExpenseRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

// stubCategoryRepo serves a fixed category list.
type stubCategoryRepo struct {
	categories []*entity.Category
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	for _, category := range r.categories {
		if category.ID == id {
			return category, nil
		}
	}
	return nil, domainerror.ErrCategoryNotFound
}

func (r *stubCategoryRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	var result []*entity.Category
	for _, category := range r.categories {
		if category.UserID == userID {
			result = append(result, category)
		}
	}
	return result, nil
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestSummaryUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	food := entity.NewCategory(userID, "Ăn uống", "🍜")
	transport := entity.NewCategory(userID, "Di chuyển", "🚌")
	categoryRepo := &stubCategoryRepo{categories: []*entity.Category{food, transport}}

	newExpense := func(categoryID *uuid.UUID, amount int64, date time.Time) *entity.Expense {
		return entity.NewExpense(userID, categoryID, "store", decimal.NewFromInt(amount), entity.PaymentMethodCash, "", date)
	}

	t.Run("breakdown and statistics over an explicit period", func(t *testing.T) {
		expenseRepo := &stubExpenseRepo{expenses: []*entity.Expense{
			newExpense(&food.ID, 300, day(2025, 3, 5)),
			newExpense(&food.ID, 100, day(2025, 3, 20)),
			newExpense(&transport.ID, 80, day(2025, 3, 10)),
			newExpense(nil, 20, day(2025, 3, 12)),
			// Outside the period: counts toward all-time total only.
			newExpense(&food.ID, 999, day(2025, 1, 1)),
		}}
		useCase := NewSummaryUseCase(expenseRepo, categoryRepo)

		output, err := useCase.Execute(ctx, SummaryInput{
			UserID:    userID,
			StartDate: day(2025, 3, 1),
			EndDate:   day(2025, 3, 31),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.TotalExpenses.Equal(decimal.NewFromInt(1499)) {
			t.Errorf("expected all-time total 1499, got %s", output.TotalExpenses)
		}
		if !output.PeriodExpenses.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected period total 500, got %s", output.PeriodExpenses)
		}
		if output.ExpenseCount != 4 {
			t.Errorf("expected 4 period expenses, got %d", output.ExpenseCount)
		}
		if output.PeriodDays != 31 {
			t.Errorf("expected 31 period days, got %d", output.PeriodDays)
		}

		if len(output.CategoryBreakdown) != 3 {
			t.Fatalf("expected 3 breakdown entries, got %d", len(output.CategoryBreakdown))
		}
		top := output.CategoryBreakdown[0]
		if top.Name != "Ăn uống" {
			t.Errorf("expected largest slice first, got %q", top.Name)
		}
		if !top.Amount.Equal(decimal.NewFromInt(400)) {
			t.Errorf("expected food amount 400, got %s", top.Amount)
		}
		if !top.Percentage.Equal(decimal.NewFromInt(80)) {
			t.Errorf("expected food percentage 80, got %s", top.Percentage)
		}
		last := output.CategoryBreakdown[2]
		if last.Name != "Khác" || last.CategoryID != nil {
			t.Errorf("expected uncategorized slice last, got %+v", last)
		}
		if !last.Percentage.Equal(decimal.NewFromInt(4)) {
			t.Errorf("expected uncategorized percentage 4, got %s", last.Percentage)
		}

		stats := output.Statistics
		if !stats.AverageExpense.Equal(decimal.NewFromInt(125)) {
			t.Errorf("expected average 125, got %s", stats.AverageExpense)
		}
		if !stats.MaxExpense.Equal(decimal.NewFromInt(300)) {
			t.Errorf("expected max 300, got %s", stats.MaxExpense)
		}
		if !stats.MinExpense.Equal(decimal.NewFromInt(20)) {
			t.Errorf("expected min 20, got %s", stats.MinExpense)
		}
		if stats.ExpenseCount != 4 {
			t.Errorf("expected count 4, got %d", stats.ExpenseCount)
		}
	})

	t.Run("zero dates default to the current month", func(t *testing.T) {
		now := time.Now().UTC()
		expenseRepo := &stubExpenseRepo{expenses: []*entity.Expense{
			newExpense(&food.ID, 50, now),
		}}
		useCase := NewSummaryUseCase(expenseRepo, categoryRepo)

		output, err := useCase.Execute(ctx, SummaryInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.StartDate.Day() != 1 || output.StartDate.Month() != now.Month() {
			t.Errorf("expected period to start on the first of this month, got %s", output.StartDate)
		}
		if !output.PeriodExpenses.Equal(decimal.NewFromInt(50)) {
			t.Errorf("expected period total 50, got %s", output.PeriodExpenses)
		}
	})

	t.Run("empty period yields zero statistics", func(t *testing.T) {
		useCase := NewSummaryUseCase(&stubExpenseRepo{}, categoryRepo)

		output, err := useCase.Execute(ctx, SummaryInput{
			UserID:    userID,
			StartDate: day(2025, 3, 1),
			EndDate:   day(2025, 3, 31),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.CategoryBreakdown) != 0 {
			t.Errorf("expected empty breakdown, got %d entries", len(output.CategoryBreakdown))
		}
		if !output.Statistics.AverageExpense.IsZero() || output.Statistics.ExpenseCount != 0 {
			t.Errorf("expected zero statistics, got %+v", output.Statistics)
		}
	})

	t.Run("another user's category lands in the uncategorized slice", func(t *testing.T) {
		foreign := entity.NewCategory(uuid.New(), "Người khác", "👤")
		expenseRepo := &stubExpenseRepo{expenses: []*entity.Expense{
			newExpense(&foreign.ID, 100, day(2025, 3, 5)),
		}}
		useCase := NewSummaryUseCase(expenseRepo, categoryRepo)

		output, err := useCase.Execute(ctx, SummaryInput{
			UserID:    userID,
			StartDate: day(2025, 3, 1),
			EndDate:   day(2025, 3, 31),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.CategoryBreakdown) != 1 || output.CategoryBreakdown[0].Name != "Khác" {
			t.Errorf("expected single uncategorized entry, got %+v", output.CategoryBreakdown)
		}
	})
}
