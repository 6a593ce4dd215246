// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pocketvision/ledger/internal/application/usecase/budget"
	"github.com/pocketvision/ledger/internal/domain/entity"
	domainerror "github.com/pocketvision/ledger/internal/domain/error"
)

// memExpenseRepo is an in-memory ExpenseRepository.
type memExpenseRepo struct {
	mu       sync.Mutex
	expenses map[uuid.UUID]*entity.Expense
}

func newMemExpenseRepo() *memExpenseRepo {
	return &memExpenseRepo{expenses: make(map[uuid.UUID]*entity.Expense)}
}

func (r *memExpenseRepo) Create(_ context.Context, expense *entity.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *expense
	r.expenses[expense.ID] = &copied
	return nil
}

func (r *memExpenseRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	expense, ok := r.expenses[id]
	if !ok {
		return nil, domainerror.ErrExpenseNotFound
	}
	copied := *expense
	return &copied, nil
}

func (r *memExpenseRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entity.Expense
	for _, expense := range r.expenses {
		if expense.UserID == userID {
			copied := *expense
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *memExpenseRepo) FindByUserCategoryDateRange(_ context.Context, userID, categoryID uuid.UUID, start, end time.Time) ([]*entity.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entity.Expense
	for _, expense := range r.expenses {
		if expense.UserID != userID || expense.CategoryID == nil || *expense.CategoryID != categoryID {
			continue
		}
		if expense.ExpenseDate.Before(start) || expense.ExpenseDate.After(end) {
			continue
		}
		copied := *expense
		result = append(result, &copied)
	}
	return result, nil
}

func (r *memExpenseRepo) SearchByKeyword(_ context.Context, userID uuid.UUID, keyword string) ([]*entity.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	lowered := strings.ToLower(keyword)
	var result []*entity.Expense
	for _, expense := range r.expenses {
		if expense.UserID != userID {
			continue
		}
		if strings.Contains(strings.ToLower(expense.StoreName), lowered) ||
			strings.Contains(strings.ToLower(expense.Note), lowered) {
			copied := *expense
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *memExpenseRepo) Update(_ context.Context, expense *entity.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *expense
	r.expenses[expense.ID] = &copied
	return nil
}

func (r *memExpenseRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.expenses, id)
	return nil
}

// memBudgetRepo is an in-memory BudgetRepository, just enough for the
// reconciler path exercised by expense mutations.
type memBudgetRepo struct {
	mu      sync.Mutex
	budgets map[uuid.UUID]*entity.Budget
}

func newMemBudgetRepo() *memBudgetRepo {
	return &memBudgetRepo{budgets: make(map[uuid.UUID]*entity.Budget)}
}

func (r *memBudgetRepo) Create(_ context.Context, budget *entity.Budget) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *budget
	r.budgets[budget.ID] = &copied
	return nil
}

func (r *memBudgetRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Budget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	budget, ok := r.budgets[id]
	if !ok {
		return nil, domainerror.ErrBudgetNotFound
	}
	copied := *budget
	return &copied, nil
}

func (r *memBudgetRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Budget, error) {
	return nil, nil
}

func (r *memBudgetRepo) FindByUserAndMonth(_ context.Context, userID uuid.UUID, monthYear string) ([]*entity.Budget, error) {
	return nil, nil
}

func (r *memBudgetRepo) FindByUserCategoryMonth(_ context.Context, userID, categoryID uuid.UUID, monthYear string) (*entity.Budget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, budget := range r.budgets {
		if budget.UserID == userID && budget.CategoryID == categoryID && budget.MonthYear == monthYear {
			copied := *budget
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memBudgetRepo) Update(_ context.Context, budget *entity.Budget) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *budget
	r.budgets[budget.ID] = &copied
	return nil
}

func (r *memBudgetRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.budgets[id]
	return ok, nil
}

func (r *memBudgetRepo) DeleteByID(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.budgets, id)
	return nil
}

// memNotificationRepo records created notifications.
type memNotificationRepo struct {
	mu            sync.Mutex
	notifications []*entity.Notification
}

func (r *memNotificationRepo) Create(_ context.Context, notification *entity.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *notification
	r.notifications = append(r.notifications, &copied)
	return nil
}

func (r *memNotificationRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Notification, error) {
	return nil, domainerror.ErrNotificationNotFound
}

func (r *memNotificationRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Notification, error) {
	return nil, nil
}

func (r *memNotificationRepo) CountUnreadByUser(_ context.Context, userID uuid.UUID) (int64, error) {
	return 0, nil
}

func (r *memNotificationRepo) MarkRead(_ context.Context, id uuid.UUID) error { return nil }

func (r *memNotificationRepo) MarkAllRead(_ context.Context, userID uuid.UUID) (int64, error) {
	return 0, nil
}

func (r *memNotificationRepo) Delete(_ context.Context, id uuid.UUID) error { return nil }

func (r *memNotificationRepo) all() []*entity.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*entity.Notification(nil), r.notifications...)
}

// testFixture wires the expense use cases against in-memory stores with a
// live reconciler, so tests can observe budget side effects of expense writes.
type testFixture struct {
	expenseRepo      *memExpenseRepo
	budgetRepo       *memBudgetRepo
	notificationRepo *memNotificationRepo
	reconciler       *budget.Reconciler
}

func newTestFixture() *testFixture {
	expenseRepo := newMemExpenseRepo()
	budgetRepo := newMemBudgetRepo()
	notificationRepo := &memNotificationRepo{}
	return &testFixture{
		expenseRepo:      expenseRepo,
		budgetRepo:       budgetRepo,
		notificationRepo: notificationRepo,
		reconciler:       budget.NewReconciler(budgetRepo, expenseRepo, notificationRepo, nil, nil),
	}
}

func monthDay(monthYear string, day int) time.Time {
	start, _, err := entity.MonthRange(monthYear)
	if err != nil {
		panic(err)
	}
	return start.AddDate(0, 0, day-1)
}
