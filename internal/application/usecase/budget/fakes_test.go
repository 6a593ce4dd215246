// Package budget contains budget-related use cases and the spent-amount reconciler.
package budget

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pocketvision/ledger/internal/domain/entity"
	domainerror "github.com/pocketvision/ledger/internal/domain/error"
)

// fakeBudgetRepo is an in-memory BudgetRepository with error injection.
type fakeBudgetRepo struct {
	mu          sync.Mutex
	budgets     map[uuid.UUID]*entity.Budget
	updateCalls int
	failUpdate  bool
	failFind    bool
}

func newFakeBudgetRepo() *fakeBudgetRepo {
	return &fakeBudgetRepo{budgets: make(map[uuid.UUID]*entity.Budget)}
}

func (r *fakeBudgetRepo) Create(_ context.Context, budget *entity.Budget) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *budget
	r.budgets[budget.ID] = &copied
	return nil
}

func (r *fakeBudgetRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Budget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	budget, ok := r.budgets[id]
	if !ok {
		return nil, domainerror.ErrBudgetNotFound
	}
	copied := *budget
	return &copied, nil
}

func (r *fakeBudgetRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Budget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entity.Budget
	for _, budget := range r.budgets {
		if budget.UserID == userID {
			copied := *budget
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].MonthYear > result[j].MonthYear })
	return result, nil
}

func (r *fakeBudgetRepo) FindByUserAndMonth(_ context.Context, userID uuid.UUID, monthYear string) ([]*entity.Budget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entity.Budget
	for _, budget := range r.budgets {
		if budget.UserID == userID && budget.MonthYear == monthYear {
			copied := *budget
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeBudgetRepo) FindByUserCategoryMonth(_ context.Context, userID, categoryID uuid.UUID, monthYear string) (*entity.Budget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failFind {
		return nil, errors.New("budget lookup failed")
	}
	for _, budget := range r.budgets {
		if budget.UserID == userID && budget.CategoryID == categoryID && budget.MonthYear == monthYear {
			copied := *budget
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeBudgetRepo) Update(_ context.Context, budget *entity.Budget) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failUpdate {
		return errors.New("budget update failed")
	}
	r.updateCalls++
	copied := *budget
	r.budgets[budget.ID] = &copied
	return nil
}

func (r *fakeBudgetRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.budgets[id]
	return ok, nil
}

func (r *fakeBudgetRepo) DeleteByID(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.budgets, id)
	return nil
}

// fakeExpenseRepo is an in-memory ExpenseRepository with error injection.
type fakeExpenseRepo struct {
	mu        sync.Mutex
	expenses  map[uuid.UUID]*entity.Expense
	failRange bool
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{expenses: make(map[uuid.UUID]*entity.Expense)}
}

func (r *fakeExpenseRepo) Create(_ context.Context, expense *entity.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *expense
	r.expenses[expense.ID] = &copied
	return nil
}

func (r *fakeExpenseRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	expense, ok := r.expenses[id]
	if !ok {
		return nil, domainerror.ErrExpenseNotFound
	}
	copied := *expense
	return &copied, nil
}

func (r *fakeExpenseRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entity.Expense
	for _, expense := range r.expenses {
		if expense.UserID == userID {
			copied := *expense
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ExpenseDate.After(result[j].ExpenseDate) })
	return result, nil
}

func (r *fakeExpenseRepo) FindByUserCategoryDateRange(_ context.Context, userID, categoryID uuid.UUID, start, end time.Time) ([]*entity.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failRange {
		return nil, errors.New("expense query failed")
	}
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

func (r *fakeExpenseRepo) SearchByKeyword(_ context.Context, userID uuid.UUID, keyword string) ([]*entity.Expense, error) {
	return nil, nil
}

func (r *fakeExpenseRepo) Update(_ context.Context, expense *entity.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *expense
	r.expenses[expense.ID] = &copied
	return nil
}

func (r *fakeExpenseRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.expenses, id)
	return nil
}

// fakeNotificationRepo records created notifications.
type fakeNotificationRepo struct {
	mu            sync.Mutex
	notifications []*entity.Notification
	failCreate    bool
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{}
}

func (r *fakeNotificationRepo) Create(_ context.Context, notification *entity.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failCreate {
		return errors.New("notification create failed")
	}
	copied := *notification
	r.notifications = append(r.notifications, &copied)
	return nil
}

func (r *fakeNotificationRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Notification, error) {
	return nil, domainerror.ErrNotificationNotFound
}

func (r *fakeNotificationRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entity.Notification
	for _, notification := range r.notifications {
		if notification.UserID == userID {
			copied := *notification
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeNotificationRepo) CountUnreadByUser(_ context.Context, userID uuid.UUID) (int64, error) {
	return 0, nil
}

func (r *fakeNotificationRepo) MarkRead(_ context.Context, id uuid.UUID) error { return nil }

func (r *fakeNotificationRepo) MarkAllRead(_ context.Context, userID uuid.UUID) (int64, error) {
	return 0, nil
}

func (r *fakeNotificationRepo) Delete(_ context.Context, id uuid.UUID) error { return nil }

func (r *fakeNotificationRepo) all() []*entity.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*entity.Notification(nil), r.notifications...)
}

// fakeUserRepo serves a single user.
type fakeUserRepo struct {
	user *entity.User
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error { return nil }

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if r.user == nil || r.user.ID != id {
		return nil, domainerror.ErrUserNotFound
	}
	copied := *r.user
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if r.user == nil || r.user.Email != email {
		return nil, domainerror.ErrUserNotFound
	}
	copied := *r.user
	return &copied, nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	return r.user != nil && r.user.Email == email, nil
}

// fakeEmailQueue records enqueued jobs.
type fakeEmailQueue struct {
	mu   sync.Mutex
	jobs []*entity.EmailJob
}

func (q *fakeEmailQueue) Create(_ context.Context, job *entity.EmailJob) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	copied := *job
	q.jobs = append(q.jobs, &copied)
	return nil
}

func (q *fakeEmailQueue) GetPendingJobs(_ context.Context, limit int) ([]*entity.EmailJob, error) {
	return nil, nil
}

func (q *fakeEmailQueue) Update(_ context.Context, job *entity.EmailJob) error { return nil }

func (q *fakeEmailQueue) GetByID(_ context.Context, id uuid.UUID) (*entity.EmailJob, error) {
	return nil, domainerror.ErrEmailJobNotFound
}

func (q *fakeEmailQueue) all() []*entity.EmailJob {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]*entity.EmailJob(nil), q.jobs...)
}
