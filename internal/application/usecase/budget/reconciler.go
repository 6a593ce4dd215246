// Package budget contains budget-related use cases and the spent-amount reconciler.
package budget

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketvision/ledger/internal/application/adapter"
	"github.com/pocketvision/ledger/internal/domain/entity"
)

// Alert copy shipped by the product. Titles are fixed; messages embed the
// rounded percentage and the budget month.
const (
	overLimitTitle     = "Vỡ ngân sách!"
	overLimitMessage   = "CẢNH BÁO: Ngân sách tháng %s đã vượt quá %s%% hạn mức!"
	approachingTitle   = "Cảnh báo giới hạn"
	approachingMessage = "Cẩn thận! Bạn đã sử dụng %s%% ngân sách tháng %s."
)

var (
	four = decimal.NewFromInt(4)
	five = decimal.NewFromInt(5)
)

// Reconciler keeps a budget's spent amount consistent with the expense log.
// Reconcile fully recomputes the bucket sum from the expense store on every
// trigger instead of adjusting a running counter; recomputation cannot drift,
// so a redundant trigger is harmless.
//
// Reconciliation is best-effort: failures are logged and swallowed so a broken
// aggregation pass never fails the expense or budget write that triggered it.
type Reconciler struct {
	budgetRepo       adapter.BudgetRepository
	expenseRepo      adapter.ExpenseRepository
	notificationRepo adapter.NotificationRepository

	// Optional email delivery for over-limit alerts. Both may be nil.
	userRepo   adapter.UserRepository
	emailQueue adapter.EmailQueueRepository

	// Per-bucket locks serialize concurrent reconciliations of the same
	// bucket so two triggers cannot interleave their read/compare/write.
	mu    sync.Mutex
	locks map[Bucket]*sync.Mutex
}

// NewReconciler creates a new Reconciler instance. userRepo and emailQueue may
// be nil; over-limit alerts are then delivered as notifications only.
func NewReconciler(
	budgetRepo adapter.BudgetRepository,
	expenseRepo adapter.ExpenseRepository,
	notificationRepo adapter.NotificationRepository,
	userRepo adapter.UserRepository,
	emailQueue adapter.EmailQueueRepository,
) *Reconciler {
	return &Reconciler{
		budgetRepo:       budgetRepo,
		expenseRepo:      expenseRepo,
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		emailQueue:       emailQueue,
		locks:            make(map[Bucket]*sync.Mutex),
	}
}

// ReconcileAll reconciles every bucket in order.
func (r *Reconciler) ReconcileAll(ctx context.Context, buckets []Bucket) {
	for _, bucket := range buckets {
		r.Reconcile(ctx, bucket)
	}
}

// Reconcile recomputes the spent amount for one bucket from the expense store,
// persists it when it changed, and evaluates alert thresholds against the
// budget limit. It never returns an error: a bucket with no budget row is
// valid and silent, and any store failure only logs.
func (r *Reconciler) Reconcile(ctx context.Context, bucket Bucket) {
	lock := r.bucketLock(bucket)
	lock.Lock()
	defer lock.Unlock()

	start, end, err := entity.MonthRange(bucket.MonthYear)
	if err != nil {
		slog.Error("Budget reconciliation skipped: bad month",
			"month", bucket.MonthYear,
			"error", err,
		)
		return
	}

	// Full recompute from the source of truth.
	total, err := r.bucketTotal(ctx, bucket, start, end)
	if err != nil {
		slog.Error("Budget reconciliation failed: expense query",
			"user_id", bucket.UserID,
			"category_id", bucket.CategoryID,
			"month", bucket.MonthYear,
			"error", err,
		)
		return
	}

	budget, err := r.budgetRepo.FindByUserCategoryMonth(ctx, bucket.UserID, bucket.CategoryID, bucket.MonthYear)
	if err != nil {
		slog.Error("Budget reconciliation failed: budget lookup",
			"user_id", bucket.UserID,
			"category_id", bucket.CategoryID,
			"month", bucket.MonthYear,
			"error", err,
		)
		return
	}
	if budget == nil {
		// Expenses without a budget for their bucket are valid and silent.
		return
	}

	if !total.Equal(budget.SpentAmount) {
		budget.SpentAmount = total
		budget.UpdatedAt = time.Now().UTC()
		if err := r.budgetRepo.Update(ctx, budget); err != nil {
			slog.Error("Budget reconciliation failed: spent amount write",
				"budget_id", budget.ID,
				"error", err,
			)
			return
		}
	}

	r.evaluateThresholds(ctx, budget)
}

// RefreshSpent recomputes the spent amount for an already-loaded budget and
// persists it when it changed, without evaluating alert thresholds. Read
// paths call it so a row left stale by a failed write-path reconciliation
// heals on the next read instead of waiting for the next mutation. The
// budget's SpentAmount is updated in place so callers return the fresh sum
// even when the persist fails.
func (r *Reconciler) RefreshSpent(ctx context.Context, budget *entity.Budget) {
	bucket := Bucket{
		UserID:     budget.UserID,
		CategoryID: budget.CategoryID,
		MonthYear:  budget.MonthYear,
	}

	lock := r.bucketLock(bucket)
	lock.Lock()
	defer lock.Unlock()

	start, end, err := entity.MonthRange(budget.MonthYear)
	if err != nil {
		slog.Error("Budget refresh skipped: bad month",
			"month", budget.MonthYear,
			"error", err,
		)
		return
	}

	total, err := r.bucketTotal(ctx, bucket, start, end)
	if err != nil {
		slog.Error("Budget refresh failed: expense query",
			"budget_id", budget.ID,
			"error", err,
		)
		return
	}

	if total.Equal(budget.SpentAmount) {
		return
	}

	budget.SpentAmount = total
	budget.UpdatedAt = time.Now().UTC()
	if err := r.budgetRepo.Update(ctx, budget); err != nil {
		slog.Error("Budget refresh failed: spent amount write",
			"budget_id", budget.ID,
			"error", err,
		)
	}
}

// RefreshSpentAll refreshes every budget in the slice.
func (r *Reconciler) RefreshSpentAll(ctx context.Context, budgets []*entity.Budget) {
	for _, budget := range budgets {
		r.RefreshSpent(ctx, budget)
	}
}

// bucketTotal sums the expenses for one bucket over the month window.
func (r *Reconciler) bucketTotal(ctx context.Context, bucket Bucket, start, end time.Time) (decimal.Decimal, error) {
	expenses, err := r.expenseRepo.FindByUserCategoryDateRange(ctx, bucket.UserID, bucket.CategoryID, start, end)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, expense := range expenses {
		total = total.Add(expense.TotalAmount)
	}
	return total, nil
}

// evaluateThresholds compares the spent amount against the limit and appends a
// BUDGET_WARNING notification when the bucket sits in an alerting band. The
// band decision uses exact arithmetic; only the displayed percentage rounds.
func (r *Reconciler) evaluateThresholds(ctx context.Context, budget *entity.Budget) {
	if !budget.LimitAmount.IsPositive() {
		return
	}

	spent := budget.SpentAmount
	limit := budget.LimitAmount
	percent := spent.Div(limit).Mul(decimal.NewFromInt(100)).Round(0).String()

	var title, message string
	switch {
	case spent.GreaterThanOrEqual(limit):
		title = overLimitTitle
		message = fmt.Sprintf(overLimitMessage, budget.MonthYear, percent)
	case spent.Mul(five).GreaterThanOrEqual(limit.Mul(four)): // spent/limit >= 80%
		title = approachingTitle
		message = fmt.Sprintf(approachingMessage, percent, budget.MonthYear)
	default:
		return
	}

	budgetID := budget.ID
	notification := entity.NewNotification(budget.UserID, title, message, entity.NotificationTypeBudgetWarning, &budgetID)
	if err := r.notificationRepo.Create(ctx, notification); err != nil {
		slog.Error("Budget alert notification failed",
			"budget_id", budget.ID,
			"error", err,
		)
		return
	}

	if spent.GreaterThanOrEqual(limit) {
		r.queueAlertEmail(ctx, budget, percent)
	}
}

// queueAlertEmail enqueues an over-limit alert email when delivery is
// configured and the user has budget alert emails enabled. Best-effort.
func (r *Reconciler) queueAlertEmail(ctx context.Context, budget *entity.Budget, percent string) {
	if r.userRepo == nil || r.emailQueue == nil {
		return
	}

	user, err := r.userRepo.FindByID(ctx, budget.UserID)
	if err != nil {
		slog.Error("Budget alert email skipped: user lookup",
			"user_id", budget.UserID,
			"error", err,
		)
		return
	}
	if !user.EmailNotifications || !user.BudgetAlerts {
		return
	}

	job := entity.NewEmailJob(
		entity.TemplateBudgetWarning,
		user.Email,
		user.Name,
		overLimitTitle,
		map[string]interface{}{
			"Name":    user.Name,
			"Month":   budget.MonthYear,
			"Percent": percent,
			"Limit":   budget.LimitAmount.StringFixed(0),
			"Spent":   budget.SpentAmount.StringFixed(0),
		},
	)
	if err := r.emailQueue.Create(ctx, job); err != nil {
		slog.Error("Budget alert email enqueue failed",
			"budget_id", budget.ID,
			"error", err,
		)
	}
}

// bucketLock returns the mutex serializing reconciliation for one bucket.
func (r *Reconciler) bucketLock(bucket Bucket) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()

	lock, ok := r.locks[bucket]
	if !ok {
		lock = &sync.Mutex{}
		r.locks[bucket] = lock
	}
	return lock
}
