// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pocketvision/ledger/config"
	"github.com/pocketvision/ledger/internal/application/adapter"
	"github.com/pocketvision/ledger/internal/application/usecase/auth"
	"github.com/pocketvision/ledger/internal/application/usecase/budget"
	"github.com/pocketvision/ledger/internal/application/usecase/expense"
	"github.com/pocketvision/ledger/internal/application/usecase/invoice"
	"github.com/pocketvision/ledger/internal/application/usecase/notification"
	"github.com/pocketvision/ledger/internal/application/usecase/report"
	"github.com/pocketvision/ledger/internal/infra/server/router"
	"github.com/pocketvision/ledger/internal/integration/adapters"
	"github.com/pocketvision/ledger/internal/integration/cache"
	"github.com/pocketvision/ledger/internal/integration/email"
	"github.com/pocketvision/ledger/internal/integration/email/templates"
	"github.com/pocketvision/ledger/internal/integration/entrypoint/controller"
	"github.com/pocketvision/ledger/internal/integration/entrypoint/middleware"
	"github.com/pocketvision/ledger/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	notificationRepo := persistence.NewNotificationRepository(db)
	invoiceRepo := persistence.NewInvoiceRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret)
	extractionService := adapters.NewGeminiInvoiceService(cfg.Gemini.APIKey)

	// Optional unread-count cache; the use case falls back to the
	// repository when no cache is configured.
	var unreadCache adapter.UnreadCountCache
	if cfg.Redis.Enabled && cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			slog.Warn("Invalid Redis URL, running without cache", "error", err)
		} else {
			unreadCache = cache.NewUnreadCountCache(redis.NewClient(opts))
		}
	}

	// The reconciler keeps budget spent amounts and alerts in sync with
	// the expense store. Every expense and budget mutation routes
	// through it.
	reconciler := budget.NewReconciler(budgetRepo, expenseRepo, notificationRepo, userRepo, emailQueueRepo)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUseCase(userRepo, passwordService, tokenService)
	refreshUseCase := auth.NewRefreshUseCase(userRepo, tokenService)

	// Create expense use cases
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	searchExpensesUseCase := expense.NewSearchExpensesUseCase(expenseRepo)
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, reconciler)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo, reconciler)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo, reconciler)

	// Create budget use cases
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo, reconciler)
	getBudgetUseCase := budget.NewGetBudgetUseCase(budgetRepo, reconciler)
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo, reconciler)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo, reconciler)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)

	// Create notification use cases
	listNotificationsUseCase := notification.NewListNotificationsUseCase(notificationRepo)
	countUnreadUseCase := notification.NewCountUnreadUseCase(notificationRepo, unreadCache)
	markReadUseCase := notification.NewMarkReadUseCase(notificationRepo, unreadCache)
	markAllReadUseCase := notification.NewMarkAllReadUseCase(notificationRepo, unreadCache)
	deleteNotificationUseCase := notification.NewDeleteNotificationUseCase(notificationRepo, unreadCache)

	// Create invoice use cases
	processInvoiceUseCase := invoice.NewProcessInvoiceUseCase(invoiceRepo, notificationRepo, extractionService)
	listInvoicesUseCase := invoice.NewListInvoicesUseCase(invoiceRepo)
	updateInvoiceUseCase := invoice.NewUpdateInvoiceUseCase(invoiceRepo)
	deleteInvoiceUseCase := invoice.NewDeleteInvoiceUseCase(invoiceRepo)
	convertInvoiceUseCase := invoice.NewConvertToExpenseUseCase(invoiceRepo, createExpenseUseCase)

	// Create report use cases
	summaryUseCase := report.NewSummaryUseCase(expenseRepo, categoryRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshUseCase,
	)

	expenseController := controller.NewExpenseController(
		listExpensesUseCase,
		searchExpensesUseCase,
		createExpenseUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
	)

	budgetController := controller.NewBudgetController(
		listBudgetsUseCase,
		getBudgetUseCase,
		createBudgetUseCase,
		updateBudgetUseCase,
		deleteBudgetUseCase,
	)

	notificationController := controller.NewNotificationController(
		listNotificationsUseCase,
		countUnreadUseCase,
		markReadUseCase,
		markAllReadUseCase,
		deleteNotificationUseCase,
	)

	invoiceController := controller.NewInvoiceController(
		processInvoiceUseCase,
		listInvoicesUseCase,
		updateInvoiceUseCase,
		deleteInvoiceUseCase,
		convertInvoiceUseCase,
	)

	reportController := controller.NewReportController(summaryUseCase)

	// Create middleware
	// Use higher rate limits for test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create email worker when delivery is configured
	var emailWorker *email.Worker
	if cfg.Email.WorkerEnabled && cfg.Email.ResendAPIKey != "" {
		renderer, err := templates.NewRenderer()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize email templates: %w", err)
		}
		sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
		emailWorker = email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
			PollInterval: cfg.Email.PollInterval,
			BatchSize:    cfg.Email.BatchSize,
		})
	}

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		expenseController,
		budgetController,
		notificationController,
		invoiceController,
		reportController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		EmailWorker: emailWorker,
	}, nil
}
