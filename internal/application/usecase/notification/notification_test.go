// Package notification contains notification read-model use cases.
package notification

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/pocketvision/ledger/internal/domain/entity"
	domainerror "github.com/pocketvision/ledger/internal/domain/error"
)

// fakeNotificationRepo is an in-memory NotificationRepository with call
// counters for cache behavior assertions.
type fakeNotificationRepo struct {
	mu            sync.Mutex
	notifications map[uuid.UUID]*entity.Notification
	countCalls    int
	failCount     bool
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{notifications: make(map[uuid.UUID]*entity.Notification)}
}

func (r *fakeNotificationRepo) Create(_ context.Context, notification *entity.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *notification
	r.notifications[notification.ID] = &copied
	return nil
}

func (r *fakeNotificationRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	notification, ok := r.notifications[id]
	if !ok {
		return nil, domainerror.ErrNotificationNotFound
	}
	copied := *notification
	return &copied, nil
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
	r.mu.Lock()
	defer r.mu.Unlock()
	r.countCalls++
	if r.failCount {
		return 0, errors.New("count failed")
	}
	var count int64
	for _, notification := range r.notifications {
		if notification.UserID == userID && !notification.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepo) MarkRead(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if notification, ok := r.notifications[id]; ok {
		notification.IsRead = true
	}
	return nil
}

func (r *fakeNotificationRepo) MarkAllRead(_ context.Context, userID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var updated int64
	for _, notification := range r.notifications {
		if notification.UserID == userID && !notification.IsRead {
			notification.IsRead = true
			updated++
		}
	}
	return updated, nil
}

func (r *fakeNotificationRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.notifications, id)
	return nil
}

// fakeCache is an in-memory UnreadCountCache with error injection.
type fakeCache struct {
	mu       sync.Mutex
	values   map[uuid.UUID]int64
	failGet  bool
	failSet  bool
	getCalls int
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: make(map[uuid.UUID]int64)}
}

func (c *fakeCache) Get(_ context.Context, userID uuid.UUID) (int64, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.getCalls++
	if c.failGet {
		return 0, false, errors.New("cache unavailable")
	}
	count, ok := c.values[userID]
	return count, ok, nil
}

func (c *fakeCache) Set(_ context.Context, userID uuid.UUID, count int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failSet {
		return errors.New("cache unavailable")
	}
	c.values[userID] = count
	return nil
}

func (c *fakeCache) Invalidate(_ context.Context, userID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.values, userID)
	return nil
}

func (c *fakeCache) cached(userID uuid.UUID) (int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	count, ok := c.values[userID]
	return count, ok
}

func seedNotification(repo *fakeNotificationRepo, userID uuid.UUID, read bool) *entity.Notification {
	notification := entity.NewNotification(userID, "Cảnh báo giới hạn", "test", entity.NotificationTypeBudgetWarning, nil)
	notification.IsRead = read
	_ = repo.Create(context.Background(), notification)
	return notification
}

func TestCountUnreadUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("cache hit skips the repository", func(t *testing.T) {
		repo := newFakeNotificationRepo()
		cache := newFakeCache()
		_ = cache.Set(ctx, userID, 7)
		useCase := NewCountUnreadUseCase(repo, cache)

		output, err := useCase.Execute(ctx, CountUnreadInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Count != 7 {
			t.Errorf("expected cached count 7, got %d", output.Count)
		}
		if repo.countCalls != 0 {
			t.Errorf("expected no repository call on cache hit, got %d", repo.countCalls)
		}
	})

	t.Run("cache miss populates the cache", func(t *testing.T) {
		repo := newFakeNotificationRepo()
		seedNotification(repo, userID, false)
		seedNotification(repo, userID, false)
		seedNotification(repo, userID, true)
		cache := newFakeCache()
		useCase := NewCountUnreadUseCase(repo, cache)

		output, err := useCase.Execute(ctx, CountUnreadInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Count != 2 {
			t.Errorf("expected count 2, got %d", output.Count)
		}
		if cached, ok := cache.cached(userID); !ok || cached != 2 {
			t.Errorf("expected cache populated with 2, got %d (present=%v)", cached, ok)
		}
	})

	t.Run("cache failure falls back to the repository", func(t *testing.T) {
		repo := newFakeNotificationRepo()
		seedNotification(repo, userID, false)
		cache := newFakeCache()
		cache.failGet = true
		cache.failSet = true
		useCase := NewCountUnreadUseCase(repo, cache)

		output, err := useCase.Execute(ctx, CountUnreadInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Count != 1 {
			t.Errorf("expected count 1, got %d", output.Count)
		}
	})

	t.Run("nil cache goes straight to the repository", func(t *testing.T) {
		repo := newFakeNotificationRepo()
		seedNotification(repo, userID, false)
		useCase := NewCountUnreadUseCase(repo, nil)

		output, err := useCase.Execute(ctx, CountUnreadInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Count != 1 {
			t.Errorf("expected count 1, got %d", output.Count)
		}
	})

	t.Run("repository failure surfaces", func(t *testing.T) {
		repo := newFakeNotificationRepo()
		repo.failCount = true
		useCase := NewCountUnreadUseCase(repo, nil)

		if _, err := useCase.Execute(ctx, CountUnreadInput{UserID: userID}); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestMarkReadUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("marks read and invalidates the cache", func(t *testing.T) {
		repo := newFakeNotificationRepo()
		cache := newFakeCache()
		_ = cache.Set(ctx, userID, 3)
		notification := seedNotification(repo, userID, false)
		useCase := NewMarkReadUseCase(repo, cache)

		output, err := useCase.Execute(ctx, MarkReadInput{NotificationID: notification.ID, UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Success {
			t.Error("expected success")
		}

		stored, _ := repo.FindByID(ctx, notification.ID)
		if !stored.IsRead {
			t.Error("expected notification marked read")
		}
		if _, ok := cache.cached(userID); ok {
			t.Error("expected cache entry dropped")
		}
	})

	t.Run("unknown notification", func(t *testing.T) {
		useCase := NewMarkReadUseCase(newFakeNotificationRepo(), nil)

		_, err := useCase.Execute(ctx, MarkReadInput{NotificationID: uuid.New(), UserID: userID})
		var notificationErr *domainerror.NotificationError
		if !errors.As(err, &notificationErr) || notificationErr.Code != domainerror.ErrCodeNotificationNotFound {
			t.Errorf("expected not-found error, got %v", err)
		}
	})

	t.Run("other user's notification", func(t *testing.T) {
		repo := newFakeNotificationRepo()
		notification := seedNotification(repo, uuid.New(), false)
		useCase := NewMarkReadUseCase(repo, nil)

		_, err := useCase.Execute(ctx, MarkReadInput{NotificationID: notification.ID, UserID: userID})
		var notificationErr *domainerror.NotificationError
		if !errors.As(err, &notificationErr) || notificationErr.Code != domainerror.ErrCodeNotAuthorizedNotification {
			t.Errorf("expected authorization error, got %v", err)
		}
	})
}

func TestMarkAllReadUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	repo := newFakeNotificationRepo()
	cache := newFakeCache()
	_ = cache.Set(ctx, userID, 2)
	seedNotification(repo, userID, false)
	seedNotification(repo, userID, false)
	seedNotification(repo, userID, true)
	seedNotification(repo, uuid.New(), false)
	useCase := NewMarkAllReadUseCase(repo, cache)

	output, err := useCase.Execute(ctx, MarkAllReadInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Updated != 2 {
		t.Errorf("expected 2 updated, got %d", output.Updated)
	}
	if _, ok := cache.cached(userID); ok {
		t.Error("expected cache entry dropped")
	}

	count, _ := repo.CountUnreadByUser(ctx, userID)
	if count != 0 {
		t.Errorf("expected 0 unread left, got %d", count)
	}
}

func TestDeleteNotificationUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("deletes and invalidates the cache", func(t *testing.T) {
		repo := newFakeNotificationRepo()
		cache := newFakeCache()
		_ = cache.Set(ctx, userID, 1)
		notification := seedNotification(repo, userID, false)
		useCase := NewDeleteNotificationUseCase(repo, cache)

		if _, err := useCase.Execute(ctx, DeleteNotificationInput{NotificationID: notification.ID, UserID: userID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := repo.FindByID(ctx, notification.ID); err == nil {
			t.Error("expected notification gone")
		}
		if _, ok := cache.cached(userID); ok {
			t.Error("expected cache entry dropped")
		}
	})

	t.Run("other user's notification is not deletable", func(t *testing.T) {
		repo := newFakeNotificationRepo()
		notification := seedNotification(repo, uuid.New(), false)
		useCase := NewDeleteNotificationUseCase(repo, nil)

		_, err := useCase.Execute(ctx, DeleteNotificationInput{NotificationID: notification.ID, UserID: userID})
		var notificationErr *domainerror.NotificationError
		if !errors.As(err, &notificationErr) || notificationErr.Code != domainerror.ErrCodeNotAuthorizedNotification {
			t.Errorf("expected authorization error, got %v", err)
		}
	})
}
