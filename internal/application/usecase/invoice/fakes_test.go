// Package invoice contains the receipt ingestion pipeline.
package invoice

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/pocketvision/ledger/internal/application/adapter"
	"github.com/pocketvision/ledger/internal/domain/entity"
	domainerror "github.com/pocketvision/ledger/internal/domain/error"
)

// stubExtraction returns a canned extraction result.
type stubExtraction struct {
	available bool
	result    *adapter.ExtractedInvoice
	err       error
}

func (s *stubExtraction) IsAvailable() bool { return s.available }

func (s *stubExtraction) Extract(_ context.Context, _ []byte, _ string) (*adapter.ExtractedInvoice, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

// memInvoiceRepo is an in-memory InvoiceRepository.
type memInvoiceRepo struct {
	mu       sync.Mutex
	invoices map[uuid.UUID]*entity.Invoice
}

func newMemInvoiceRepo() *memInvoiceRepo {
	return &memInvoiceRepo{invoices: make(map[uuid.UUID]*entity.Invoice)}
}

func (r *memInvoiceRepo) Create(_ context.Context, invoice *entity.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *invoice
	r.invoices[invoice.ID] = &copied
	return nil
}

func (r *memInvoiceRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	invoice, ok := r.invoices[id]
	if !ok {
		return nil, domainerror.ErrInvoiceNotFound
	}
	copied := *invoice
	return &copied, nil
}

func (r *memInvoiceRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entity.Invoice
	for _, invoice := range r.invoices {
		if invoice.UserID == userID {
			copied := *invoice
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *memInvoiceRepo) Update(_ context.Context, invoice *entity.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *invoice
	r.invoices[invoice.ID] = &copied
	return nil
}

func (r *memInvoiceRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.invoices, id)
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
