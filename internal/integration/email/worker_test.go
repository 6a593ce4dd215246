// Package email provides email sending functionality.
package email

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pocketvision/ledger/internal/domain/entity"
	domainerror "github.com/pocketvision/ledger/internal/domain/error"
	"github.com/pocketvision/ledger/internal/integration/email/templates"
)

// memEmailQueue is an in-memory EmailQueueRepository.
type memEmailQueue struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]*entity.EmailJob
}

func newMemEmailQueue() *memEmailQueue {
	return &memEmailQueue{jobs: make(map[uuid.UUID]*entity.EmailJob)}
}

func (q *memEmailQueue) Create(_ context.Context, job *entity.EmailJob) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	copied := *job
	q.jobs[job.ID] = &copied
	return nil
}

func (q *memEmailQueue) GetPendingJobs(_ context.Context, limit int) ([]*entity.EmailJob, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	now := time.Now().UTC()
	var result []*entity.EmailJob
	for _, job := range q.jobs {
		if job.Status != entity.EmailStatusPending || job.ScheduledAt.After(now) {
			continue
		}
		copied := *job
		result = append(result, &copied)
		if len(result) >= limit {
			break
		}
	}
	return result, nil
}

func (q *memEmailQueue) Update(_ context.Context, job *entity.EmailJob) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	copied := *job
	q.jobs[job.ID] = &copied
	return nil
}

func (q *memEmailQueue) GetByID(_ context.Context, id uuid.UUID) (*entity.EmailJob, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	job, ok := q.jobs[id]
	if !ok {
		return nil, domainerror.ErrEmailJobNotFound
	}
	copied := *job
	return &copied, nil
}

func budgetWarningJob() *entity.EmailJob {
	return entity.NewEmailJob(
		entity.TemplateBudgetWarning,
		"lan@example.com",
		"Lan",
		"Vỡ ngân sách!",
		map[string]interface{}{
			"Name":    "Lan",
			"Month":   "2025-03",
			"Percent": "120",
			"Limit":   "1000",
			"Spent":   "1200",
		},
	)
}

func newTestWorker(t *testing.T, queue *memEmailQueue, sender *MockEmailSender) *Worker {
	t.Helper()
	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("failed to build renderer: %v", err)
	}
	return NewWorker(queue, sender, renderer, DefaultWorkerConfig())
}

func TestWorker_ProcessNow(t *testing.T) {
	ctx := context.Background()

	t.Run("pending job is rendered and sent", func(t *testing.T) {
		queue := newMemEmailQueue()
		sender := NewMockEmailSender()
		worker := newTestWorker(t, queue, sender)

		job := budgetWarningJob()
		_ = queue.Create(ctx, job)

		worker.ProcessNow(ctx)

		if len(sender.SentEmails) != 1 {
			t.Fatalf("expected 1 email sent, got %d", len(sender.SentEmails))
		}
		sent := sender.SentEmails[0]
		if sent.To != "lan@example.com" {
			t.Errorf("unexpected recipient %q", sent.To)
		}
		if !strings.Contains(sent.HTML, "120") || !strings.Contains(sent.HTML, "2025-03") {
			t.Error("expected rendered HTML to contain percent and month")
		}
		if sent.Text == "" {
			t.Error("expected text alternative rendered")
		}

		stored, _ := queue.GetByID(ctx, job.ID)
		if stored.Status != entity.EmailStatusSent {
			t.Errorf("expected job marked sent, got %s", stored.Status)
		}
		if stored.ResendID == "" {
			t.Error("expected provider ID recorded")
		}
	})

	t.Run("send failure schedules a retry", func(t *testing.T) {
		queue := newMemEmailQueue()
		sender := NewMockEmailSender()
		sender.ShouldFail = true
		worker := newTestWorker(t, queue, sender)

		job := budgetWarningJob()
		_ = queue.Create(ctx, job)

		worker.ProcessNow(ctx)

		stored, _ := queue.GetByID(ctx, job.ID)
		if stored.Status != entity.EmailStatusPending {
			t.Errorf("expected job back to pending for retry, got %s", stored.Status)
		}
		if stored.Attempts != 1 {
			t.Errorf("expected 1 attempt recorded, got %d", stored.Attempts)
		}
		if !stored.ScheduledAt.After(time.Now().UTC().Add(30 * time.Second)) {
			t.Error("expected backoff on the retry schedule")
		}
	})

	t.Run("job fails permanently after max attempts", func(t *testing.T) {
		queue := newMemEmailQueue()
		sender := NewMockEmailSender()
		sender.ShouldFail = true
		worker := newTestWorker(t, queue, sender)

		job := budgetWarningJob()
		job.Attempts = job.MaxAttempts - 1
		_ = queue.Create(ctx, job)

		worker.ProcessNow(ctx)

		stored, _ := queue.GetByID(ctx, job.ID)
		if stored.Status != entity.EmailStatusFailed {
			t.Errorf("expected permanent failure, got %s", stored.Status)
		}
		if stored.LastError == "" {
			t.Error("expected last error recorded")
		}
	})

	t.Run("unknown template fails the job without sending", func(t *testing.T) {
		queue := newMemEmailQueue()
		sender := NewMockEmailSender()
		worker := newTestWorker(t, queue, sender)

		job := budgetWarningJob()
		job.TemplateType = "no_such_template"
		job.MaxAttempts = 1
		_ = queue.Create(ctx, job)

		worker.ProcessNow(ctx)

		if len(sender.SentEmails) != 0 {
			t.Errorf("expected no emails sent, got %d", len(sender.SentEmails))
		}
		stored, _ := queue.GetByID(ctx, job.ID)
		if stored.Status != entity.EmailStatusFailed {
			t.Errorf("expected job failed, got %s", stored.Status)
		}
	})

	t.Run("future-scheduled job is left alone", func(t *testing.T) {
		queue := newMemEmailQueue()
		sender := NewMockEmailSender()
		worker := newTestWorker(t, queue, sender)

		job := budgetWarningJob()
		job.ScheduledAt = time.Now().UTC().Add(time.Hour)
		_ = queue.Create(ctx, job)

		worker.ProcessNow(ctx)

		if len(sender.SentEmails) != 0 {
			t.Errorf("expected no emails sent, got %d", len(sender.SentEmails))
		}
		stored, _ := queue.GetByID(ctx, job.ID)
		if stored.Status != entity.EmailStatusPending {
			t.Errorf("expected job still pending, got %s", stored.Status)
		}
	})
}
