// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmailStatus represents the status of an email job in the queue.
type EmailStatus string

const (
	EmailStatusPending    EmailStatus = "pending"
	EmailStatusProcessing EmailStatus = "processing"
	EmailStatusSent       EmailStatus = "sent"
	EmailStatusFailed     EmailStatus = "failed"
)

// EmailTemplateType represents the type of email template.
type EmailTemplateType string

const (
	TemplateBudgetWarning EmailTemplateType = "budget_warning"
)

// EmailJob represents an email in the queue waiting to be sent.
type EmailJob struct {
	ID             uuid.UUID
	TemplateType   EmailTemplateType
	RecipientEmail string
	RecipientName  string
	Subject        string
	TemplateData   map[string]interface{}
	Status         EmailStatus
	Attempts       int
	MaxAttempts    int
	LastError      string
	ResendID       string
	CreatedAt      time.Time
	ScheduledAt    time.Time
	ProcessedAt    *time.Time
}

// NewEmailJob creates a new EmailJob with default values.
func NewEmailJob(templateType EmailTemplateType, recipientEmail, recipientName, subject string, data map[string]interface{}) *EmailJob {
	now := time.Now().UTC()
	return &EmailJob{
		ID:             uuid.New(),
		TemplateType:   templateType,
		RecipientEmail: recipientEmail,
		RecipientName:  recipientName,
		Subject:        subject,
		TemplateData:   data,
		Status:         EmailStatusPending,
		Attempts:       0,
		MaxAttempts:    3,
		CreatedAt:      now,
		ScheduledAt:    now,
	}
}

// MarkProcessing marks the job as picked up by the worker.
func (j *EmailJob) MarkProcessing() {
	j.Status = EmailStatusProcessing
}

// MarkSent marks the job as successfully sent.
func (j *EmailJob) MarkSent(resendID string) {
	now := time.Now().UTC()
	j.Status = EmailStatusSent
	j.ResendID = resendID
	j.ProcessedAt = &now
}

// MarkFailed records a failed attempt. The job stays pending and is retried
// with backoff until MaxAttempts is exhausted.
func (j *EmailJob) MarkFailed(errMsg string) {
	j.Attempts++
	j.LastError = errMsg
	if j.Attempts >= j.MaxAttempts {
		now := time.Now().UTC()
		j.Status = EmailStatusFailed
		j.ProcessedAt = &now
		return
	}
	j.Status = EmailStatusPending
	j.ScheduledAt = time.Now().UTC().Add(time.Duration(j.Attempts) * time.Minute)
}
