// Package invoice contains the receipt ingestion pipeline: AI extraction of
// uploaded images, invoice management, and conversion into expenses.
package invoice

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pocketvision/ledger/internal/application/adapter"
	"github.com/pocketvision/ledger/internal/domain/entity"
	domainerror "github.com/pocketvision/ledger/internal/domain/error"
)

const (
	// defaultStoreName labels invoices whose seller name could not be read.
	defaultStoreName = "Hóa đơn chưa đặt tên"

	// defaultItemName labels line items whose name could not be read.
	defaultItemName = "Sản phẩm"
)

// placeholderValues are strings the extraction model emits when a field is
// unreadable; they count as missing during quality validation.
var placeholderValues = []string{"Không tên", "N/A", "Unknown"}

// ProcessInvoiceInput represents the input for invoice processing.
type ProcessInvoiceInput struct {
	UserID   uuid.UUID
	Image    []byte
	MimeType string
	FileName string
}

// ProcessInvoiceOutput represents the output of invoice processing.
type ProcessInvoiceOutput struct {
	Invoice *entity.Invoice
}

// ProcessInvoiceUseCase runs the receipt pipeline: extract fields from the
// image, validate extraction quality, persist the invoice, and raise a
// NEW_INVOICE notification.
type ProcessInvoiceUseCase struct {
	invoiceRepo      adapter.InvoiceRepository
	notificationRepo adapter.NotificationRepository
	extraction       adapter.InvoiceExtractionService
}

// NewProcessInvoiceUseCase creates a new ProcessInvoiceUseCase instance.
func NewProcessInvoiceUseCase(
	invoiceRepo adapter.InvoiceRepository,
	notificationRepo adapter.NotificationRepository,
	extraction adapter.InvoiceExtractionService,
) *ProcessInvoiceUseCase {
	return &ProcessInvoiceUseCase{
		invoiceRepo:      invoiceRepo,
		notificationRepo: notificationRepo,
		extraction:       extraction,
	}
}

// Execute performs the invoice processing. The notification at the end is
// best effort: a failure there never rolls back the stored invoice.
func (uc *ProcessInvoiceUseCase) Execute(ctx context.Context, input ProcessInvoiceInput) (*ProcessInvoiceOutput, error) {
	if !uc.extraction.IsAvailable() {
		return nil, domainerror.NewInvoiceError(
			domainerror.ErrCodeExtractionFailed,
			"invoice extraction service is not configured",
			domainerror.ErrExtractionFailed,
		)
	}

	extracted, err := uc.extraction.Extract(ctx, input.Image, input.MimeType)
	if err != nil {
		return nil, domainerror.NewInvoiceError(
			domainerror.ErrCodeExtractionFailed,
			"failed to extract invoice fields",
			fmt.Errorf("%w: %w", domainerror.ErrExtractionFailed, err),
		)
	}

	if err := validateExtractionQuality(extracted); err != nil {
		return nil, err
	}

	storeName := extracted.SellerName
	if isBlankOrPlaceholder(storeName) {
		storeName = defaultStoreName
	}

	address := extracted.Address
	if isBlankOrPlaceholder(address) {
		address = "N/A"
	}

	invoice := entity.NewInvoice(
		input.UserID,
		storeName,
		extracted.TotalAmount,
		"Địa chỉ: "+address,
		"upload/"+input.FileName,
		parseInvoiceDate(extracted.DateText),
	)

	for _, item := range extracted.Items {
		name := item.Name
		if isBlankOrPlaceholder(name) {
			name = defaultItemName
		}
		quantity := item.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		invoice.Items = append(invoice.Items, entity.NewInvoiceItem(invoice.ID, name, item.Price, quantity))
	}

	if err := uc.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, fmt.Errorf("failed to save invoice: %w", err)
	}

	notification := entity.NewNotification(
		input.UserID,
		"Xử lý hóa đơn thành công",
		"Đã trích xuất hóa đơn: "+storeName,
		entity.NotificationTypeNewInvoice,
		&invoice.ID,
	)
	if err := uc.notificationRepo.Create(ctx, notification); err != nil {
		slog.Error("Failed to create invoice notification",
			"user_id", input.UserID,
			"invoice_id", invoice.ID,
			"error", err,
		)
	}

	return &ProcessInvoiceOutput{Invoice: invoice}, nil
}

// validateExtractionQuality rejects extractions too incomplete to identify the
// purchase. An invoice is unusable when both the name and the total are
// missing, or when both the name and the address are missing.
func validateExtractionQuality(extracted *adapter.ExtractedInvoice) error {
	nameInvalid := isBlankOrPlaceholder(extracted.SellerName)
	totalInvalid := !extracted.TotalAmount.IsPositive()
	addressInvalid := isBlankOrPlaceholder(extracted.Address)

	if nameInvalid && totalInvalid {
		return domainerror.NewInvoiceError(
			domainerror.ErrCodeUnreadableInvoice,
			"image is too blurry or is not an invoice: seller name and total are both missing",
			domainerror.ErrUnreadableInvoice,
		)
	}
	if nameInvalid && addressInvalid {
		return domainerror.NewInvoiceError(
			domainerror.ErrCodeUnreadableInvoice,
			"cannot identify the seller: name and address are both missing",
			domainerror.ErrUnreadableInvoice,
		)
	}
	return nil
}

func isBlankOrPlaceholder(value string) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return true
	}
	for _, placeholder := range placeholderValues {
		if strings.EqualFold(trimmed, placeholder) {
			return true
		}
	}
	return false
}

// parseInvoiceDate parses the free-text transaction date the model returns.
// Separators are normalized to "/" and anything after the first space (a time
// component, usually) is dropped. Unparseable dates fall back to today.
func parseInvoiceDate(dateText string) time.Time {
	trimmed := strings.TrimSpace(dateText)
	if trimmed == "" {
		return time.Now().UTC()
	}

	datePart := strings.SplitN(trimmed, " ", 2)[0]
	datePart = strings.NewReplacer(".", "/", "-", "/").Replace(datePart)

	for _, layout := range []string{"02/01/2006", "2006/01/02"} {
		if parsed, err := time.Parse(layout, datePart); err == nil {
			return parsed
		}
	}

	slog.Warn("Unparseable invoice date, falling back to today", "date_text", dateText)
	return time.Now().UTC()
}
