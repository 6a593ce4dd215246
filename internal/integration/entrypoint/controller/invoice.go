// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketvision/ledger/internal/application/usecase/invoice"
	"github.com/pocketvision/ledger/internal/domain/entity"
	domainerror "github.com/pocketvision/ledger/internal/domain/error"
	"github.com/pocketvision/ledger/internal/integration/entrypoint/dto"
	"github.com/pocketvision/ledger/internal/integration/entrypoint/middleware"
)

// maxInvoiceImageSize caps the accepted upload size at 10 MB.
const maxInvoiceImageSize = 10 << 20

// InvoiceController handles invoice endpoints.
type InvoiceController struct {
	processUseCase *invoice.ProcessInvoiceUseCase
	listUseCase    *invoice.ListInvoicesUseCase
	updateUseCase  *invoice.UpdateInvoiceUseCase
	deleteUseCase  *invoice.DeleteInvoiceUseCase
	convertUseCase *invoice.ConvertToExpenseUseCase
}

// NewInvoiceController creates a new invoice controller instance.
func NewInvoiceController(
	processUseCase *invoice.ProcessInvoiceUseCase,
	listUseCase *invoice.ListInvoicesUseCase,
	updateUseCase *invoice.UpdateInvoiceUseCase,
	deleteUseCase *invoice.DeleteInvoiceUseCase,
	convertUseCase *invoice.ConvertToExpenseUseCase,
) *InvoiceController {
	return &InvoiceController{
		processUseCase: processUseCase,
		listUseCase:    listUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		convertUseCase: convertUseCase,
	}
}

// Process handles POST /invoices requests. The receipt image arrives
// as a multipart form file under the "image" field.
func (c *InvoiceController) Process(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Image file is required",
			Code:  string(domainerror.ErrCodeMissingInvoiceFields),
		})
		return
	}

	if fileHeader.Size > maxInvoiceImageSize {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Image file exceeds the maximum allowed size",
			Code:  string(domainerror.ErrCodeMissingInvoiceFields),
		})
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(mimeType, "image/") {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Only image uploads are supported",
			Code:  string(domainerror.ErrCodeMissingInvoiceFields),
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to read uploaded file",
		})
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to read uploaded file",
		})
		return
	}

	output, err := c.processUseCase.Execute(ctx.Request.Context(), invoice.ProcessInvoiceInput{
		UserID:   userID,
		Image:    image,
		MimeType: mimeType,
		FileName: fileHeader.Filename,
	})
	if err != nil {
		c.handleInvoiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToInvoiceResponse(output.Invoice))
}

// List handles GET /invoices requests.
func (c *InvoiceController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), invoice.ListInvoicesInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve invoices",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceListResponse(output.Invoices))
}

// Update handles PATCH /invoices/:id requests.
func (c *InvoiceController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	invoiceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid invoice ID format",
		})
		return
	}

	var req dto.UpdateInvoiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingInvoiceFields),
		})
		return
	}

	input := invoice.UpdateInvoiceInput{
		InvoiceID: invoiceID,
		UserID:    userID,
		StoreName: req.StoreName,
		Note:      req.Note,
	}

	if req.TotalAmount != nil {
		amount := decimal.NewFromFloat(*req.TotalAmount)
		input.TotalAmount = &amount
	}

	if req.CategoryID != nil && *req.CategoryID != "" {
		id, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category ID format",
			})
			return
		}
		input.CategoryID = &id
	}

	if req.PaymentMethod != nil {
		method := entity.PaymentMethod(*req.PaymentMethod)
		input.PaymentMethod = &method
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleInvoiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceResponse(output.Invoice))
}

// Delete handles DELETE /invoices/:id requests.
func (c *InvoiceController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	invoiceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid invoice ID format",
		})
		return
	}

	_, err = c.deleteUseCase.Execute(ctx.Request.Context(), invoice.DeleteInvoiceInput{
		InvoiceID: invoiceID,
		UserID:    userID,
	})
	if err != nil {
		c.handleInvoiceError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Convert handles POST /invoices/:id/convert requests.
func (c *InvoiceController) Convert(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	invoiceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid invoice ID format",
		})
		return
	}

	output, err := c.convertUseCase.Execute(ctx.Request.Context(), invoice.ConvertToExpenseInput{
		InvoiceID: invoiceID,
		UserID:    userID,
	})
	if err != nil {
		c.handleInvoiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(output.Expense))
}

// handleInvoiceError handles invoice errors and returns appropriate HTTP responses.
func (c *InvoiceController) handleInvoiceError(ctx *gin.Context, err error) {
	var invoiceErr *domainerror.InvoiceError
	if errors.As(err, &invoiceErr) {
		statusCode := c.getStatusCodeForInvoiceError(invoiceErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: invoiceErr.Message,
			Code:  string(invoiceErr.Code),
		})
		return
	}

	// Conversion delegates to expense creation, so expense validation
	// errors can surface here too.
	var expenseErr *domainerror.ExpenseError
	if errors.As(err, &expenseErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: expenseErr.Message,
			Code:  string(expenseErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForInvoiceError maps invoice error codes to HTTP status codes.
func (c *InvoiceController) getStatusCodeForInvoiceError(code domainerror.InvoiceErrorCode) int {
	switch code {
	case domainerror.ErrCodeUnreadableInvoice:
		return http.StatusUnprocessableEntity
	case domainerror.ErrCodeInvoiceMissingCategory,
		domainerror.ErrCodeMissingInvoiceFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvoiceNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedInvoice:
		return http.StatusForbidden
	case domainerror.ErrCodeExtractionFailed:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
