// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/shopspring/decimal"
	"google.golang.org/api/option"

	"github.com/pocketvision/ledger/internal/application/adapter"
)

// GeminiInvoiceService implements the InvoiceExtractionService using Google
// Gemini vision models.
type GeminiInvoiceService struct {
	apiKey    string
	modelName string
}

// NewGeminiInvoiceService creates a new Gemini invoice service instance.
func NewGeminiInvoiceService(apiKey string) *GeminiInvoiceService {
	return &GeminiInvoiceService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is properly configured.
func (s *GeminiInvoiceService) IsAvailable() bool {
	return s.apiKey != ""
}

// extractionPrompt asks the model for the receipt fields as strict JSON. The
// Vietnamese keys match the receipts the system is built for.
const extractionPrompt = `Bạn là hệ thống đọc hóa đơn. Đọc toàn bộ nội dung ảnh hóa đơn và trả về JSON với đúng các khóa sau:
{
  "Tên người bán": "string hoặc null",
  "Địa chỉ": "string hoặc null",
  "Ngày giao dịch": "dd/MM/yyyy hoặc null",
  "Tổng tiền thanh toán": number hoặc null,
  "Danh sách món": [
    { "Tên món": "string", "Đơn giá": number, "Số lượng": number }
  ]
}
Nếu không đọc được trường nào, trả về null cho trường đó.
FORMAT: Chỉ trả về JSON, không kèm văn bản khác.`

// geminiInvoiceData mirrors the JSON shape the extraction prompt requests.
type geminiInvoiceData struct {
	SellerName  *string                 `json:"Tên người bán"`
	Address     *string                 `json:"Địa chỉ"`
	DateText    *string                 `json:"Ngày giao dịch"`
	TotalAmount *float64                `json:"Tổng tiền thanh toán"`
	Items       []geminiInvoiceItemData `json:"Danh sách món"`
}

type geminiInvoiceItemData struct {
	Name     *string  `json:"Tên món"`
	Price    *float64 `json:"Đơn giá"`
	Quantity *int     `json:"Số lượng"`
}

// Extract reads the receipt image and returns the extracted fields.
func (s *GeminiInvoiceService) Extract(ctx context.Context, image []byte, mimeType string) (*adapter.ExtractedInvoice, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.1)
	model.ResponseMIMEType = "application/json"

	imageFormat := strings.TrimPrefix(mimeType, "image/")
	resp, err := model.GenerateContent(ctx,
		genai.ImageData(imageFormat, image),
		genai.Text(extractionPrompt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	return s.parseResponse(resp)
}

// parseResponse converts the Gemini response into an ExtractedInvoice.
func (s *GeminiInvoiceService) parseResponse(resp *genai.GenerateContentResponse) (*adapter.ExtractedInvoice, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	if textContent == "" {
		return nil, fmt.Errorf("no text content in response")
	}

	// Strip markdown code fences if present
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	var data geminiInvoiceData
	if err := json.Unmarshal([]byte(textContent), &data); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, textContent)
	}

	extracted := &adapter.ExtractedInvoice{}
	if data.SellerName != nil {
		extracted.SellerName = *data.SellerName
	}
	if data.Address != nil {
		extracted.Address = *data.Address
	}
	if data.DateText != nil {
		extracted.DateText = *data.DateText
	}
	if data.TotalAmount != nil {
		extracted.TotalAmount = decimal.NewFromFloat(*data.TotalAmount)
	}

	for _, item := range data.Items {
		extractedItem := adapter.ExtractedInvoiceItem{Quantity: 1}
		if item.Name != nil {
			extractedItem.Name = *item.Name
		}
		if item.Price != nil {
			extractedItem.Price = decimal.NewFromFloat(*item.Price)
		}
		if item.Quantity != nil {
			extractedItem.Quantity = *item.Quantity
		}
		extracted.Items = append(extracted.Items, extractedItem)
	}

	return extracted, nil
}
