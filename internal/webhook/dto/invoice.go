package webhookDto

import (
	"github.com/samber/lo"
	"github.com/vibesbot/webhook-invoker/internal/types"
)

// WebhookPayload is the checkout notification posted for a paid invoice.
// Amounts are in minor currency units (centavos).
type WebhookPayload struct {
	InvoiceSlug    string              `json:"invoice_slug"`
	Amount         int64               `json:"amount"`
	PaidAmount     int64               `json:"paid_amount"`
	Installments   int                 `json:"installments"`
	CaptureMethod  types.CaptureMethod `json:"capture_method"`
	TransactionNSU string              `json:"transaction_nsu"`
	OrderNSU       string              `json:"order_nsu"`
	ReceiptURL     string              `json:"receipt_url"`
	Items          []LineItem          `json:"items"`

	// Optional buyer fields the receiving overlay understands
	CustomerName string `json:"customer_name,omitempty"`
	TTSText      string `json:"tts_text,omitempty"`
	TTSVoice     string `json:"tts_voice,omitempty"`
}

// LineItem is a purchased product; it has no identity outside its payload
type LineItem struct {
	Quantity    int    `json:"quantity"`
	Price       int64  `json:"price"`
	Description string `json:"description"`
}

// Clone returns a deep copy of the payload
func (p *WebhookPayload) Clone() *WebhookPayload {
	if p == nil {
		return nil
	}
	clone := *p
	if p.Items != nil {
		clone.Items = make([]LineItem, len(p.Items))
		copy(clone.Items, p.Items)
	}
	return &clone
}

// ItemsTotal is sum(quantity*price) over the items. It is informational;
// nothing requires it to match Amount or PaidAmount.
func (p *WebhookPayload) ItemsTotal() int64 {
	return lo.SumBy(p.Items, func(item LineItem) int64 {
		return int64(item.Quantity) * item.Price
	})
}
