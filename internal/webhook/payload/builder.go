package payload

import (
	"strings"

	"github.com/vibesbot/webhook-invoker/internal/types"
	webhookDto "github.com/vibesbot/webhook-invoker/internal/webhook/dto"
)

// ReceiptBaseURL is where the payment provider hosts receipts, keyed by transaction_nsu
const ReceiptBaseURL = "https://recibo.infinitepay.io/"

// Option mutates a freshly built payload
type Option func(p *webhookDto.WebhookPayload)

// Default returns the paid-invoice notification used for smoke tests.
// Every call returns a new value.
func Default() *webhookDto.WebhookPayload {
	const transactionNSU = "f1e80fa2-2514-4d61-a39b-6d4c9b186da2"
	return &webhookDto.WebhookPayload{
		InvoiceSlug:    "6wtHnK2KA5",
		Amount:         1300,
		PaidAmount:     1300,
		Installments:   1,
		CaptureMethod:  types.CaptureMethodPix,
		TransactionNSU: transactionNSU,
		OrderNSU:       "QA57J3UZ",
		ReceiptURL:     ReceiptURL(transactionNSU),
		Items: []webhookDto.LineItem{
			{Quantity: 3, Price: 100, Description: "zombie"},
			{Quantity: 2, Price: 500, Description: "zombie2"},
		},
	}
}

// New builds a payload from Default with opts applied in order
func New(opts ...Option) *webhookDto.WebhookPayload {
	return Apply(Default(), opts...)
}

// Apply applies opts to a copy of base; base itself is left untouched
func Apply(base *webhookDto.WebhookPayload, opts ...Option) *webhookDto.WebhookPayload {
	p := base.Clone()
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ReceiptURL is the receipt link for a transaction
func ReceiptURL(transactionNSU string) string {
	return ReceiptBaseURL + transactionNSU
}

func WithOrderNSU(orderNSU string) Option {
	return func(p *webhookDto.WebhookPayload) {
		p.OrderNSU = orderNSU
	}
}

func WithInvoiceSlug(slug string) Option {
	return func(p *webhookDto.WebhookPayload) {
		p.InvoiceSlug = slug
	}
}

// WithTransactionNSU sets transaction_nsu; a receipt_url that pointed at the
// previous transaction follows it.
func WithTransactionNSU(nsu string) Option {
	return func(p *webhookDto.WebhookPayload) {
		if p.ReceiptURL == "" || (strings.HasPrefix(p.ReceiptURL, ReceiptBaseURL) && strings.HasSuffix(p.ReceiptURL, p.TransactionNSU)) {
			p.ReceiptURL = ReceiptURL(nsu)
		}
		p.TransactionNSU = nsu
	}
}

func WithReceiptURL(receiptURL string) Option {
	return func(p *webhookDto.WebhookPayload) {
		p.ReceiptURL = receiptURL
	}
}

func WithAmount(amount int64) Option {
	return func(p *webhookDto.WebhookPayload) {
		p.Amount = amount
	}
}

func WithPaidAmount(amount int64) Option {
	return func(p *webhookDto.WebhookPayload) {
		p.PaidAmount = amount
	}
}

func WithInstallments(n int) Option {
	return func(p *webhookDto.WebhookPayload) {
		p.Installments = n
	}
}

func WithCaptureMethod(method types.CaptureMethod) Option {
	return func(p *webhookDto.WebhookPayload) {
		p.CaptureMethod = method
	}
}

// WithItems replaces the items with a copy of items
func WithItems(items ...webhookDto.LineItem) Option {
	return func(p *webhookDto.WebhookPayload) {
		p.Items = append([]webhookDto.LineItem(nil), items...)
	}
}

// WithCustomer sets the buyer name shown by the receiving overlay
func WithCustomer(name string) Option {
	return func(p *webhookDto.WebhookPayload) {
		p.CustomerName = name
	}
}

// WithTTS sets the message (and optionally the voice) read aloud on purchase
func WithTTS(text, voice string) Option {
	return func(p *webhookDto.WebhookPayload) {
		p.TTSText = text
		p.TTSVoice = voice
	}
}

// WithFreshIdentifiers replaces order_nsu, invoice_slug and transaction_nsu
// with newly generated values so repeated runs are not deduplicated by the
// receiver, which keys purchases on order_nsu.
func WithFreshIdentifiers() Option {
	return func(p *webhookDto.WebhookPayload) {
		WithOrderNSU(types.GenerateOrderNSU())(p)
		WithInvoiceSlug(types.GenerateShortID())(p)
		WithTransactionNSU(types.GenerateTransactionNSU())(p)
	}
}
