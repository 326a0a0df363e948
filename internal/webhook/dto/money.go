package webhookDto

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatReais renders centavos the way the purchase overlay shows them:
// whole reais without decimals ("13"), otherwise two decimals with a
// comma separator ("13,50").
func FormatReais(centavos int64) string {
	reais := decimal.New(centavos, -2)
	if reais.Equal(reais.Truncate(0)) {
		return reais.Truncate(0).String()
	}
	return strings.Replace(reais.StringFixed(2), ".", ",", 1)
}

// AmountReais formats PaidAmount, falling back to Amount when nothing was paid
func (p *WebhookPayload) AmountReais() string {
	if p.PaidAmount > 0 {
		return FormatReais(p.PaidAmount)
	}
	return FormatReais(p.Amount)
}
