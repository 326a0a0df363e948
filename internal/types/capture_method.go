package types

import (
	"fmt"

	"github.com/samber/lo"
)

// CaptureMethod is how the checkout captured the payment
type CaptureMethod string

const (
	CaptureMethodPix        CaptureMethod = "pix"
	CaptureMethodCreditCard CaptureMethod = "credit_card"
	CaptureMethodDebitCard  CaptureMethod = "debit_card"
)

func (c CaptureMethod) String() string {
	return string(c)
}

func (c CaptureMethod) Validate() error {
	allowed := []CaptureMethod{
		CaptureMethodPix,
		CaptureMethodCreditCard,
		CaptureMethodDebitCard,
	}
	if !lo.Contains(allowed, c) {
		return fmt.Errorf("invalid capture method: %s", c)
	}
	return nil
}
