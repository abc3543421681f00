package validation

import "github.com/R0PPER/Paymento/internal/models"

// Validation failure messages surfaced to the presentation layer.
const (
	MsgCardNumberRequired = "Card number is required."
	MsgExpiryDateRequired = "Expiry date is required."
	MsgCVVRequired        = "CVV is required."
	MsgInvalidCardNumber  = "Invalid card number. Please check the format."
	MsgInvalidExpiryDate  = "Invalid expiry date. Format should be MM/YY, not expired or 10+ years in the future."
	MsgInvalidCVV         = "Invalid CVV. Should be 3 digits (4 for Amex)."
	MsgInvalidAmount      = "Invalid amount. Please enter a positive number."
)

// Result is the outcome of validating a payment input. When several fields
// are invalid only the earliest failing check is reported.
type Result struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

type check struct {
	ok      bool
	message string
}

// PaymentDetails validates a payment input in a fixed order: required
// fields first (card number, expiry date, CVV), then formats in the same
// field order, then the amount when one is present. The first failing
// check decides the result.
func PaymentDetails(input models.PaymentInput) Result {
	checks := []check{
		{input.CardNumber != "", MsgCardNumberRequired},
		{input.ExpiryDate != "", MsgExpiryDateRequired},
		{input.CVV != "", MsgCVVRequired},
		{CardNumber(input.CardNumber), MsgInvalidCardNumber},
		{ExpiryDate(input.ExpiryDate), MsgInvalidExpiryDate},
		{CVV(input.CVV, input.CardNumber), MsgInvalidCVV},
	}
	if input.Amount != nil {
		checks = append(checks, check{*input.Amount > 0, MsgInvalidAmount})
	}

	for _, c := range checks {
		if !c.ok {
			return Result{Valid: false, Reason: c.message}
		}
	}
	return Result{Valid: true}
}
