package models

// CardNetwork classifies a card number into the scheme that issued it.
// It is always derived from the card number, never stored on its own.
type CardNetwork string

const (
	NetworkVisa       CardNetwork = "Visa"
	NetworkMasterCard CardNetwork = "MasterCard"
	NetworkAmex       CardNetwork = "American Express"
	NetworkDiscover   CardNetwork = "Discover"
	NetworkUnknown    CardNetwork = "Unknown"
)

// SessionStatus is the lifecycle state of the payment session.
type SessionStatus string

const (
	StatusIdle           SessionStatus = "idle"
	StatusDetailsPending SessionStatus = "details_pending"
	StatusAmountPending  SessionStatus = "amount_pending"
	StatusProcessing     SessionStatus = "processing"
	StatusSuccess        SessionStatus = "success"
	StatusError          SessionStatus = "error"
)

// PaymentInput holds the card details captured from the user. The amount is
// nil until the confirmation phase supplies one. Only the session mutates
// it, and the full card number never leaves the session boundary.
type PaymentInput struct {
	CardNumber string   `json:"card_number"`
	ExpiryDate string   `json:"expiry_date"`
	CVV        string   `json:"cvv"`
	Amount     *float64 `json:"amount,omitempty"`
}

// LastFour returns the final four digits of the card number, the only part
// of it that is ever persisted.
func (p PaymentInput) LastFour() string {
	if len(p.CardNumber) <= 4 {
		return p.CardNumber
	}
	return p.CardNumber[len(p.CardNumber)-4:]
}
