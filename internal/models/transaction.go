package models

import "time"

// Transaction statuses
const (
	TransactionStatusCompleted = "completed"
)

// Transaction is a ledger record of a captured payment. It is immutable
// once written; the only mutation the store allows is deletion. The card
// number is truncated to its last four digits before the record is built.
type Transaction struct {
	ID               string    `json:"id" gorm:"primarykey"`
	MaskedCardNumber string    `json:"card_number" gorm:"not null"`
	ExpiryDate       string    `json:"expiry_date" gorm:"not null"`
	Amount           float64   `json:"amount" gorm:"not null"`
	Status           string    `json:"status" gorm:"not null;default:'completed'"`
	CreatedAt        time.Time `json:"created_at"`
}
