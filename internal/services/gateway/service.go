// Package gateway submits confirmed payments to the ledger store.
package gateway

import (
	"context"
	"fmt"

	"github.com/R0PPER/Paymento/internal/models"
	"github.com/R0PPER/Paymento/internal/repositories"
	"github.com/R0PPER/Paymento/internal/validation"
)

type Service struct {
	ledger repositories.LedgerStore
}

// NewService creates a new transaction gateway
func NewService(ledger repositories.LedgerStore) *Service {
	if ledger == nil {
		panic("ledger is required")
	}
	return &Service{ledger: ledger}
}

// Submit records a fully captured payment and returns the refreshed
// transaction list. The input is re-validated before anything is written,
// so a caller that skipped validation still cannot reach the ledger with
// bad data. There are no automatic retries.
func (s *Service) Submit(ctx context.Context, input models.PaymentInput) ([]models.Transaction, error) {
	if input.Amount == nil {
		return nil, fmt.Errorf("%w: amount is required", ErrInvalidPayment)
	}
	if res := validation.PaymentDetails(input); !res.Valid {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPayment, res.Reason)
	}

	record := &models.Transaction{
		MaskedCardNumber: input.LastFour(),
		ExpiryDate:       input.ExpiryDate,
		Amount:           *input.Amount,
		Status:           models.TransactionStatusCompleted,
	}
	if _, err := s.ledger.Append(ctx, record); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAppendFailed, err)
	}

	txs, err := s.ledger.ListOrdered(ctx)
	if err != nil {
		// The append is committed at this point; only the refresh failed.
		return nil, fmt.Errorf("%w: %v", ErrHistoryUnavailable, err)
	}
	return txs, nil
}
