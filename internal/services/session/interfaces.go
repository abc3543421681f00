package session

import (
	"context"

	"github.com/R0PPER/Paymento/internal/models"
)

// Presenter receives lifecycle notifications from the session. It must not
// mutate session state; user actions come back through the session's entry
// points.
type Presenter interface {
	PhaseChanged(status models.SessionStatus)
	HistoryUpdated(transactions []models.Transaction)
	Failed(reason string)
}

// Gateway submits a confirmed payment and returns the refreshed
// transaction list.
type Gateway interface {
	Submit(ctx context.Context, input models.PaymentInput) ([]models.Transaction, error)
}

// History is the process-local mirror of the ledger contents.
type History interface {
	Set(transactions []models.Transaction)
	Refresh(ctx context.Context) ([]models.Transaction, error)
}
