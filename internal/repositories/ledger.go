// Package repositories provides the ledger store: the persistence surface
// for transaction records, with Postgres and Redis backed implementations.
package repositories

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/R0PPER/Paymento/internal/models"
)

// Storage errors
var (
	ErrRecordNotFound = errors.New("transaction not found")
)

// LedgerStore is the remote collection of transaction records. Append
// never partially writes a record, ListOrdered returns newest first, and
// DeleteAll reports the records it could not remove instead of pretending
// the ledger is empty.
type LedgerStore interface {
	Append(ctx context.Context, tx *models.Transaction) (string, error)
	ListOrdered(ctx context.Context) ([]models.Transaction, error)
	DeleteAll(ctx context.Context) error
	DeleteOne(ctx context.Context, id string) error
}

// PartialDeleteError reports a DeleteAll that removed some records but not
// all of them. Callers must not treat the ledger as empty when they see it.
type PartialDeleteError struct {
	Failed []string // IDs of the records that survived
	Total  int      // number of records targeted
}

func (e *PartialDeleteError) Error() string {
	return fmt.Sprintf("deleted %d of %d transactions, failed: %s",
		e.Total-len(e.Failed), e.Total, strings.Join(e.Failed, ", "))
}

// sortNewestFirst orders transactions by creation time descending. Records
// without a resolved store timestamp take a local clock reading so a
// just-appended record stays at the top of the history view.
func sortNewestFirst(txs []models.Transaction) {
	now := time.Now()
	createdAt := func(tx models.Transaction) time.Time {
		if tx.CreatedAt.IsZero() {
			return now
		}
		return tx.CreatedAt
	}
	sort.SliceStable(txs, func(i, j int) bool {
		return createdAt(txs[i]).After(createdAt(txs[j]))
	})
}
