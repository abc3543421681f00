// Package history mirrors the ledger contents for the presentation layer.
package history

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/R0PPER/Paymento/internal/models"
	"github.com/R0PPER/Paymento/internal/repositories"
)

// Service is the process-local cache of the last fetched transaction list.
// It is refreshed on initial load, after a successful payment and after a
// clear; it never invents contents of its own.
type Service struct {
	mu      sync.RWMutex
	ledger  repositories.LedgerStore
	txs     []models.Transaction
	lastErr error

	spinner SpinnerRenderer
	errView ErrorRenderer
	list    ListRenderer
}

// NewService creates a new history cache backed by the given ledger.
func NewService(ledger repositories.LedgerStore) *Service {
	if ledger == nil {
		panic("ledger is required")
	}
	return &Service{ledger: ledger}
}

// Attach wires the rendering capabilities. Any of them may be nil.
func (s *Service) Attach(spinner SpinnerRenderer, errView ErrorRenderer, list ListRenderer) {
	s.spinner = spinner
	s.errView = errView
	s.list = list
}

// Refresh fetches the ordered list from the ledger and replaces the cache.
// A failed fetch leaves the cached contents untouched and degrades to the
// error view; it never blocks the payment flow.
func (s *Service) Refresh(ctx context.Context) ([]models.Transaction, error) {
	if s.spinner != nil {
		s.spinner.RenderSpinner()
	}

	txs, err := s.ledger.ListOrdered(ctx)
	if err != nil {
		wrapped := fmt.Errorf("%w: %v", ErrRefreshFailed, err)
		s.mu.Lock()
		s.lastErr = wrapped
		s.mu.Unlock()
		if s.errView != nil {
			s.errView.RenderError(MsgLoadFailed)
		}
		return nil, wrapped
	}

	s.mu.Lock()
	s.txs = txs
	s.lastErr = nil
	s.mu.Unlock()

	if s.list != nil {
		s.list.RenderList(txs)
	}
	return txs, nil
}

// Set replaces the cache with a list the caller already fetched, such as
// the one the gateway returns after an append.
func (s *Service) Set(txs []models.Transaction) {
	s.mu.Lock()
	s.txs = txs
	s.lastErr = nil
	s.mu.Unlock()

	if s.list != nil {
		s.list.RenderList(txs)
	}
}

// Transactions returns the cached list.
func (s *Service) Transactions() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Transaction, len(s.txs))
	copy(out, s.txs)
	return out
}

// LastError returns the error recorded by the most recent refresh or
// clear, or nil.
func (s *Service) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// Clear deletes every record from the ledger. The cache is emptied only
// when the store confirms every deletion; a partial failure re-lists the
// survivors and surfaces the PartialDeleteError instead of an empty view.
func (s *Service) Clear(ctx context.Context) error {
	err := s.ledger.DeleteAll(ctx)

	var partial *repositories.PartialDeleteError
	if errors.As(err, &partial) {
		if _, refreshErr := s.Refresh(ctx); refreshErr == nil {
			s.mu.Lock()
			s.lastErr = err
			s.mu.Unlock()
		}
		if s.errView != nil {
			s.errView.RenderError(err.Error())
		}
		return err
	}
	if err != nil {
		wrapped := fmt.Errorf("%w: %v", ErrClearFailed, err)
		s.mu.Lock()
		s.lastErr = wrapped
		s.mu.Unlock()
		if s.errView != nil {
			s.errView.RenderError(wrapped.Error())
		}
		return wrapped
	}

	s.mu.Lock()
	s.txs = nil
	s.lastErr = nil
	s.mu.Unlock()

	if s.list != nil {
		s.list.RenderList(nil)
	}
	return nil
}

// Remove deletes a single record and refreshes the cache.
func (s *Service) Remove(ctx context.Context, id string) error {
	if err := s.ledger.DeleteOne(ctx, id); err != nil {
		return err
	}
	_, err := s.Refresh(ctx)
	return err
}
