package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/R0PPER/Paymento/internal/models"
	"github.com/R0PPER/Paymento/internal/services/gateway"
	"github.com/R0PPER/Paymento/internal/validation"
)

// Service is the payment session. One instance coordinates one capture
// flow at a time; construct it once and share it by reference.
type Service struct {
	mu          sync.Mutex
	input       models.PaymentInput
	status      models.SessionStatus
	errorResume models.SessionStatus // where DismissError returns to

	gateway   Gateway
	history   History
	presenter Presenter
	config    Config

	confirmCancel context.CancelFunc
}

// NewService creates a new payment session
func NewService(gw Gateway, hist History, presenter Presenter, config Config) *Service {
	if gw == nil {
		panic("gateway is required")
	}
	if hist == nil {
		panic("history is required")
	}
	if presenter == nil {
		panic("presenter is required")
	}
	if config.ConfirmationDelay == 0 {
		config.ConfirmationDelay = DefaultConfirmationDelay
	}
	return &Service{
		status:      models.StatusIdle,
		errorResume: models.StatusIdle,
		gateway:     gw,
		history:     hist,
		presenter:   presenter,
		config:      config,
	}
}

// Status returns the current lifecycle state.
func (s *Service) Status() models.SessionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// SubmitDetails starts a capture flow with the card number, expiry date
// and CVV. On validation success the session awaits an amount; on failure
// it moves to the error state and nothing is persisted.
func (s *Service) SubmitDetails(ctx context.Context, input models.PaymentInput) error {
	s.mu.Lock()
	if s.status == models.StatusProcessing {
		s.mu.Unlock()
		return ErrSubmissionInFlight
	}
	s.cancelConfirmLocked()

	input.Amount = nil // the amount has its own capture phase
	s.input = input

	res := validation.PaymentDetails(s.input)
	if !res.Valid {
		s.status = models.StatusError
		s.errorResume = models.StatusIdle
		s.mu.Unlock()

		s.emit(models.StatusDetailsPending, models.StatusError)
		s.presenter.Failed(res.Reason)
		return fmt.Errorf("%w: %s", ErrInvalidDetails, res.Reason)
	}

	s.status = models.StatusAmountPending
	s.mu.Unlock()

	s.emit(models.StatusDetailsPending, models.StatusAmountPending)
	return nil
}

// SubmitAmount confirms the amount for the retained card details and
// submits the payment. An invalid amount keeps the session awaiting an
// amount without discarding the details; a gateway failure retains them
// too so the user can retry.
func (s *Service) SubmitAmount(ctx context.Context, value string) error {
	s.mu.Lock()
	switch s.status {
	case models.StatusProcessing:
		s.mu.Unlock()
		return ErrSubmissionInFlight
	case models.StatusAmountPending:
	default:
		s.mu.Unlock()
		return ErrNotAwaitingAmount
	}

	if !validation.Amount(value) {
		s.mu.Unlock()
		s.presenter.Failed(validation.MsgInvalidAmount)
		return ErrInvalidAmount
	}

	amount, _ := strconv.ParseFloat(strings.TrimSpace(value), 64)
	s.input.Amount = &amount
	s.status = models.StatusProcessing
	input := s.input
	s.mu.Unlock()

	s.emit(models.StatusProcessing)

	txs, err := s.gateway.Submit(ctx, input)
	if err != nil {
		if errors.Is(err, gateway.ErrHistoryUnavailable) {
			// The write committed; only the refresh failed. The history
			// view degrades instead of failing the payment.
			s.finishSuccess(nil)
			return nil
		}
		s.mu.Lock()
		s.status = models.StatusError
		s.errorResume = models.StatusAmountPending
		s.mu.Unlock()

		s.emit(models.StatusError)
		s.presenter.Failed(err.Error())
		return err
	}

	s.finishSuccess(txs)
	return nil
}

// CancelAmount closes the amount prompt before submission. There is no
// in-flight work to cancel; the session simply returns to idle.
func (s *Service) CancelAmount() {
	s.mu.Lock()
	if s.status != models.StatusAmountPending {
		s.mu.Unlock()
		return
	}
	s.input = models.PaymentInput{}
	s.status = models.StatusIdle
	s.mu.Unlock()

	s.emit(models.StatusIdle)
}

// DismissError acknowledges an error. A details failure returns to idle;
// a gateway failure returns to the amount prompt with the card details
// intact.
func (s *Service) DismissError() {
	s.mu.Lock()
	if s.status != models.StatusError {
		s.mu.Unlock()
		return
	}
	resume := s.errorResume
	if resume == models.StatusIdle {
		s.input = models.PaymentInput{}
	}
	s.status = resume
	s.errorResume = models.StatusIdle
	s.mu.Unlock()

	s.emit(resume)
}

// Reset returns the session to idle from any state and cancels a pending
// confirmation task so no stale refresh fires into the next session.
func (s *Service) Reset() {
	s.mu.Lock()
	s.cancelConfirmLocked()
	s.input = models.PaymentInput{}
	s.status = models.StatusIdle
	s.errorResume = models.StatusIdle
	s.mu.Unlock()

	s.emit(models.StatusIdle)
}

func (s *Service) finishSuccess(txs []models.Transaction) {
	s.mu.Lock()
	s.status = models.StatusSuccess
	ctx, cancel := context.WithCancel(context.Background())
	s.confirmCancel = cancel
	delay := s.config.ConfirmationDelay
	s.mu.Unlock()

	if txs != nil {
		s.history.Set(txs)
	}
	s.emit(models.StatusSuccess)
	if txs != nil {
		s.presenter.HistoryUpdated(txs)
	}

	go s.awaitConfirmation(ctx, delay)
}

// awaitConfirmation waits out the confirmation period, then clears the
// session and refreshes history. Cancellation wins over the timer.
func (s *Service) awaitConfirmation(ctx context.Context, delay time.Duration) {
	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return
	case <-t.C:
	}

	s.mu.Lock()
	if s.status != models.StatusSuccess {
		s.mu.Unlock()
		return
	}
	s.input = models.PaymentInput{}
	s.status = models.StatusIdle
	cancel := s.confirmCancel
	s.confirmCancel = nil
	s.mu.Unlock()

	s.emit(models.StatusIdle)
	if txs, err := s.history.Refresh(ctx); err == nil {
		s.presenter.HistoryUpdated(txs)
	}
	if cancel != nil {
		cancel()
	}
}

func (s *Service) cancelConfirmLocked() {
	if s.confirmCancel != nil {
		s.confirmCancel()
		s.confirmCancel = nil
	}
}

func (s *Service) emit(phases ...models.SessionStatus) {
	for _, phase := range phases {
		s.presenter.PhaseChanged(phase)
	}
}
