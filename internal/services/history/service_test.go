package history

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/R0PPER/Paymento/internal/models"
	"github.com/R0PPER/Paymento/internal/repositories"
)

type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) Append(ctx context.Context, tx *models.Transaction) (string, error) {
	args := m.Called(ctx, tx)
	return args.String(0), args.Error(1)
}

func (m *MockLedger) ListOrdered(ctx context.Context) ([]models.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Transaction), args.Error(1)
}

func (m *MockLedger) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLedger) DeleteOne(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockViews struct {
	mock.Mock
}

func (m *MockViews) RenderSpinner()                               { m.Called() }
func (m *MockViews) RenderError(message string)                   { m.Called(message) }
func (m *MockViews) RenderList(transactions []models.Transaction) { m.Called(transactions) }

func TestHistory_Refresh(t *testing.T) {
	t.Run("caches and renders the fetched list", func(t *testing.T) {
		ledger := new(MockLedger)
		views := new(MockViews)
		listed := []models.Transaction{{ID: "a"}, {ID: "b"}}

		ledger.On("ListOrdered", mock.Anything).Return(listed, nil)
		views.On("RenderSpinner").Return()
		views.On("RenderList", listed).Return()

		svc := NewService(ledger)
		svc.Attach(views, views, views)

		txs, err := svc.Refresh(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, listed, txs)
		assert.Equal(t, listed, svc.Transactions())
		assert.NoError(t, svc.LastError())

		views.AssertExpectations(t)
	})

	t.Run("failed fetch keeps the cache and degrades to the error view", func(t *testing.T) {
		ledger := new(MockLedger)
		views := new(MockViews)
		cached := []models.Transaction{{ID: "a"}}

		ledger.On("ListOrdered", mock.Anything).Return(cached, nil).Once()
		ledger.On("ListOrdered", mock.Anything).Return(nil, errors.New("store down")).Once()
		views.On("RenderSpinner").Return()
		views.On("RenderList", cached).Return()
		views.On("RenderError", MsgLoadFailed).Return()

		svc := NewService(ledger)
		svc.Attach(views, views, views)

		_, err := svc.Refresh(context.Background())
		assert.NoError(t, err)

		_, err = svc.Refresh(context.Background())
		assert.ErrorIs(t, err, ErrRefreshFailed)
		assert.Equal(t, cached, svc.Transactions(), "cache survives a failed refresh")
		assert.ErrorIs(t, svc.LastError(), ErrRefreshFailed)

		views.AssertExpectations(t)
	})
}

func TestHistory_Clear(t *testing.T) {
	t.Run("empties the cache after a confirmed delete", func(t *testing.T) {
		ledger := new(MockLedger)
		ledger.On("DeleteAll", mock.Anything).Return(nil)

		svc := NewService(ledger)
		svc.Set([]models.Transaction{{ID: "a"}})

		assert.NoError(t, svc.Clear(context.Background()))
		assert.Empty(t, svc.Transactions())
		assert.NoError(t, svc.LastError())
	})

	t.Run("partial failure surfaces the survivors instead of an empty list", func(t *testing.T) {
		ledger := new(MockLedger)
		survivor := []models.Transaction{{ID: "b"}}
		partial := &repositories.PartialDeleteError{Failed: []string{"b"}, Total: 3}

		ledger.On("DeleteAll", mock.Anything).Return(partial)
		ledger.On("ListOrdered", mock.Anything).Return(survivor, nil)

		svc := NewService(ledger)
		svc.Set([]models.Transaction{{ID: "a"}, {ID: "b"}, {ID: "c"}})

		err := svc.Clear(context.Background())

		var got *repositories.PartialDeleteError
		assert.ErrorAs(t, err, &got)
		assert.Equal(t, []string{"b"}, got.Failed)
		assert.Equal(t, survivor, svc.Transactions(), "cache reflects what actually survived")
		assert.ErrorAs(t, svc.LastError(), &got)
	})

	t.Run("total failure is distinct from success", func(t *testing.T) {
		ledger := new(MockLedger)
		ledger.On("DeleteAll", mock.Anything).Return(errors.New("store down"))

		svc := NewService(ledger)
		svc.Set([]models.Transaction{{ID: "a"}})

		err := svc.Clear(context.Background())
		assert.ErrorIs(t, err, ErrClearFailed)
		assert.NotEmpty(t, svc.Transactions(), "cache is not silently emptied")
	})
}

func TestHistory_Remove(t *testing.T) {
	ledger := new(MockLedger)
	remaining := []models.Transaction{{ID: "b"}}

	ledger.On("DeleteOne", mock.Anything, "a").Return(nil)
	ledger.On("ListOrdered", mock.Anything).Return(remaining, nil)

	svc := NewService(ledger)
	assert.NoError(t, svc.Remove(context.Background(), "a"))
	assert.Equal(t, remaining, svc.Transactions())

	ledger.AssertExpectations(t)
}
