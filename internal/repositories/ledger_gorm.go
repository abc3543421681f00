package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/R0PPER/Paymento/internal/models"
)

// GormLedger persists transactions in Postgres through gorm.
type GormLedger struct {
	db *gorm.DB
}

// NewGormLedger opens a Postgres backed ledger and migrates the schema.
func NewGormLedger(dsn string) (*GormLedger, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	if err := db.AutoMigrate(&models.Transaction{}); err != nil {
		return nil, fmt.Errorf("failed to migrate transactions: %w", err)
	}
	return &GormLedger{db: db}, nil
}

// NewGormLedgerWithDB wraps an existing gorm connection.
func NewGormLedgerWithDB(db *gorm.DB) *GormLedger {
	return &GormLedger{db: db}
}

func (l *GormLedger) Append(ctx context.Context, tx *models.Transaction) (string, error) {
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	if err := l.db.WithContext(ctx).Create(tx).Error; err != nil {
		return "", fmt.Errorf("failed to append transaction: %w", err)
	}
	return tx.ID, nil
}

func (l *GormLedger) ListOrdered(ctx context.Context) ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := l.db.WithContext(ctx).Order("created_at DESC").Find(&txs).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	sortNewestFirst(txs)
	return txs, nil
}

func (l *GormLedger) DeleteAll(ctx context.Context) error {
	txs, err := l.ListOrdered(ctx)
	if err != nil {
		return err
	}

	// Records are deleted one by one so a partial failure can name the
	// survivors.
	var failed []string
	for _, tx := range txs {
		if err := l.db.WithContext(ctx).Delete(&models.Transaction{}, "id = ?", tx.ID).Error; err != nil {
			failed = append(failed, tx.ID)
		}
	}
	if len(failed) > 0 {
		return &PartialDeleteError{Failed: failed, Total: len(txs)}
	}
	return nil
}

func (l *GormLedger) DeleteOne(ctx context.Context, id string) error {
	res := l.db.WithContext(ctx).Delete(&models.Transaction{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
