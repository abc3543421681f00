package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/R0PPER/Paymento/internal/models"
)

// Storage keys
const (
	transactionPrefix = "transaction:"
	transactionIndex  = "transactions:index"
)

// NewRedisClient builds a redis client from connection settings.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// RedisLedger stores each transaction as a JSON value keyed by ID, with a
// sorted-set index scored by creation time for ordered listing.
type RedisLedger struct {
	client *redis.Client
}

func NewRedisLedger(client *redis.Client) *RedisLedger {
	return &RedisLedger{client: client}
}

func (l *RedisLedger) Append(ctx context.Context, tx *models.Transaction) (string, error) {
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	tx.CreatedAt = time.Now().UTC()

	data, err := json.Marshal(tx)
	if err != nil {
		return "", fmt.Errorf("failed to marshal transaction: %w", err)
	}
	if err := l.client.Set(ctx, transactionPrefix+tx.ID, data, 0).Err(); err != nil {
		return "", fmt.Errorf("failed to store transaction: %w", err)
	}
	err = l.client.ZAdd(ctx, transactionIndex, redis.Z{
		Score:  float64(tx.CreatedAt.UnixNano()),
		Member: tx.ID,
	}).Err()
	if err != nil {
		return "", fmt.Errorf("failed to index transaction: %w", err)
	}
	return tx.ID, nil
}

func (l *RedisLedger) ListOrdered(ctx context.Context) ([]models.Transaction, error) {
	ids, err := l.client.ZRevRange(ctx, transactionIndex, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read transaction index: %w", err)
	}

	txs := make([]models.Transaction, 0, len(ids))
	for _, id := range ids {
		data, err := l.client.Get(ctx, transactionPrefix+id).Bytes()
		if errors.Is(err, redis.Nil) {
			// Index entry whose payload was already deleted.
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load transaction %s: %w", id, err)
		}
		var tx models.Transaction
		if err := json.Unmarshal(data, &tx); err != nil {
			return nil, fmt.Errorf("failed to decode transaction %s: %w", id, err)
		}
		txs = append(txs, tx)
	}
	sortNewestFirst(txs)
	return txs, nil
}

func (l *RedisLedger) DeleteAll(ctx context.Context) error {
	ids, err := l.client.ZRevRange(ctx, transactionIndex, 0, -1).Result()
	if err != nil {
		return fmt.Errorf("failed to read transaction index: %w", err)
	}

	// Independent per-record deletes, fanned out like the store allows.
	// A record that fails to delete is collected, not retried.
	var (
		mu     sync.Mutex
		failed []string
	)
	g := new(errgroup.Group)
	g.SetLimit(8)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			if err := l.client.Del(ctx, transactionPrefix+id).Err(); err != nil {
				mu.Lock()
				failed = append(failed, id)
				mu.Unlock()
				return nil
			}
			l.client.ZRem(ctx, transactionIndex, id)
			return nil
		})
	}
	_ = g.Wait()

	if len(failed) > 0 {
		return &PartialDeleteError{Failed: failed, Total: len(ids)}
	}
	return nil
}

func (l *RedisLedger) DeleteOne(ctx context.Context, id string) error {
	n, err := l.client.Del(ctx, transactionPrefix+id).Result()
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if n == 0 {
		return ErrRecordNotFound
	}
	return l.client.ZRem(ctx, transactionIndex, id).Err()
}
