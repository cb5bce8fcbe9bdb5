package simpletxmanager

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"github.com/lib/pq"

	"github.com/Wainainajnr/slotallocation/pkg/dbmetrics"
)

const maxAttempts = 3

const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// TransactionManager вариант менеджера транзакций без метрик, над чистым *sql.DB
// Используется, когда metrics.enabled = false
type TransactionManager struct {
	db       *sql.DB
	degraded sync.Mutex
}

// NewTransactionManager создает менеджер транзакций
func NewTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable выполняет fn внутри SERIALIZABLE транзакции,
// семантика идентична pkg/txmanager
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
		if err != nil {
			m.degraded.Lock()
			defer m.degraded.Unlock()
			return fn(ctx)
		}

		err = fn(dbmetrics.WithTransaction(ctx, tx))
		if err != nil {
			tx.Rollback()
			if isRetryable(err) {
				lastErr = err
				continue
			}
			return err
		}

		if err := tx.Commit(); err != nil {
			if isRetryable(err) {
				lastErr = err
				continue
			}
			return err
		}

		return nil
	}

	return lastErr
}

func isRetryable(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == codeSerializationFailure || pqErr.Code == codeDeadlockDetected
	}
	return false
}
