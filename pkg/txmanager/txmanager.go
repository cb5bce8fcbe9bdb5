package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"github.com/lib/pq"

	"github.com/Wainainajnr/slotallocation/pkg/dbmetrics"
)

// maxAttempts число попыток при serialization failure
const maxAttempts = 3

// pq коды ошибок, после которых транзакцию можно повторить
const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// TransactionManager менеджер сериализуемых транзакций над dbmetrics.DB
type TransactionManager struct {
	db *dbmetrics.DB

	// degraded защищает check-then-act последовательности, когда БД
	// недоступна и fn выполняется без транзакции поверх in-memory стора
	degraded sync.Mutex
}

// NewTransactionManager создает менеджер транзакций
func NewTransactionManager(db *dbmetrics.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable выполняет fn внутри транзакции с уровнем SERIALIZABLE.
// Активная транзакция передаётся вниз через контекст (dbmetrics.GetExecutor).
// При serialization failure транзакция повторяется до maxAttempts раз.
// Если БД недоступна (BeginTx не удался), fn выполняется без транзакции
// под процессным мьютексом — репозитории в этом режиме уходят в in-memory fallback
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

// isRetryable проверяет, является ли ошибка serialization failure / deadlock
func isRetryable(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == codeSerializationFailure || pqErr.Code == codeDeadlockDetected
	}
	return false
}
