package suspension

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"

	"github.com/lib/pq"
)

// FailoverStorage обёртка над основным (PostgreSQL) и резервным (in-memory)
// хранилищами приостановок. При потере соединения с основным операция
// один раз повторяется на резервном. Прочие ошибки (включая serialization
// failure) отдаются наверх, чтобы менеджер транзакций мог повторить
type FailoverStorage struct {
	primary  Storage
	fallback Storage
	logger   Logger
}

// NewFailoverStorage создает failover-обёртку хранилища приостановок
func NewFailoverStorage(primary, fallback Storage, logger Logger) *FailoverStorage {
	return &FailoverStorage{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// ListByDay получает приостановленные часы, при потере соединения - из памяти
func (s *FailoverStorage) ListByDay(ctx context.Context, day string) ([]string, error) {
	hours, err := s.primary.ListByDay(ctx, day)
	if err != nil {
		if !shouldFailover(err) {
			return nil, err
		}
		s.logger.Warn("suspension.failover: ListByDay day=%s falling back to memory: %v", day, err)
		return s.fallback.ListByDay(ctx, day)
	}
	return hours, nil
}

// Add приостанавливает час, при потере соединения - в памяти
func (s *FailoverStorage) Add(ctx context.Context, day, hour string) error {
	if err := s.primary.Add(ctx, day, hour); err != nil {
		if !shouldFailover(err) {
			return err
		}
		s.logger.Warn("suspension.failover: Add day=%s hour=%s falling back to memory: %v", day, hour, err)
		return s.fallback.Add(ctx, day, hour)
	}
	return nil
}

// Remove снимает приостановку часа, при потере соединения - из памяти
func (s *FailoverStorage) Remove(ctx context.Context, day, hour string) error {
	if err := s.primary.Remove(ctx, day, hour); err != nil {
		if !shouldFailover(err) {
			return err
		}
		s.logger.Warn("suspension.failover: Remove day=%s hour=%s falling back to memory: %v", day, hour, err)
		return s.fallback.Remove(ctx, day, hour)
	}
	return nil
}

// shouldFailover отличает потерю соединения от ошибок самой операции.
// В память переводятся только connectivity-ошибки: плохое соединение
// драйвера, сетевые ошибки и pq класс 08 (connection exception)
func shouldFailover(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Class() == "08"
	}

	return false
}
