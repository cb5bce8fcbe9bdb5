package booking

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"

	"github.com/lib/pq"

	"github.com/Wainainajnr/slotallocation/internal/domain"
)

// FailoverStorage обёртка над двумя хранилищами: основным (PostgreSQL)
// и резервным (in-memory). При потере соединения с основным операция
// один раз повторяется на резервном — сервис продолжает отвечать при
// недоступной БД. Прочие ошибки (бизнес-ошибки, serialization failure)
// в память не уводятся, а отдаются наверх: serialization failure обязан
// дойти до менеджера транзакций и вызвать повтор
type FailoverStorage struct {
	primary  Storage
	fallback Storage
	logger   Logger
}

// NewFailoverStorage создает failover-обёртку хранилища бронирований
func NewFailoverStorage(primary, fallback Storage, logger Logger) *FailoverStorage {
	return &FailoverStorage{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// ListByDay получает бронирования за день, при потере соединения - из памяти
func (s *FailoverStorage) ListByDay(ctx context.Context, day string) ([]*domain.Booking, error) {
	bookings, err := s.primary.ListByDay(ctx, day)
	if err != nil {
		if !shouldFailover(err) {
			return nil, err
		}
		s.logger.Warn("booking.failover: ListByDay day=%s falling back to memory: %v", day, err)
		return s.fallback.ListByDay(ctx, day)
	}
	return bookings, nil
}

// Create создает бронирование, при потере соединения - в памяти
func (s *FailoverStorage) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	created, err := s.primary.Create(ctx, booking)
	if err != nil {
		if !shouldFailover(err) {
			return nil, err
		}
		s.logger.Warn("booking.failover: Create day=%s hour=%s falling back to memory: %v",
			booking.Day, booking.Hour, err)
		return s.fallback.Create(ctx, booking)
	}
	return created, nil
}

// Delete удаляет бронирование, при потере соединения - из памяти
func (s *FailoverStorage) Delete(ctx context.Context, day, hour, studentName string) (int64, error) {
	removed, err := s.primary.Delete(ctx, day, hour, studentName)
	if err != nil {
		if !shouldFailover(err) {
			return 0, err
		}
		s.logger.Warn("booking.failover: Delete day=%s hour=%s falling back to memory: %v", day, hour, err)
		return s.fallback.Delete(ctx, day, hour, studentName)
	}
	return removed, nil
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
