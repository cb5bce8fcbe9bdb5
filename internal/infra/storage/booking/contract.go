package booking

import (
	"context"

	"github.com/Wainainajnr/slotallocation/internal/domain"
	"github.com/Wainainajnr/slotallocation/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// Storage контракт хранилища бронирований
// Реализуется Postgres-репозиторием, in-memory репозиторием и failover-обёрткой
type Storage interface {
	ListByDay(ctx context.Context, day string) ([]*domain.Booking, error)
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	Delete(ctx context.Context, day, hour, studentName string) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
