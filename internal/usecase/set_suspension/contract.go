package set_suspension

import (
	"context"

	"github.com/Wainainajnr/slotallocation/internal/domain"
)

// BookingStorage интерфейс хранилища бронирований
type BookingStorage interface {
	ListByDay(ctx context.Context, day string) ([]*domain.Booking, error)
}

// SuspensionStorage интерфейс хранилища приостановок
type SuspensionStorage interface {
	ListByDay(ctx context.Context, day string) ([]string, error)
	Add(ctx context.Context, day, hour string) error
	Remove(ctx context.Context, day, hour string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
