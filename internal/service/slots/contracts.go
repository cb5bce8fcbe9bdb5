package slots

import (
	"context"

	"github.com/Wainainajnr/slotallocation/internal/domain"
)

// BookingStorage интерфейс хранилища бронирований
type BookingStorage interface {
	ListByDay(ctx context.Context, day string) ([]*domain.Booking, error)
	Delete(ctx context.Context, day, hour, studentName string) (int64, error)
}

// SuspensionStorage интерфейс хранилища приостановок
type SuspensionStorage interface {
	ListByDay(ctx context.Context, day string) ([]string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
