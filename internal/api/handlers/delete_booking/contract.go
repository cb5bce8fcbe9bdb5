package delete_booking

import (
	"context"

	"github.com/Wainainajnr/slotallocation/internal/domain"
)

type SlotsService interface {
	DeleteBooking(ctx context.Context, day, hour, studentName string) ([]domain.Slot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
