package get_daily_slots

import (
	"context"

	"github.com/Wainainajnr/slotallocation/internal/domain"
)

type SlotsService interface {
	GetDailySlots(ctx context.Context, day string) ([]domain.Slot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
