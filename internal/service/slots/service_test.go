package slots

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wainainajnr/slotallocation/internal/domain"
	bookingRepo "github.com/Wainainajnr/slotallocation/internal/infra/storage/booking"
	suspensionRepo "github.com/Wainainajnr/slotallocation/internal/infra/storage/suspension"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func newTestService() (*Service, *bookingRepo.MemoryRepository, *suspensionRepo.MemoryRepository) {
	bookings := bookingRepo.NewMemoryRepository()
	suspensions := suspensionRepo.NewMemoryRepository()
	return NewService(bookings, suspensions, noopLogger{}), bookings, suspensions
}

func TestGetDailySlots_EmptyDay(t *testing.T) {
	svc, _, _ := newTestService()

	slots, err := svc.GetDailySlots(context.Background(), "2025-01-06")

	require.NoError(t, err)
	require.Len(t, slots, len(domain.BookableHours))
	for _, slot := range slots {
		assert.Equal(t, domain.SlotCapacity, slot.Available)
		assert.False(t, slot.Suspended)
	}
}

func TestGetDailySlots_ReflectsState(t *testing.T) {
	svc, bookings, suspensions := newTestService()
	ctx := context.Background()

	_, err := bookings.Create(ctx, &domain.Booking{
		Day: "2025-01-06", Hour: "07", StudentName: "Alice",
	})
	require.NoError(t, err)
	require.NoError(t, suspensions.Add(ctx, "2025-01-06", "15"))

	slots, err := svc.GetDailySlots(ctx, "2025-01-06")
	require.NoError(t, err)

	for _, slot := range slots {
		switch slot.Hour {
		case "07":
			assert.Equal(t, 1, slot.Booked)
			assert.Equal(t, 3, slot.Available)
			assert.Equal(t, []string{"Alice"}, slot.Students)
		case "15":
			assert.True(t, slot.Suspended)
		default:
			assert.Equal(t, 0, slot.Booked)
		}
	}
}

func TestGetDailySlots_InvalidDay(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.GetDailySlots(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.GetDailySlots(context.Background(), "06-01-2025")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeleteBooking_RemovesAndRecomputes(t *testing.T) {
	svc, bookings, _ := newTestService()
	ctx := context.Background()

	_, err := bookings.Create(ctx, &domain.Booking{
		Day: "2025-01-06", Hour: "09", StudentName: "Alice",
	})
	require.NoError(t, err)

	slots, err := svc.DeleteBooking(ctx, "2025-01-06", "09", "Alice")
	require.NoError(t, err)

	for _, slot := range slots {
		if slot.Hour == "09" {
			assert.Equal(t, 0, slot.Booked)
			assert.Empty(t, slot.Students)
		}
	}
}

func TestDeleteBooking_MissingIsNoop(t *testing.T) {
	svc, _, _ := newTestService()

	// Удаление несуществующей записи - успех, а не ошибка
	slots, err := svc.DeleteBooking(context.Background(), "2025-01-06", "09", "Ghost")

	require.NoError(t, err)
	require.Len(t, slots, len(domain.BookableHours))
}

func TestDeleteBooking_Validation(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.DeleteBooking(ctx, "", "09", "Alice")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.DeleteBooking(ctx, "2025-01-06", "", "Alice")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.DeleteBooking(ctx, "2025-01-06", "09", "  ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
