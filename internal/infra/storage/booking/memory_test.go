package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wainainajnr/slotallocation/internal/domain"
)

func TestMemoryRepository_CreateAndList(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Booking{
		Day: "2025-01-06", Hour: "09", StudentName: "Alice",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	bookings, err := repo.ListByDay(ctx, "2025-01-06")
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "Alice", bookings[0].StudentName)

	// Другой день пуст
	other, err := repo.ListByDay(ctx, "2025-01-07")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestMemoryRepository_DuplicateRejected(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.Booking{
		Day: "2025-01-06", Hour: "09", StudentName: "Alice",
	})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &domain.Booking{
		Day: "2025-01-06", Hour: "09", StudentName: "Alice",
	})
	assert.ErrorIs(t, err, ErrDuplicateBooking)
}

func TestMemoryRepository_ListOrderedByHour(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	for _, hour := range []string{"15", "07", "10"} {
		_, err := repo.Create(ctx, &domain.Booking{
			Day: "2025-01-06", Hour: hour, StudentName: "Alice",
		})
		require.NoError(t, err)
	}

	bookings, err := repo.ListByDay(ctx, "2025-01-06")
	require.NoError(t, err)
	require.Len(t, bookings, 3)
	assert.Equal(t, "07", bookings[0].Hour)
	assert.Equal(t, "10", bookings[1].Hour)
	assert.Equal(t, "15", bookings[2].Hour)
}

func TestMemoryRepository_Delete(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.Booking{
		Day: "2025-01-06", Hour: "09", StudentName: "Alice",
	})
	require.NoError(t, err)

	removed, err := repo.Delete(ctx, "2025-01-06", "09", "Alice")
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)

	// Повторное удаление - no-op
	removed, err = repo.Delete(ctx, "2025-01-06", "09", "Alice")
	require.NoError(t, err)
	assert.EqualValues(t, 0, removed)
}
