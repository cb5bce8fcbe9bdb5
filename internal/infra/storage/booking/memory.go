package booking

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Wainainajnr/slotallocation/internal/domain"
)

// MemoryRepository in-memory хранилище бронирований
// Используется как деградированный режим при недоступности PostgreSQL
// и как фейк в тестах. Семантика идентична Postgres-репозиторию
type MemoryRepository struct {
	mu     sync.RWMutex
	byDay  map[string][]*domain.Booking
	nextID int64
}

// NewMemoryRepository создает пустое in-memory хранилище
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byDay:  make(map[string][]*domain.Booking),
		nextID: 1,
	}
}

// ListByDay возвращает копию списка бронирований за день, отсортированную по часу
func (r *MemoryRepository) ListByDay(ctx context.Context, day string) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.byDay[day]
	bookings := make([]*domain.Booking, 0, len(stored))
	for _, b := range stored {
		copied := *b
		bookings = append(bookings, &copied)
	}

	sort.SliceStable(bookings, func(i, j int) bool {
		if bookings[i].Hour != bookings[j].Hour {
			return bookings[i].Hour < bookings[j].Hour
		}
		return bookings[i].ID < bookings[j].ID
	})

	return bookings, nil
}

// Create добавляет бронирование, отклоняя дубликат (day, hour, student_name)
func (r *MemoryRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.byDay[booking.Day] {
		if b.Hour == booking.Hour && b.StudentName == booking.StudentName {
			return nil, ErrDuplicateBooking
		}
	}

	booking.ID = r.nextID
	r.nextID++
	booking.CreatedAt = time.Now()

	stored := *booking
	r.byDay[booking.Day] = append(r.byDay[booking.Day], &stored)

	return booking, nil
}

// Delete удаляет бронирование, если оно есть; отсутствие строкой не считается
func (r *MemoryRepository) Delete(ctx context.Context, day, hour, studentName string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := r.byDay[day]
	kept := stored[:0]
	var removed int64

	for _, b := range stored {
		if b.Hour == hour && b.StudentName == studentName {
			removed++
			continue
		}
		kept = append(kept, b)
	}

	r.byDay[day] = kept

	return removed, nil
}
