package suspension

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepository in-memory хранилище приостановок
// Деградированный режим при недоступности PostgreSQL и фейк в тестах
type MemoryRepository struct {
	mu    sync.RWMutex
	byDay map[string]map[string]bool
}

// NewMemoryRepository создает пустое in-memory хранилище
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byDay: make(map[string]map[string]bool),
	}
}

// ListByDay возвращает отсортированное множество приостановленных часов за день
func (r *MemoryRepository) ListByDay(ctx context.Context, day string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	hours := make([]string, 0, len(r.byDay[day]))
	for hour := range r.byDay[day] {
		hours = append(hours, hour)
	}
	sort.Strings(hours)

	return hours, nil
}

// Add добавляет час в множество приостановленных (идемпотентно)
func (r *MemoryRepository) Add(ctx context.Context, day, hour string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.byDay[day] == nil {
		r.byDay[day] = make(map[string]bool)
	}
	r.byDay[day][hour] = true

	return nil
}

// Remove убирает час из множества приостановленных (идемпотентно)
func (r *MemoryRepository) Remove(ctx context.Context, day, hour string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byDay[day], hour)

	return nil
}
