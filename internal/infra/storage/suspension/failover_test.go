package suspension

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// erroringStorage возвращает одну и ту же ошибку на любую операцию
type erroringStorage struct {
	err error
}

func (s erroringStorage) ListByDay(ctx context.Context, day string) ([]string, error) {
	return nil, s.err
}

func (s erroringStorage) Add(ctx context.Context, day, hour string) error {
	return s.err
}

func (s erroringStorage) Remove(ctx context.Context, day, hour string) error {
	return s.err
}

type testLogger struct{}

func (testLogger) Info(format string, v ...interface{})  {}
func (testLogger) Warn(format string, v ...interface{})  {}
func (testLogger) Error(format string, v ...interface{}) {}

func TestFailoverStorage_FallsBackOnConnectionLoss(t *testing.T) {
	fallback := NewMemoryRepository()
	store := NewFailoverStorage(erroringStorage{err: driver.ErrBadConn}, fallback, testLogger{})
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, "2025-01-06", "14"))

	hours, err := store.ListByDay(ctx, "2025-01-06")
	require.NoError(t, err)
	assert.Equal(t, []string{"14"}, hours)

	require.NoError(t, store.Remove(ctx, "2025-01-06", "14"))

	hours, err = store.ListByDay(ctx, "2025-01-06")
	require.NoError(t, err)
	assert.Empty(t, hours)
}

func TestFailoverStorage_SerializationFailurePropagates(t *testing.T) {
	// Serialization failure должен дойти до менеджера транзакций,
	// а не подменить состояние приостановок пустым in-memory множеством
	wrapped := fmt.Errorf("%w: ListByDay - execute query: %w",
		ErrExecQuery, &pq.Error{Code: "40001"})

	fallback := NewMemoryRepository()
	store := NewFailoverStorage(erroringStorage{err: wrapped}, fallback, testLogger{})

	_, err := store.ListByDay(context.Background(), "2025-01-06")
	require.Error(t, err)

	var pqErr *pq.Error
	require.ErrorAs(t, err, &pqErr)
	assert.Equal(t, pq.ErrorCode("40001"), pqErr.Code)

	// Add с не-connectivity ошибкой тоже не уходит в память
	require.Error(t, store.Add(context.Background(), "2025-01-06", "14"))

	hours, err := fallback.ListByDay(context.Background(), "2025-01-06")
	require.NoError(t, err)
	assert.Empty(t, hours)
}

func TestShouldFailover(t *testing.T) {
	assert.True(t, shouldFailover(driver.ErrBadConn))
	assert.True(t, shouldFailover(&pq.Error{Code: "08001"}))
	assert.False(t, shouldFailover(&pq.Error{Code: "40001"}))
	assert.False(t, shouldFailover(errors.New("boom")))
}
