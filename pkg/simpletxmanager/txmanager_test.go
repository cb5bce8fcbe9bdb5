package simpletxmanager

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wainainajnr/slotallocation/pkg/dbmetrics"
)

// Минимальный фейковый драйвер: достаточно BeginTx/Commit/Rollback,
// запросы менеджер транзакций не выполняет

type fakeTx struct {
	conn *fakeConn
}

func (t *fakeTx) Commit() error {
	t.conn.commits++
	return t.conn.commitErr
}

func (t *fakeTx) Rollback() error {
	t.conn.rollbacks++
	return nil
}

type fakeConn struct {
	begins    int
	commits   int
	rollbacks int
	isolation driver.IsolationLevel
	commitErr error
}

func (c *fakeConn) Prepare(query string) (driver.Stmt, error) {
	return nil, errors.New("not implemented")
}

func (c *fakeConn) Close() error { return nil }

func (c *fakeConn) Begin() (driver.Tx, error) {
	return c.BeginTx(context.Background(), driver.TxOptions{})
}

func (c *fakeConn) BeginTx(ctx context.Context, opts driver.TxOptions) (driver.Tx, error) {
	c.begins++
	c.isolation = opts.Isolation
	return &fakeTx{conn: c}, nil
}

type fakeConnector struct {
	conn *fakeConn
	err  error
}

func (c *fakeConnector) Connect(context.Context) (driver.Conn, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.conn, nil
}

func (c *fakeConnector) Driver() driver.Driver { return fakeDriver{} }

type fakeDriver struct{}

func (fakeDriver) Open(name string) (driver.Conn, error) {
	return nil, errors.New("not implemented")
}

func newFakeDB(t *testing.T, conn *fakeConn) *sql.DB {
	t.Helper()

	db := sql.OpenDB(&fakeConnector{conn: conn})
	t.Cleanup(func() { db.Close() })
	return db
}

func TestDoSerializable_CommitsOnSuccess(t *testing.T) {
	conn := &fakeConn{}
	m := NewTransactionManager(newFakeDB(t, conn))

	calls := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		// Транзакция передаётся вниз через контекст
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, conn.begins)
	assert.Equal(t, 1, conn.commits)
	assert.Equal(t, 0, conn.rollbacks)
	assert.Equal(t, driver.IsolationLevel(sql.LevelSerializable), conn.isolation)
}

func TestDoSerializable_RetriesOnSerializationFailure(t *testing.T) {
	conn := &fakeConn{}
	m := NewTransactionManager(newFakeDB(t, conn))

	// Первая попытка проигрывает конкурентной транзакции, вторая проходит.
	// Причина сохранена в цепочке так же, как её оборачивают usecase'ы
	calls := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		if calls == 1 {
			return fmt.Errorf("%w: failed to create booking: %w",
				errors.New("create_booking: internal error"), &pq.Error{Code: "40001"})
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, conn.begins)
	assert.Equal(t, 1, conn.rollbacks)
	assert.Equal(t, 1, conn.commits)
}

func TestDoSerializable_GivesUpAfterMaxAttempts(t *testing.T) {
	conn := &fakeConn{}
	m := NewTransactionManager(newFakeDB(t, conn))

	calls := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return fmt.Errorf("boom: %w", &pq.Error{Code: "40001"})
	})

	require.Error(t, err)
	assert.Equal(t, maxAttempts, calls)
	assert.Equal(t, maxAttempts, conn.rollbacks)
	assert.Equal(t, 0, conn.commits)

	var pqErr *pq.Error
	require.ErrorAs(t, err, &pqErr)
}

func TestDoSerializable_NonRetryableReturnsImmediately(t *testing.T) {
	conn := &fakeConn{}
	m := NewTransactionManager(newFakeDB(t, conn))

	sentinel := errors.New("slot is full")
	calls := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return sentinel
	})

	require.ErrorIs(t, err, sentinel)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, conn.rollbacks)
	assert.Equal(t, 0, conn.commits)
}

func TestDoSerializable_DegradedRunsWithoutTransaction(t *testing.T) {
	// БД недоступна: BeginTx не удаётся, fn выполняется без транзакции
	// под процессным мьютексом - хранилища в этом режиме in-memory
	db := sql.OpenDB(&fakeConnector{err: errors.New("connection refused")})
	t.Cleanup(func() { db.Close() })
	m := NewTransactionManager(db)

	calls := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		assert.False(t, dbmetrics.IsInTransaction(ctx))
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, isRetryable(&pq.Error{Code: "40001"}))
	assert.True(t, isRetryable(&pq.Error{Code: "40P01"}))
	assert.True(t, isRetryable(fmt.Errorf("wrapped: %w", &pq.Error{Code: "40001"})))
	assert.False(t, isRetryable(&pq.Error{Code: "23505"}))
	assert.False(t, isRetryable(errors.New("boom")))
}
