package suspension

import (
	"context"

	"github.com/Wainainajnr/slotallocation/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// Storage контракт хранилища приостановок
// Хранит множество заблокированных часов по дням
type Storage interface {
	ListByDay(ctx context.Context, day string) ([]string, error)
	Add(ctx context.Context, day, hour string) error
	Remove(ctx context.Context, day, hour string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
