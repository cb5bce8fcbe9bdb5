package suspension

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Wainainajnr/slotallocation/pkg/dbmetrics"
	"github.com/Wainainajnr/slotallocation/pkg/psqlbuilder"
)

// Repository репозиторий приостановок поверх PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория приостановок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListByDay получает множество приостановленных часов за день.
// Внутри транзакции строки блокируются через FOR UPDATE, чтобы проверка
// приостановки и вставка бронирования видели один снимок
func (r *Repository) ListByDay(ctx context.Context, day string) ([]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("hour").
		From("suspensions").
		Where(squirrel.Eq{"day": day}).
		OrderBy("hour ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDay - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDay - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	hours := make([]string, 0)
	for rows.Next() {
		var hour string
		if err := rows.Scan(&hour); err != nil {
			return nil, fmt.Errorf("%w: ListByDay - scan hour: %w", ErrScanRow, err)
		}
		hours = append(hours, hour)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByDay - rows error: %w", ErrScanRow, err)
	}

	return hours, nil
}

// Add добавляет час в множество приостановленных
// Повторная приостановка того же часа - no-op (ON CONFLICT DO NOTHING)
func (r *Repository) Add(ctx context.Context, day, hour string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("suspensions").
		Columns("day", "hour").
		Values(day, hour).
		Suffix("ON CONFLICT (day, hour) DO NOTHING").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Add - build insert query: %w", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Add - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

// Remove убирает час из множества приостановленных
// Отсутствие записи ошибкой не считается
func (r *Repository) Remove(ctx context.Context, day, hour string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("suspensions").
		Where(squirrel.Eq{"day": day, "hour": hour}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Remove - build delete query: %w", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Remove - execute delete: %w", ErrExecQuery, err)
	}

	return nil
}
