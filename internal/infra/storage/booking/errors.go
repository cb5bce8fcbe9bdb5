package booking

import "errors"

var (
	// ErrDuplicateBooking возвращается при попытке вставить дубликат (day, hour, student_name)
	ErrDuplicateBooking = errors.New("booking.repository: duplicate booking for student in this hour")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
