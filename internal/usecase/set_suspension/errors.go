package set_suspension

import "errors"

var (
	// ErrSlotNotEmpty возвращается при попытке приостановить час с бронированиями
	ErrSlotNotEmpty = errors.New("set_suspension: slot has bookings")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("set_suspension: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("set_suspension: internal error")
)
