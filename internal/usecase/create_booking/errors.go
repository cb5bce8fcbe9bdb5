package create_booking

import "errors"

var (
	// ErrSlotSuspended возвращается при попытке бронирования в приостановленный час
	ErrSlotSuspended = errors.New("create_booking: slot is suspended")

	// ErrSlotFull возвращается, когда в часе уже занято 4 места
	ErrSlotFull = errors.New("create_booking: slot is full")

	// ErrDuplicateStudent возвращается, когда студент уже записан на этот час
	ErrDuplicateStudent = errors.New("create_booking: student already booked in this hour")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
