package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/Wainainajnr/slotallocation/internal/domain"
	bookingRepo "github.com/Wainainajnr/slotallocation/internal/infra/storage/booking"
)

// UseCase use case создания бронирования
type UseCase struct {
	bookingStore    BookingStorage
	suspensionStore SuspensionStorage
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingStore BookingStorage,
	suspensionStore SuspensionStorage,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingStore:    bookingStore,
		suspensionStore: suspensionStore,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверки идут строго в порядке: приостановка -> вместимость -> дубликат.
// Проверки и вставка выполняются в одной сериализуемой транзакции, чтобы
// два конкурентных запроса не могли записать пятого студента в один час
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: day=%s, hour=%s, student=%s, permanent=%t",
		req.Day, req.Hour, req.StudentName, req.Permanent)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	var slots []domain.Slot

	// 2. Проверки и вставка в одной транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Приостановлен ли час
		suspendedHours, err := uc.suspensionStore.ListByDay(txCtx, req.Day)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list suspensions: %v", err)
			return fmt.Errorf("%w: failed to list suspensions: %w", ErrInternal, err)
		}
		for _, hour := range suspendedHours {
			if hour == req.Hour {
				uc.logger.Warn("CreateBooking: hour %s on %s is suspended", req.Hour, req.Day)
				return ErrSlotSuspended
			}
		}

		// 2.2. Есть ли свободные места
		bookings, err := uc.bookingStore.ListByDay(txCtx, req.Day)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list bookings: %v", err)
			return fmt.Errorf("%w: failed to list bookings: %w", ErrInternal, err)
		}

		booked := domain.CountBookingsForHour(bookings, req.Hour)
		if booked >= domain.SlotCapacity {
			uc.logger.Warn("CreateBooking: hour %s on %s is full (%d/%d)",
				req.Hour, req.Day, booked, domain.SlotCapacity)
			return ErrSlotFull
		}

		// 2.3. Не записан ли студент в этот час
		if domain.HourHasStudent(bookings, req.Hour, req.StudentName) {
			uc.logger.Warn("CreateBooking: student %s already booked on %s hour %s",
				req.StudentName, req.Day, req.Hour)
			return ErrDuplicateStudent
		}

		// 2.4. Вставляем бронирование
		created, err := uc.bookingStore.Create(txCtx, &domain.Booking{
			Day:         req.Day,
			Hour:        req.Hour,
			StudentName: req.StudentName,
			Permanent:   req.Permanent,
		})
		if err != nil {
			// Уникальное ограничение БД - последний рубеж против гонки
			if errors.Is(err, bookingRepo.ErrDuplicateBooking) {
				return ErrDuplicateStudent
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		// 2.5. Пересчитываем слоты дня с учётом новой записи
		slots = domain.BuildDaySlots(append(bookings, created), suspendedHours)
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully booked %s into %s hour %s",
		req.StudentName, req.Day, req.Hour)

	return &Response{
		Day:   req.Day,
		Slots: slots,
	}, nil
}
