package set_suspension

import (
	"context"
	"fmt"

	"github.com/Wainainajnr/slotallocation/internal/domain"
)

// UseCase use case приостановки и возобновления часа
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

// Execute выполняет приостановку или возобновление часа.
// Приостановить можно только пустой час; проверка и запись идут в одной
// сериализуемой транзакции, чтобы конкурентное бронирование не проскочило
// между проверкой и вставкой. Возобновление безусловно и идемпотентно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SetSuspension: day=%s, hour=%s, action=%s", req.Day, req.Hour, req.Action)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SetSuspension: validation failed: %v", err)
		return nil, err
	}

	var slots []domain.Slot

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		bookings, err := uc.bookingStore.ListByDay(txCtx, req.Day)
		if err != nil {
			uc.logger.Error("SetSuspension: failed to list bookings: %v", err)
			return fmt.Errorf("%w: failed to list bookings: %w", ErrInternal, err)
		}

		suspendedHours, err := uc.suspensionStore.ListByDay(txCtx, req.Day)
		if err != nil {
			uc.logger.Error("SetSuspension: failed to list suspensions: %v", err)
			return fmt.Errorf("%w: failed to list suspensions: %w", ErrInternal, err)
		}

		switch req.Action {
		case domain.ActionSuspend:
			// Приостановка допустима только для часа без бронирований
			if booked := domain.CountBookingsForHour(bookings, req.Hour); booked > 0 {
				uc.logger.Warn("SetSuspension: hour %s on %s has %d bookings, cannot suspend",
					req.Hour, req.Day, booked)
				return ErrSlotNotEmpty
			}

			if err := uc.suspensionStore.Add(txCtx, req.Day, req.Hour); err != nil {
				uc.logger.Error("SetSuspension: failed to add suspension: %v", err)
				return fmt.Errorf("%w: failed to add suspension: %w", ErrInternal, err)
			}

			suspendedHours = appendHour(suspendedHours, req.Hour)

		case domain.ActionUnsuspend:
			if err := uc.suspensionStore.Remove(txCtx, req.Day, req.Hour); err != nil {
				uc.logger.Error("SetSuspension: failed to remove suspension: %v", err)
				return fmt.Errorf("%w: failed to remove suspension: %w", ErrInternal, err)
			}

			suspendedHours = removeHour(suspendedHours, req.Hour)
		}

		slots = domain.BuildDaySlots(bookings, suspendedHours)
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("SetSuspension: %s applied to %s hour %s", req.Action, req.Day, req.Hour)

	return &Response{
		Day:   req.Day,
		Slots: slots,
	}, nil
}

// appendHour добавляет час в множество, если его там ещё нет
func appendHour(hours []string, hour string) []string {
	for _, h := range hours {
		if h == hour {
			return hours
		}
	}
	return append(hours, hour)
}

// removeHour убирает час из множества
func removeHour(hours []string, hour string) []string {
	kept := hours[:0]
	for _, h := range hours {
		if h != hour {
			kept = append(kept, h)
		}
	}
	return kept
}
