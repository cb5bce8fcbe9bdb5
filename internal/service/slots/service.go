package slots

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Wainainajnr/slotallocation/internal/domain"
)

// Service сервис чтения слотов и удаления бронирований
// Операции без предусловий не требуют транзакций - их выполняет сервис,
// многошаговые проверки живут в usecase'ах
type Service struct {
	bookingStore    BookingStorage
	suspensionStore SuspensionStorage
	logger          Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(
	bookingStore BookingStorage,
	suspensionStore SuspensionStorage,
	logger Logger,
) *Service {
	return &Service{
		bookingStore:    bookingStore,
		suspensionStore: suspensionStore,
		logger:          logger,
	}
}

// GetDailySlots возвращает состояние всех слотов дня
func (s *Service) GetDailySlots(ctx context.Context, day string) ([]domain.Slot, error) {
	s.logger.Info("GetDailySlots: day=%s", day)

	if err := validateDay(day); err != nil {
		s.logger.Warn("GetDailySlots: validation failed: %v", err)
		return nil, err
	}

	slots, err := s.computeDaySlots(ctx, day)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetDailySlots: computed %d slots for day=%s", len(slots), day)
	return slots, nil
}

// DeleteBooking удаляет бронирование студента и возвращает пересчитанные слоты.
// Удаление несуществующего бронирования - успешный no-op: UI шлёт удаление
// без подтверждения, и второй клик не должен превращаться в ошибку
func (s *Service) DeleteBooking(ctx context.Context, day, hour, studentName string) ([]domain.Slot, error) {
	s.logger.Info("DeleteBooking: day=%s, hour=%s, student=%s", day, hour, studentName)

	if err := validateDay(day); err != nil {
		s.logger.Warn("DeleteBooking: validation failed: %v", err)
		return nil, err
	}
	if hour == "" {
		return nil, fmt.Errorf("%w: hour is required", ErrInvalidInput)
	}
	if strings.TrimSpace(studentName) == "" {
		return nil, fmt.Errorf("%w: student_name is required", ErrInvalidInput)
	}

	removed, err := s.bookingStore.Delete(ctx, day, hour, studentName)
	if err != nil {
		s.logger.Error("DeleteBooking: failed to delete booking: %v", err)
		return nil, fmt.Errorf("%w: failed to delete booking: %w", ErrInternal, err)
	}

	if removed == 0 {
		s.logger.Info("DeleteBooking: no booking found for %s on %s hour %s, nothing to do",
			studentName, day, hour)
	} else {
		s.logger.Info("DeleteBooking: removed booking of %s on %s hour %s", studentName, day, hour)
	}

	return s.computeDaySlots(ctx, day)
}

// computeDaySlots загружает состояние дня и строит слоты
func (s *Service) computeDaySlots(ctx context.Context, day string) ([]domain.Slot, error) {
	bookings, err := s.bookingStore.ListByDay(ctx, day)
	if err != nil {
		s.logger.Error("computeDaySlots: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %w", ErrInternal, err)
	}

	suspendedHours, err := s.suspensionStore.ListByDay(ctx, day)
	if err != nil {
		s.logger.Error("computeDaySlots: failed to list suspensions: %v", err)
		return nil, fmt.Errorf("%w: failed to list suspensions: %w", ErrInternal, err)
	}

	return domain.BuildDaySlots(bookings, suspendedHours), nil
}

// validateDay проверяет формат даты
func validateDay(day string) error {
	if day == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if _, err := time.Parse(domain.DateFormat, day); err != nil {
		return fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", ErrInvalidInput)
	}
	return nil
}
