package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/Wainainajnr/slotallocation/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Day == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if _, err := time.Parse(domain.DateFormat, req.Day); err != nil {
		return fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", ErrInvalidInput)
	}

	if req.Hour == "" {
		return fmt.Errorf("%w: hour is required", ErrInvalidInput)
	}

	// Час "12" зарезервирован под теорию и сюда тоже не проходит
	if !domain.IsBookableHour(req.Hour) {
		return fmt.Errorf("%w: hour %q is not bookable", ErrInvalidInput, req.Hour)
	}

	if strings.TrimSpace(req.StudentName) == "" {
		return fmt.Errorf("%w: student_name is required", ErrInvalidInput)
	}

	if len(req.StudentName) > domain.MaxStudentNameLength {
		return fmt.Errorf("%w: student_name is too long", ErrInvalidInput)
	}

	return nil
}
