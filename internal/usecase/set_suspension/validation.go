package set_suspension

import (
	"fmt"
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
		return fmt.Errorf("%w: slotId is required", ErrInvalidInput)
	}

	if !domain.IsBookableHour(req.Hour) {
		return fmt.Errorf("%w: hour %q is not bookable", ErrInvalidInput, req.Hour)
	}

	if req.Action != domain.ActionSuspend && req.Action != domain.ActionUnsuspend {
		return fmt.Errorf("%w: action must be %q or %q", ErrInvalidInput,
			domain.ActionSuspend, domain.ActionUnsuspend)
	}

	return nil
}
