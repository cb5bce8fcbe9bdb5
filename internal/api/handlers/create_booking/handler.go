package create_booking

import (
	"errors"
	"net/http"

	"github.com/Wainainajnr/slotallocation/internal/api/handlers"
	createBooking "github.com/Wainainajnr/slotallocation/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgSlotSuspended      = "Slot is suspended"
	msgSlotFull           = "Slot full"
	msgDuplicateStudent   = "Student already booked in this hour"
	msgBookingCreated     = "Booking created"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /admin/book
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/book - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotSuspended):
			h.logger.Warn("POST /admin/book - Slot suspended: date=%s, hour=%s", req.Date, req.Hour)
			handlers.RespondFailure(w, msgSlotSuspended)

		case errors.Is(err, createBooking.ErrSlotFull):
			h.logger.Warn("POST /admin/book - Slot full: date=%s, hour=%s", req.Date, req.Hour)
			handlers.RespondFailure(w, msgSlotFull)

		case errors.Is(err, createBooking.ErrDuplicateStudent):
			h.logger.Warn("POST /admin/book - Duplicate student: date=%s, hour=%s, student=%s",
				req.Date, req.Hour, req.StudentName)
			handlers.RespondFailure(w, msgDuplicateStudent)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /admin/book - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /admin/book - Failed to create booking: date=%s, hour=%s, error=%v",
				req.Date, req.Hour, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/book - Booking created: date=%s, hour=%s, student=%s",
		req.Date, req.Hour, req.StudentName)
	handlers.RespondSuccess(w, msgBookingCreated, handlers.FromDomainSlots(result.Slots))
}
