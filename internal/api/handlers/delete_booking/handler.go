package delete_booking

import (
	"errors"
	"net/http"

	"github.com/Wainainajnr/slotallocation/internal/api/handlers"
	slotsService "github.com/Wainainajnr/slotallocation/internal/service/slots"
)

const (
	msgBookingRemoved = "Booking removed"
)

type Handler struct {
	service SlotsService
	logger  Logger
}

func NewHandler(service SlotsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /admin/book
// Тело запроса опционально: параметры принимаются и из query-строки.
// Удаление несуществующего бронирования - успех (fire-and-forget со стороны UI)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req DeleteBookingRequest
	// Тело может отсутствовать - ошибки декодирования игнорируем
	handlers.DecodeJSON(r, &req)
	req.FillFromQuery(r)

	result, err := h.service.DeleteBooking(r.Context(), req.Date, req.Hour, req.StudentName)
	if err != nil {
		switch {
		case errors.Is(err, slotsService.ErrInvalidInput):
			h.logger.Warn("DELETE /admin/book - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("DELETE /admin/book - Failed to delete booking: date=%s, hour=%s, error=%v",
				req.Date, req.Hour, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/book - Booking removed: date=%s, hour=%s, student=%s",
		req.Date, req.Hour, req.StudentName)
	handlers.RespondSuccess(w, msgBookingRemoved, handlers.FromDomainSlots(result))
}
