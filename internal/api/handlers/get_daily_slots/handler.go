package get_daily_slots

import (
	"errors"
	"net/http"

	"github.com/Wainainajnr/slotallocation/internal/api/handlers"
	slotsService "github.com/Wainainajnr/slotallocation/internal/service/slots"
)

const (
	msgMissingDate = "Missing required field: date"
	msgInvalidDate = "Invalid date format, expected YYYY-MM-DD"
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

// Handle GET /admin/daily?date=YYYY-MM-DD
// Отдаёт сырой массив слотов - именно его поллит клиент
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	day := r.URL.Query().Get("date")
	if day == "" {
		h.logger.Warn("GET /admin/daily - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	slots, err := h.service.GetDailySlots(r.Context(), day)
	if err != nil {
		switch {
		case errors.Is(err, slotsService.ErrInvalidInput):
			h.logger.Warn("GET /admin/daily - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /admin/daily - Failed to get slots: date=%s, error=%v", day, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/daily - Slots retrieved: date=%s, slots_count=%d", day, len(slots))
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainSlots(slots))
}
