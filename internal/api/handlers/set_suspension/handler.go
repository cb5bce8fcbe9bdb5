package set_suspension

import (
	"errors"
	"net/http"

	"github.com/Wainainajnr/slotallocation/internal/api/handlers"
	"github.com/Wainainajnr/slotallocation/internal/domain"
	setSuspension "github.com/Wainainajnr/slotallocation/internal/usecase/set_suspension"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgSlotNotEmpty       = "Cannot suspend an hour with bookings"
	msgHourSuspended      = "Hour suspended"
	msgHourUnsuspended    = "Hour unsuspended"
)

type Handler struct {
	useCase SetSuspensionUseCase
	logger  Logger
}

func NewHandler(useCase SetSuspensionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /admin/suspend
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SetSuspensionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/suspend - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, setSuspension.ErrSlotNotEmpty):
			h.logger.Warn("POST /admin/suspend - Slot not empty: date=%s, hour=%s", req.Date, req.SlotID)
			handlers.RespondFailure(w, msgSlotNotEmpty)

		case errors.Is(err, setSuspension.ErrInvalidInput):
			h.logger.Warn("POST /admin/suspend - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /admin/suspend - Failed: date=%s, hour=%s, action=%s, error=%v",
				req.Date, req.SlotID, req.Action, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	message := msgHourUnsuspended
	if req.Action == domain.ActionSuspend {
		message = msgHourSuspended
	}

	h.logger.Info("POST /admin/suspend - %s: date=%s, hour=%s", req.Action, req.Date, req.SlotID)
	handlers.RespondSuccess(w, message, handlers.FromDomainSlots(result.Slots))
}
