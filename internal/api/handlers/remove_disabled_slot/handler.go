package remove_disabled_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dkomnin/APEC-BookingService/internal/api/handlers"
	"github.com/dkomnin/APEC-BookingService/internal/service/disabledslots"
)

const (
	msgInvalidSlotID = "некорректный ID блокировки"
	msgNotFound      = "блокировка не найдена"
)

type Handler struct {
	service DisabledSlotService
	logger  Logger
}

func NewHandler(service DisabledSlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/disabled-slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotIDStr := vars["slotId"]

	slotID, err := strconv.ParseInt(slotIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /disabled-slots/{id} - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	if err := h.service.Remove(r.Context(), slotID); err != nil {
		switch {
		case errors.Is(err, disabledslots.ErrSlotNotFound):
			h.logger.Warn("DELETE /disabled-slots/{id} - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /disabled-slots/{id} - Failed to remove slot: slot_id=%d, error=%v", slotID, err)
			handlers.RespondServiceUnavailable(w)
		}
		return
	}

	h.logger.Info("DELETE /disabled-slots/{id} - Slot removed: slot_id=%d", slotID)
	handlers.RespondNoContent(w)
}
