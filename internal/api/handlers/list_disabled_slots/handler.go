package list_disabled_slots

import (
	"errors"
	"net/http"

	"github.com/dkomnin/APEC-BookingService/internal/api/handlers"
	"github.com/dkomnin/APEC-BookingService/internal/service/disabledslots"
	"github.com/dkomnin/APEC-BookingService/internal/service/disabledslots/models"
)

const (
	msgMissingDate  = "дата обязательна"
	msgInvalidDate  = "дата не входит в даты события"
	msgRoomNotFound = "комната не найдена"
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

// Handle GET /api/v1/disabled-slots
// Query params: date (required, YYYY-MM-DD), room (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	date := query.Get("date")
	if date == "" {
		h.logger.Warn("GET /disabled-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	req := &models.ListDisabledSlotsRequest{Date: date}
	if room := query.Get("room"); room != "" {
		req.RoomCode = &room
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, disabledslots.ErrInvalidDate):
			h.logger.Warn("GET /disabled-slots - Invalid date: date=%s", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, disabledslots.ErrRoomNotFound):
			h.logger.Warn("GET /disabled-slots - Room not found: room=%s", query.Get("room"))
			handlers.RespondBadRequest(w, msgRoomNotFound)

		default:
			h.logger.Error("GET /disabled-slots - Failed to list disabled slots: date=%s, error=%v", date, err)
			handlers.RespondServiceUnavailable(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
