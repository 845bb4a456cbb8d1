package list_bookings

import (
	"errors"
	"net/http"

	"github.com/dkomnin/APEC-BookingService/internal/api/handlers"
	"github.com/dkomnin/APEC-BookingService/internal/service/bookings"
	"github.com/dkomnin/APEC-BookingService/internal/service/bookings/models"
)

const (
	msgMissingDate  = "дата обязательна"
	msgInvalidDate  = "дата не входит в даты события"
	msgRoomNotFound = "комната не найдена"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
// Query params: date (required, YYYY-MM-DD), room (optional), company (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	date := query.Get("date")
	if date == "" {
		h.logger.Warn("GET /bookings - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	req := &models.ListBookingsRequest{Date: date}
	if room := query.Get("room"); room != "" {
		req.RoomCode = &room
	}
	if company := query.Get("company"); company != "" {
		req.Company = &company
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidDate):
			h.logger.Warn("GET /bookings - Invalid date: date=%s", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, bookings.ErrRoomNotFound):
			h.logger.Warn("GET /bookings - Room not found: room=%s", query.Get("room"))
			handlers.RespondBadRequest(w, msgRoomNotFound)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: date=%s, error=%v", date, err)
			handlers.RespondServiceUnavailable(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
