package get_availability

import (
	"errors"
	"net/http"

	"github.com/dkomnin/APEC-BookingService/internal/api/handlers"
	getAvailability "github.com/dkomnin/APEC-BookingService/internal/usecase/get_availability"
)

const (
	msgMissingDate  = "дата обязательна"
	msgMissingRoom  = "комната обязательна"
	msgInvalidDate  = "дата не входит в даты события"
	msgRoomNotFound = "комната не найдена"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: date (required, YYYY-MM-DD), room (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	date := query.Get("date")
	if date == "" {
		h.logger.Warn("GET /availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	room := query.Get("room")
	if room == "" {
		h.logger.Warn("GET /availability - Missing room")
		handlers.RespondBadRequest(w, msgMissingRoom)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		Date:     date,
		RoomCode: room,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidDate):
			h.logger.Warn("GET /availability - Invalid date: date=%s", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailability.ErrRoomNotFound):
			h.logger.Warn("GET /availability - Room not found: room=%s", room)
			handlers.RespondBadRequest(w, msgRoomNotFound)

		default:
			h.logger.Error("GET /availability - Failed to get availability: date=%s, room=%s, error=%v", date, room, err)
			handlers.RespondServiceUnavailable(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
