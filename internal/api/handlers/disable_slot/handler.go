package disable_slot

import (
	"errors"
	"net/http"

	"github.com/dkomnin/APEC-BookingService/internal/api/handlers"
	disableSlot "github.com/dkomnin/APEC-BookingService/internal/usecase/disable_slot"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные блокировки"
	msgInvalidDate        = "дата не входит в даты события"
	msgRoomNotFound       = "комната не найдена"
	msgInvalidHours       = "интервал не укладывается в рабочие часы"
	msgBookingExists      = "интервал пересекается с существующим бронированием"
	msgAlreadyDisabled    = "интервал уже закрыт другой блокировкой"
)

type Handler struct {
	useCase DisableSlotUseCase
	logger  Logger
}

func NewHandler(useCase DisableSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/disabled-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req DisableSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /disabled-slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, disableSlot.ErrInvalidInput):
			h.logger.Warn("POST /disabled-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, disableSlot.ErrInvalidDate):
			h.logger.Warn("POST /disabled-slots - Invalid date: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, disableSlot.ErrRoomNotFound):
			h.logger.Warn("POST /disabled-slots - Room not found: room=%s", req.Room)
			handlers.RespondBadRequest(w, msgRoomNotFound)

		case errors.Is(err, disableSlot.ErrInvalidHours):
			h.logger.Warn("POST /disabled-slots - Invalid hours: start=%d, blocks=%d", req.StartHour, req.Blocks)
			handlers.RespondBadRequest(w, msgInvalidHours)

		case errors.Is(err, disableSlot.ErrBookingExists):
			h.logger.Warn("POST /disabled-slots - Booking exists: room=%s, date=%s, start=%d",
				req.Room, req.Date, req.StartHour)
			handlers.RespondConflict(w, msgBookingExists)

		case errors.Is(err, disableSlot.ErrAlreadyDisabled):
			h.logger.Warn("POST /disabled-slots - Already disabled: room=%s, date=%s, start=%d",
				req.Room, req.Date, req.StartHour)
			handlers.RespondConflict(w, msgAlreadyDisabled)

		default:
			h.logger.Error("POST /disabled-slots - Failed to disable slot: room=%s, date=%s, error=%v",
				req.Room, req.Date, err)
			handlers.RespondServiceUnavailable(w)
		}
		return
	}

	h.logger.Info("POST /disabled-slots - Slot disabled: slot_id=%d, room=%s, date=%s %d-%d",
		result.ID, result.RoomCode, result.Date, result.StartHour, result.EndHour)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
