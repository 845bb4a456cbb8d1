package create_booking

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dkomnin/APEC-BookingService/internal/api/handlers"
	admitBooking "github.com/dkomnin/APEC-BookingService/internal/usecase/admit_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные заявки"
	msgInvalidDate        = "дата не входит в даты события"
	msgRoomNotFound       = "комната не найдена"
	msgCompanyNotFound    = "компания не найдена в реестре"
	msgRoomNotAllowed     = "комната недоступна для уровня спонсорства компании"
	msgInvalidHours       = "интервал не укладывается в рабочие часы"
	msgDailyLimit         = "превышен дневной лимит бронирований компании"
	msgSlotTaken          = "временной слот уже занят"
	msgSlotDisabled       = "временной слот закрыт администратором"
)

type Handler struct {
	useCase AdmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase AdmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, admitBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, admitBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid date: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, admitBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: room=%s", req.Room)
			handlers.RespondBadRequest(w, msgRoomNotFound)

		case errors.Is(err, admitBooking.ErrCompanyNotFound):
			h.logger.Warn("POST /bookings - Company not found: company=%q", req.Company)
			handlers.RespondBadRequest(w, msgCompanyNotFound)

		case errors.Is(err, admitBooking.ErrRoomNotAllowed):
			h.logger.Warn("POST /bookings - Room not allowed: room=%s, company=%q", req.Room, req.Company)
			handlers.RespondForbidden(w, msgRoomNotAllowed)

		case errors.Is(err, admitBooking.ErrInvalidHours):
			h.logger.Warn("POST /bookings - Invalid hours: start=%d, blocks=%d", req.StartHour, req.Blocks)
			handlers.RespondBadRequest(w, msgInvalidHours)

		case errors.Is(err, admitBooking.ErrDailyLimitExceeded):
			h.logger.Warn("POST /bookings - Daily limit exceeded: company=%q, date=%s", req.Company, req.Date)
			handlers.RespondConflict(w, dailyLimitMessage(err))

		case errors.Is(err, admitBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: room=%s, date=%s, start=%d", req.Room, req.Date, req.StartHour)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, admitBooking.ErrSlotDisabled):
			h.logger.Warn("POST /bookings - Slot disabled: room=%s, date=%s, start=%d", req.Room, req.Date, req.StartHour)
			handlers.RespondConflict(w, msgSlotDisabled)

		default:
			h.logger.Error("POST /bookings - Failed to admit booking: company=%q, error=%v", req.Company, err)
			handlers.RespondServiceUnavailable(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking admitted: booking_id=%d, company=%q, room=%s, date=%s",
		result.ID, result.Company, result.RoomCode, result.Date)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

// dailyLimitMessage достаёт детали занятости из структурной ошибки лимита
func dailyLimitMessage(err error) string {
	var limitErr *admitBooking.DailyLimitError
	if errors.As(err, &limitErr) {
		return fmt.Sprintf("%s: занято %d из %d блоков", msgDailyLimit, limitErr.CurrentTotal, limitErr.Cap)
	}
	return msgDailyLimit
}
