package daily_usage

import (
	"errors"
	"net/http"

	"github.com/dkomnin/APEC-BookingService/internal/api/handlers"
	"github.com/dkomnin/APEC-BookingService/internal/service/bookings"
	"github.com/dkomnin/APEC-BookingService/internal/service/bookings/models"
)

const (
	msgMissingDate    = "дата обязательна"
	msgMissingCompany = "компания обязательна"
	msgInvalidDate    = "дата не входит в даты события"
	msgInvalidInput   = "некорректные параметры запроса"
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

// Handle GET /api/v1/daily-usage
// Query params: date (required, YYYY-MM-DD), company (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	date := query.Get("date")
	if date == "" {
		h.logger.Warn("GET /daily-usage - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	company := query.Get("company")
	if company == "" {
		h.logger.Warn("GET /daily-usage - Missing company")
		handlers.RespondBadRequest(w, msgMissingCompany)
		return
	}

	result, err := h.service.DailyUsage(r.Context(), &models.DailyUsageRequest{
		Date:    date,
		Company: company,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidDate):
			h.logger.Warn("GET /daily-usage - Invalid date: date=%s", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /daily-usage - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /daily-usage - Failed to get daily usage: date=%s, company=%q, error=%v", date, company, err)
			handlers.RespondServiceUnavailable(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
