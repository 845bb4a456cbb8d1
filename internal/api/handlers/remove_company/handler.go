package remove_company

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dkomnin/APEC-BookingService/internal/api/handlers"
	"github.com/dkomnin/APEC-BookingService/internal/service/companies"
)

const (
	msgInvalidCompanyID = "некорректный ID компании"
	msgNotFound         = "компания не найдена"
	msgHasBookings      = "у компании есть бронирования, удаление невозможно"
)

type Handler struct {
	service CompanyService
	logger  Logger
}

func NewHandler(service CompanyService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/companies/{companyId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	companyIDStr := vars["companyId"]

	companyID, err := strconv.ParseInt(companyIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /companies/{id} - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	if err := h.service.Remove(r.Context(), companyID); err != nil {
		switch {
		case errors.Is(err, companies.ErrCompanyNotFound):
			h.logger.Warn("DELETE /companies/{id} - Company not found: company_id=%d", companyID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, companies.ErrHasBookings):
			h.logger.Warn("DELETE /companies/{id} - Company has bookings: company_id=%d", companyID)
			handlers.RespondConflict(w, hasBookingsMessage(err))

		default:
			h.logger.Error("DELETE /companies/{id} - Failed to remove company: company_id=%d, error=%v", companyID, err)
			handlers.RespondServiceUnavailable(w)
		}
		return
	}

	h.logger.Info("DELETE /companies/{id} - Company removed: company_id=%d", companyID)
	handlers.RespondNoContent(w)
}

// hasBookingsMessage достаёт число бронирований из структурной ошибки
func hasBookingsMessage(err error) string {
	var hasErr *companies.HasBookingsError
	if errors.As(err, &hasErr) {
		return fmt.Sprintf("%s: бронирований - %d", msgHasBookings, hasErr.Count)
	}
	return msgHasBookings
}
