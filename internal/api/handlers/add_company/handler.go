package add_company

import (
	"errors"
	"net/http"

	"github.com/dkomnin/APEC-BookingService/internal/api/handlers"
	"github.com/dkomnin/APEC-BookingService/internal/service/companies"
	"github.com/dkomnin/APEC-BookingService/internal/service/companies/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные компании"
	msgInvalidTier        = "неизвестный уровень спонсорства"
	msgDuplicateName      = "компания с таким именем уже существует"
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

// Handle POST /api/v1/companies
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.AddCompanyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /companies - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Add(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, companies.ErrInvalidInput):
			h.logger.Warn("POST /companies - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, companies.ErrInvalidTier):
			h.logger.Warn("POST /companies - Invalid tier: tier=%s", req.Tier)
			handlers.RespondBadRequest(w, msgInvalidTier)

		case errors.Is(err, companies.ErrDuplicateName):
			h.logger.Warn("POST /companies - Duplicate name: name=%q", req.Name)
			handlers.RespondConflict(w, msgDuplicateName)

		default:
			h.logger.Error("POST /companies - Failed to add company: name=%q, error=%v", req.Name, err)
			handlers.RespondServiceUnavailable(w)
		}
		return
	}

	h.logger.Info("POST /companies - Company added: company_id=%d, name=%q", result.ID, result.Name)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
