package list_companies

import (
	"errors"
	"net/http"

	"github.com/dkomnin/APEC-BookingService/internal/api/handlers"
	"github.com/dkomnin/APEC-BookingService/internal/service/companies"
	"github.com/dkomnin/APEC-BookingService/internal/service/companies/models"
)

const (
	msgInvalidTier = "неизвестный уровень спонсорства"
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

// Handle GET /api/v1/companies
// Query params: tier (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListCompaniesRequest{}
	if tier := r.URL.Query().Get("tier"); tier != "" {
		req.Tier = &tier
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, companies.ErrInvalidTier):
			h.logger.Warn("GET /companies - Invalid tier: tier=%s", r.URL.Query().Get("tier"))
			handlers.RespondBadRequest(w, msgInvalidTier)

		default:
			h.logger.Error("GET /companies - Failed to list companies: error=%v", err)
			handlers.RespondServiceUnavailable(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
