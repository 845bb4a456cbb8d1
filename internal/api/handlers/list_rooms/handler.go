package list_rooms

import (
	"net/http"

	"github.com/dkomnin/APEC-BookingService/internal/api/handlers"
	"github.com/dkomnin/APEC-BookingService/internal/domain"
)

type Handler struct {
	catalog *domain.Catalog
	logger  Logger
}

func NewHandler(catalog *domain.Catalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms
// Каталог статичен, ответ строится из конфигурации без обращения к БД
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, FromCatalog(h.catalog))
}
