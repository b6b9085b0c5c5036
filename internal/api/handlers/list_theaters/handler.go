package list_theaters

import (
	"net/http"

	"github.com/wdfin/popcore-admin-service/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/theaters
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListTheaters(r.Context())
	if err != nil {
		h.logger.Error("GET /theaters - Failed to list theaters: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /theaters - Listed %d theaters", len(result))
	handlers.RespondJSON(w, http.StatusOK, FromClientTheaters(result))
}
