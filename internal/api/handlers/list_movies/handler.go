package list_movies

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

// Handle GET /api/v1/movies
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListMovies(r.Context())
	if err != nil {
		h.logger.Error("GET /movies - Failed to list movies: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /movies - Listed %d movies", len(result))
	handlers.RespondJSON(w, http.StatusOK, FromClientMovies(result))
}
