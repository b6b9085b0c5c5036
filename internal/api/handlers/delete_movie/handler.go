package delete_movie

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/wdfin/popcore-admin-service/internal/api/handlers"
	catalogService "github.com/wdfin/popcore-admin-service/internal/service/catalog"
)

const (
	msgInvalidMovieID = "некорректный ID фильма"
	msgMovieNotFound  = "фильм не найден"
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

// Handle DELETE /api/v1/movies/{movieID}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	movieID, err := strconv.ParseInt(vars["movieID"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /movies/{movieID} - Invalid movie ID: %s", vars["movieID"])
		handlers.RespondBadRequest(w, msgInvalidMovieID)
		return
	}

	if err := h.service.DeleteMovie(r.Context(), movieID); err != nil {
		switch {
		case errors.Is(err, catalogService.ErrMovieNotFound):
			h.logger.Warn("DELETE /movies/%d - Movie not found", movieID)
			handlers.RespondNotFound(w, msgMovieNotFound)

		default:
			h.logger.Error("DELETE /movies/%d - Failed to delete movie: error=%v", movieID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /movies/%d - Movie deleted", movieID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
