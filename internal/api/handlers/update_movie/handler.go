package update_movie

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/wdfin/popcore-admin-service/internal/api/handlers"
	catalogService "github.com/wdfin/popcore-admin-service/internal/service/catalog"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidMovieID     = "некорректный ID фильма"
	msgInvalidMovieData   = "некорректные данные фильма"
	msgMovieNotFound      = "фильм не найден"
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

// Handle PUT /api/v1/movies/{movieID}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	movieID, err := strconv.ParseInt(vars["movieID"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /movies/{movieID} - Invalid movie ID: %s", vars["movieID"])
		handlers.RespondBadRequest(w, msgInvalidMovieID)
		return
	}

	var req MovieRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /movies/%d - Invalid request body: %v", movieID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateMovie(r.Context(), movieID, req.ToClientInput())
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrMovieNotFound):
			h.logger.Warn("PUT /movies/%d - Movie not found", movieID)
			handlers.RespondNotFound(w, msgMovieNotFound)

		case errors.Is(err, catalogService.ErrInvalidInput):
			h.logger.Warn("PUT /movies/%d - Invalid movie data: %v", movieID, err)
			handlers.RespondBadRequest(w, msgInvalidMovieData)

		default:
			h.logger.Error("PUT /movies/%d - Failed to update movie: error=%v", movieID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /movies/%d - Movie updated: title=%s", movieID, result.Title)
	handlers.RespondJSON(w, http.StatusOK, FromClientMovie(result))
}
