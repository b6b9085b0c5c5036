package create_movie

import (
	"errors"
	"net/http"

	"github.com/wdfin/popcore-admin-service/internal/api/handlers"
	catalogService "github.com/wdfin/popcore-admin-service/internal/service/catalog"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidMovieData   = "некорректные данные фильма"
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

// Handle POST /api/v1/movies
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req MovieRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /movies - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateMovie(r.Context(), req.ToClientInput())
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrInvalidInput):
			h.logger.Warn("POST /movies - Invalid movie data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMovieData)

		default:
			h.logger.Error("POST /movies - Failed to create movie: title=%s, error=%v", req.Title, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /movies - Movie created: id=%d, title=%s", result.ID, result.Title)
	handlers.RespondJSON(w, http.StatusCreated, FromClientMovie(result))
}
