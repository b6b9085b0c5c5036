package list_halls

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/wdfin/popcore-admin-service/internal/api/handlers"
	catalogService "github.com/wdfin/popcore-admin-service/internal/service/catalog"
)

const (
	msgInvalidTheaterID = "некорректный ID кинотеатра"
	msgTheaterNotFound  = "кинотеатр не найден"
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

// Handle GET /api/v1/theaters/{theaterID}/halls
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	theaterID, err := strconv.ParseInt(vars["theaterID"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /theaters/{theaterID}/halls - Invalid theater ID: %s", vars["theaterID"])
		handlers.RespondBadRequest(w, msgInvalidTheaterID)
		return
	}

	result, err := h.service.ListHalls(r.Context(), theaterID)
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrTheaterNotFound):
			h.logger.Warn("GET /theaters/%d/halls - Theater not found", theaterID)
			handlers.RespondNotFound(w, msgTheaterNotFound)

		default:
			h.logger.Error("GET /theaters/%d/halls - Failed to list halls: error=%v", theaterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /theaters/%d/halls - Listed %d halls", theaterID, len(result))
	handlers.RespondJSON(w, http.StatusOK, FromClientHalls(result))
}
