package get_hall_showtimes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/wdfin/popcore-admin-service/internal/api/handlers"
	catalogService "github.com/wdfin/popcore-admin-service/internal/service/catalog"
)

const (
	msgInvalidHallID = "некорректный ID зала"
	msgHallNotFound  = "зал не найден"
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

// Handle GET /api/v1/halls/{hallID}/showtimes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	hallID, err := strconv.ParseInt(vars["hallID"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /halls/{hallID}/showtimes - Invalid hall ID: %s", vars["hallID"])
		handlers.RespondBadRequest(w, msgInvalidHallID)
		return
	}

	result, err := h.service.ListHallShowtimes(r.Context(), hallID)
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrHallNotFound):
			h.logger.Warn("GET /halls/%d/showtimes - Hall not found", hallID)
			handlers.RespondNotFound(w, msgHallNotFound)

		default:
			h.logger.Error("GET /halls/%d/showtimes - Failed to list showtimes: error=%v", hallID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /halls/%d/showtimes - Listed %d showtimes", hallID, len(result))
	handlers.RespondJSON(w, http.StatusOK, FromClientShowtimes(result))
}
