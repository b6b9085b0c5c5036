package get_ticket_stats

import (
	"errors"
	"net/http"

	"github.com/wdfin/popcore-admin-service/internal/api/handlers"
	reportsService "github.com/wdfin/popcore-admin-service/internal/service/reports"
)

const (
	msgInvalidQuery    = "некорректные параметры запроса статистики"
	msgTheaterNotFound = "кинотеатр не найден"
)

type Handler struct {
	service ReportsService
	logger  Logger
}

func NewHandler(service ReportsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reports/ticket-stats?theaterId=...&hallId=...&filter=week
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q, err := queryFromValues(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /reports/ticket-stats - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.TicketStats(r.Context(), q)
	if err != nil {
		switch {
		case errors.Is(err, reportsService.ErrTheaterNotFound):
			h.logger.Warn("GET /reports/ticket-stats - Theater not found: theater_id=%d", q.TheaterID)
			handlers.RespondNotFound(w, msgTheaterNotFound)

		case errors.Is(err, reportsService.ErrInvalidInput):
			h.logger.Warn("GET /reports/ticket-stats - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /reports/ticket-stats - Failed to get stats: theater_id=%d, hall_id=%d, error=%v",
				q.TheaterID, q.HallID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reports/ticket-stats - Returned stats: theater_id=%d, hall_id=%d, points=%d",
		q.TheaterID, q.HallID, len(result.DataPoints))
	handlers.RespondJSON(w, http.StatusOK, FromClientStats(result))
}
