package get_theater_reports

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/wdfin/popcore-admin-service/internal/api/handlers"
	reportsService "github.com/wdfin/popcore-admin-service/internal/service/reports"
)

const (
	msgInvalidTheaterID = "некорректный ID кинотеатра"
	msgInvalidDates     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange     = "некорректный диапазон дат"
	msgTheaterNotFound  = "кинотеатр не найден"
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

// Handle GET /api/v1/theaters/{theaterID}/reports?startDate=...&endDate=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	theaterID, err := strconv.ParseInt(vars["theaterID"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /theaters/{theaterID}/reports - Invalid theater ID: %s", vars["theaterID"])
		handlers.RespondBadRequest(w, msgInvalidTheaterID)
		return
	}

	query := r.URL.Query()
	startDate, err := parseOptionalDate(query.Get("startDate"))
	if err != nil {
		h.logger.Warn("GET /theaters/%d/reports - Invalid startDate: %v", theaterID, err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}
	endDate, err := parseOptionalDate(query.Get("endDate"))
	if err != nil {
		h.logger.Warn("GET /theaters/%d/reports - Invalid endDate: %v", theaterID, err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	result, err := h.service.TheaterReports(r.Context(), theaterID, startDate, endDate)
	if err != nil {
		switch {
		case errors.Is(err, reportsService.ErrTheaterNotFound):
			h.logger.Warn("GET /theaters/%d/reports - Theater not found", theaterID)
			handlers.RespondNotFound(w, msgTheaterNotFound)

		case errors.Is(err, reportsService.ErrInvalidInput):
			h.logger.Warn("GET /theaters/%d/reports - Invalid input: %v", theaterID, err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /theaters/%d/reports - Failed to get reports: error=%v", theaterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /theaters/%d/reports - Returned %d daily rows", theaterID, len(result))
	handlers.RespondJSON(w, http.StatusOK, FromClientReports(result))
}
