package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/wdfin/popcore-admin-service/internal/api/handlers"
	getAvailableSlots "github.com/wdfin/popcore-admin-service/internal/usecase/get_available_slots"
)

const (
	msgInvalidHallID       = "некорректный ID зала"
	msgInvalidDates        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgHallNotFound        = "зал не найден"
	msgBookingsUnavailable = "не удалось получить расписание зала, попробуйте позже"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/halls/{hallID}/available-slots?dates=YYYY-MM-DD,YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	hallID, err := strconv.ParseInt(vars["hallID"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /halls/{hallID}/available-slots - Invalid hall ID: %s", vars["hallID"])
		handlers.RespondBadRequest(w, msgInvalidHallID)
		return
	}

	dates, err := parseDates(r.URL.Query()["dates"])
	if err != nil {
		h.logger.Warn("GET /halls/%d/available-slots - Failed to parse dates: %v", hallID, err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		HallID: hallID,
		Dates:  dates,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrHallNotFound):
			h.logger.Warn("GET /halls/%d/available-slots - Hall not found", hallID)
			handlers.RespondNotFound(w, msgHallNotFound)

		case errors.Is(err, getAvailableSlots.ErrBookingsUnavailable):
			h.logger.Error("GET /halls/%d/available-slots - Bookings unavailable: %v", hallID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgBookingsUnavailable)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /halls/%d/available-slots - Invalid input: %v", hallID, err)
			handlers.RespondBadRequest(w, msgInvalidHallID)

		default:
			h.logger.Error("GET /halls/%d/available-slots - Failed to get slots: error=%v", hallID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /halls/%d/available-slots - Calculated slots for %d dates", hallID, len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
