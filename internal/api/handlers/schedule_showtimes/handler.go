package schedule_showtimes

import (
	"errors"
	"net/http"

	"github.com/wdfin/popcore-admin-service/internal/api/handlers"
	scheduleShowtimes "github.com/wdfin/popcore-admin-service/internal/usecase/schedule_showtimes"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "не выбран фильм, зал, даты или слоты"
	msgInvalidDuration    = "недопустимая длительность сеанса, пакет отклонен целиком"
	msgStaleSelection     = "выбранные слоты устарели, обновите расписание"
	msgMovieNotFound      = "фильм не найден"
	msgBatchInFlight      = "предыдущий пакет еще отправляется"
	msgSlotConflict       = "слот уже занят другим сеансом"
	msgSubmitFailed       = "не удалось отправить пакет, часть сеансов могла создаться"
)

type Handler struct {
	useCase ScheduleShowtimesUseCase
	logger  Logger
}

func NewHandler(useCase ScheduleShowtimesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/showtimes/batch
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ScheduleShowtimesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /showtimes/batch - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /showtimes/batch - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflictErr *scheduleShowtimes.ConflictError
		var submitErr *scheduleShowtimes.SubmitError

		switch {
		case errors.As(err, &conflictErr):
			h.logger.Warn("POST /showtimes/batch - Slot conflict: hall_id=%d, date=%s, slot=%q, created=%d",
				req.HallID, conflictErr.Date, conflictErr.Slot, len(conflictErr.Created))
			handlers.RespondJSON(w, http.StatusConflict, &ConflictDetailResponse{
				Error:       msgSlotConflict,
				Date:        conflictErr.Date,
				Slot:        conflictErr.Slot,
				Attempted:   fromInterval(conflictErr.Attempted),
				Conflicting: fromInterval(conflictErr.Conflicting),
				Created:     fromCreatedList(conflictErr.Created),
			})

		case errors.As(err, &submitErr):
			h.logger.Error("POST /showtimes/batch - Submit failed: hall_id=%d, date=%s, slot=%q, created=%d, error=%v",
				req.HallID, submitErr.Date, submitErr.Slot, len(submitErr.Created), submitErr.Err)
			handlers.RespondJSON(w, http.StatusBadGateway, &SubmitFailureResponse{
				Error:   msgSubmitFailed,
				Date:    submitErr.Date,
				Slot:    submitErr.Slot,
				Created: fromCreatedList(submitErr.Created),
			})

		case errors.Is(err, scheduleShowtimes.ErrBatchInFlight):
			h.logger.Warn("POST /showtimes/batch - Batch already in flight: hall_id=%d", req.HallID)
			handlers.RespondError(w, http.StatusConflict, msgBatchInFlight)

		case errors.Is(err, scheduleShowtimes.ErrMovieNotFound):
			h.logger.Warn("POST /showtimes/batch - Movie not found: movie_id=%d", req.MovieID)
			handlers.RespondNotFound(w, msgMovieNotFound)

		case errors.Is(err, scheduleShowtimes.ErrInvalidDuration):
			h.logger.Warn("POST /showtimes/batch - Invalid slot duration: hall_id=%d, error=%v", req.HallID, err)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, scheduleShowtimes.ErrStaleSelection):
			h.logger.Warn("POST /showtimes/batch - Stale selection: hall_id=%d, error=%v", req.HallID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgStaleSelection)

		case errors.Is(err, scheduleShowtimes.ErrInvalidInput):
			h.logger.Warn("POST /showtimes/batch - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /showtimes/batch - Failed to schedule showtimes: movie_id=%d, hall_id=%d, error=%v",
				req.MovieID, req.HallID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /showtimes/batch - Batch created: movie_id=%d, hall_id=%d, showtimes=%d",
		result.MovieID, result.HallID, len(result.Created))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
