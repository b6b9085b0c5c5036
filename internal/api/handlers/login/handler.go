package login

import (
	"errors"
	"net/http"

	"github.com/wdfin/popcore-admin-service/internal/api/handlers"
	adminsService "github.com/wdfin/popcore-admin-service/internal/service/admins"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCredentials = "неверный логин или пароль"
)

type Handler struct {
	service AdminsService
	logger  Logger
}

func NewHandler(service AdminsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Login(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, adminsService.ErrInvalidCredentials):
			h.logger.Warn("POST /auth/login - Invalid credentials: username=%s", req.Username)
			handlers.RespondError(w, http.StatusUnauthorized, msgInvalidCredentials)

		case errors.Is(err, adminsService.ErrInvalidInput):
			h.logger.Warn("POST /auth/login - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /auth/login - Failed to login: username=%s, error=%v", req.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/login - Login successful: username=%s, role=%s", result.Username, result.Role)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
