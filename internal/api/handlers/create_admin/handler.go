package create_admin

import (
	"errors"
	"net/http"

	"github.com/wdfin/popcore-admin-service/internal/api/handlers"
	"github.com/wdfin/popcore-admin-service/internal/api/middleware"
	adminsService "github.com/wdfin/popcore-admin-service/internal/service/admins"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные учетной записи"
	msgUsernameTaken      = "логин уже занят"
	msgAccessDenied       = "недостаточно прав для управления учетными записями"
	msgUnauthorized       = "требуется авторизация"
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

// Handle POST /api/v1/admins
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /admins - Missing identity in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req CreateAdminRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admins - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), identity.Role, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, adminsService.ErrAccessDenied):
			h.logger.Warn("POST /admins - Access denied: actor=%s, role=%s", identity.Username, identity.Role)
			handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)

		case errors.Is(err, adminsService.ErrUsernameTaken):
			h.logger.Warn("POST /admins - Username taken: username=%s", req.Username)
			handlers.RespondError(w, http.StatusConflict, msgUsernameTaken)

		case errors.Is(err, adminsService.ErrInvalidInput):
			h.logger.Warn("POST /admins - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /admins - Failed to create admin: username=%s, error=%v", req.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admins - Admin created: id=%d, username=%s, role=%s, actor=%s",
		result.ID, result.Username, result.Role, identity.Username)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}
