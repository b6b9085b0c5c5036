package list_admins

import (
	"errors"
	"net/http"

	"github.com/wdfin/popcore-admin-service/internal/api/handlers"
	"github.com/wdfin/popcore-admin-service/internal/api/middleware"
	adminsService "github.com/wdfin/popcore-admin-service/internal/service/admins"
)

const (
	msgAccessDenied = "недостаточно прав для управления учетными записями"
	msgUnauthorized = "требуется авторизация"
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

// Handle GET /api/v1/admins
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /admins - Missing identity in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	result, err := h.service.List(r.Context(), identity.Role)
	if err != nil {
		switch {
		case errors.Is(err, adminsService.ErrAccessDenied):
			h.logger.Warn("GET /admins - Access denied: actor=%s, role=%s", identity.Username, identity.Role)
			handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)

		default:
			h.logger.Error("GET /admins - Failed to list admins: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admins - Listed %d admins: actor=%s", len(result), identity.Username)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
