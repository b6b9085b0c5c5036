package list_admins

import (
	"context"

	"github.com/wdfin/popcore-admin-service/internal/domain"
	"github.com/wdfin/popcore-admin-service/internal/service/admins/models"
)

type AdminsService interface {
	List(ctx context.Context, actorRole domain.AdminRole) ([]*models.AdminResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
