package create_admin

import (
	"context"

	"github.com/wdfin/popcore-admin-service/internal/domain"
	"github.com/wdfin/popcore-admin-service/internal/service/admins/models"
)

type AdminsService interface {
	Create(ctx context.Context, actorRole domain.AdminRole, req *models.CreateAdminRequest) (*models.AdminResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
