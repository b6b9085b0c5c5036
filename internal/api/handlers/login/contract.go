package login

import (
	"context"

	"github.com/wdfin/popcore-admin-service/internal/service/admins/models"
)

type AdminsService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
