package admins

import (
	"context"

	"github.com/wdfin/popcore-admin-service/internal/domain"
)

// AdminRepository интерфейс репозитория учетных записей
type AdminRepository interface {
	Create(ctx context.Context, admin *domain.Admin) (*domain.Admin, error)
	GetByUsername(ctx context.Context, username string) (*domain.Admin, error)
	List(ctx context.Context) ([]*domain.Admin, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
