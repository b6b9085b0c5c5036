package schedule_showtimes

import (
	"context"

	"github.com/wdfin/popcore-admin-service/internal/integrations/popcore"
)

// PopcoreClient интерфейс клиента core-бэкенда
type PopcoreClient interface {
	// CreateShowtime создает сеанс; при пересечении возвращает *popcore.ConflictError
	CreateShowtime(ctx context.Context, movieID int64, input *popcore.CreateShowtimeRequest) (*popcore.Showtime, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
