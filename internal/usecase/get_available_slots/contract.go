package get_available_slots

import (
	"context"
	"time"

	"github.com/wdfin/popcore-admin-service/internal/domain"
)

// PopcoreClient интерфейс клиента core-бэкенда
type PopcoreClient interface {
	// GetHallBookings получает занятые интервалы зала за период
	GetHallBookings(ctx context.Context, hallID int64, from, to time.Time) ([]domain.HallBooking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
