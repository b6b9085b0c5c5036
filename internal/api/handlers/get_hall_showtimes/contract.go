package get_hall_showtimes

import (
	"context"

	popcoreClient "github.com/wdfin/popcore-admin-service/internal/integrations/popcore"
)

type CatalogService interface {
	ListHallShowtimes(ctx context.Context, hallID int64) ([]popcoreClient.Showtime, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
