package list_halls

import (
	"context"

	popcoreClient "github.com/wdfin/popcore-admin-service/internal/integrations/popcore"
)

type CatalogService interface {
	ListHalls(ctx context.Context, theaterID int64) ([]popcoreClient.Hall, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
