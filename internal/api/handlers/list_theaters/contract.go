package list_theaters

import (
	"context"

	popcoreClient "github.com/wdfin/popcore-admin-service/internal/integrations/popcore"
)

type CatalogService interface {
	ListTheaters(ctx context.Context) ([]popcoreClient.Theater, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
