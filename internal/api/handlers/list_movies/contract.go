package list_movies

import (
	"context"

	popcoreClient "github.com/wdfin/popcore-admin-service/internal/integrations/popcore"
)

type CatalogService interface {
	ListMovies(ctx context.Context) ([]popcoreClient.Movie, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
