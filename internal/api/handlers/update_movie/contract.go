package update_movie

import (
	"context"

	popcoreClient "github.com/wdfin/popcore-admin-service/internal/integrations/popcore"
)

type CatalogService interface {
	UpdateMovie(ctx context.Context, movieID int64, input *popcoreClient.MovieInput) (*popcoreClient.Movie, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
