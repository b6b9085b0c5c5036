package delete_movie

import (
	"context"
)

type CatalogService interface {
	DeleteMovie(ctx context.Context, movieID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
