package catalog

import (
	"context"

	"github.com/wdfin/popcore-admin-service/internal/integrations/popcore"
)

// PopcoreClient интерфейс клиента core-бэкенда для операций каталога
type PopcoreClient interface {
	ListMovies(ctx context.Context) ([]popcore.Movie, error)
	CreateMovie(ctx context.Context, input *popcore.MovieInput) (*popcore.Movie, error)
	UpdateMovie(ctx context.Context, movieID int64, input *popcore.MovieInput) (*popcore.Movie, error)
	DeleteMovie(ctx context.Context, movieID int64) error
	ListTheaters(ctx context.Context) ([]popcore.Theater, error)
	ListHalls(ctx context.Context, theaterID int64) ([]popcore.Hall, error)
	ListHallShowtimes(ctx context.Context, hallID int64) ([]popcore.Showtime, error)
}

// Cache интерфейс кэша ответов каталога.
// Промах и ошибка кэша неразличимы - запрос уходит на core-бэкенд.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
	Invalidate(ctx context.Context, keys ...string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
