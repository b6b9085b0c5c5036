package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	popcoreClient "github.com/wdfin/popcore-admin-service/internal/integrations/popcore"
)

type fakePopcoreClient struct {
	movies   []popcoreClient.Movie
	theaters []popcoreClient.Theater
	halls    []popcoreClient.Hall
	err      error

	listMoviesCalls int
	listHallsCalls  int
}

func (f *fakePopcoreClient) ListMovies(context.Context) ([]popcoreClient.Movie, error) {
	f.listMoviesCalls++
	return f.movies, f.err
}

func (f *fakePopcoreClient) CreateMovie(_ context.Context, input *popcoreClient.MovieInput) (*popcoreClient.Movie, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &popcoreClient.Movie{ID: 100, Title: input.Title}, nil
}

func (f *fakePopcoreClient) UpdateMovie(_ context.Context, movieID int64, input *popcoreClient.MovieInput) (*popcoreClient.Movie, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &popcoreClient.Movie{ID: movieID, Title: input.Title}, nil
}

func (f *fakePopcoreClient) DeleteMovie(context.Context, int64) error {
	return f.err
}

func (f *fakePopcoreClient) ListTheaters(context.Context) ([]popcoreClient.Theater, error) {
	return f.theaters, f.err
}

func (f *fakePopcoreClient) ListHalls(context.Context, int64) ([]popcoreClient.Hall, error) {
	f.listHallsCalls++
	return f.halls, f.err
}

func (f *fakePopcoreClient) ListHallShowtimes(context.Context, int64) ([]popcoreClient.Showtime, error) {
	return nil, f.err
}

// fakeCache кэш в памяти без TTL
type fakeCache struct {
	entries map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (f *fakeCache) Get(_ context.Context, key string) ([]byte, bool) {
	raw, ok := f.entries[key]
	return raw, ok
}

func (f *fakeCache) Set(_ context.Context, key string, value []byte) {
	f.entries[key] = value
}

func (f *fakeCache) Invalidate(_ context.Context, keys ...string) {
	for _, key := range keys {
		delete(f.entries, key)
	}
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func movieInput() *popcoreClient.MovieInput {
	return &popcoreClient.MovieInput{
		Title:           "Интерстеллар",
		Description:     "Фантастика о космосе",
		Genre:           []string{"фантастика"},
		DurationMinutes: 169,
	}
}

func TestListMovies_CachesResult(t *testing.T) {
	client := &fakePopcoreClient{
		movies: []popcoreClient.Movie{{ID: 1, Title: "Интерстеллар"}},
	}
	svc := NewService(client, newFakeCache(), nopLogger{})

	first, err := svc.ListMovies(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Второй запрос отдается из кэша без похода на бэкенд
	second, err := svc.ListMovies(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, client.listMoviesCalls)
}

func TestListMovies_CorruptedCacheRefetched(t *testing.T) {
	client := &fakePopcoreClient{
		movies: []popcoreClient.Movie{{ID: 1, Title: "Интерстеллар"}},
	}
	cache := newFakeCache()
	cache.entries["catalog:movies"] = []byte("не json")
	svc := NewService(client, cache, nopLogger{})

	movies, err := svc.ListMovies(context.Background())
	require.NoError(t, err)
	assert.Len(t, movies, 1)
	assert.Equal(t, 1, client.listMoviesCalls)
}

func TestCreateMovie_InvalidatesCache(t *testing.T) {
	client := &fakePopcoreClient{
		movies: []popcoreClient.Movie{{ID: 1}},
	}
	cache := newFakeCache()
	svc := NewService(client, cache, nopLogger{})

	_, err := svc.ListMovies(context.Background())
	require.NoError(t, err)
	require.Contains(t, cache.entries, "catalog:movies")

	_, err = svc.CreateMovie(context.Background(), movieInput())
	require.NoError(t, err)

	assert.NotContains(t, cache.entries, "catalog:movies")
}

func TestCreateMovie_Validation(t *testing.T) {
	svc := NewService(&fakePopcoreClient{}, newFakeCache(), nopLogger{})

	tests := []struct {
		name   string
		mutate func(*popcoreClient.MovieInput)
	}{
		{"empty title", func(m *popcoreClient.MovieInput) { m.Title = "" }},
		{"empty description", func(m *popcoreClient.MovieInput) { m.Description = "" }},
		{"no genres", func(m *popcoreClient.MovieInput) { m.Genre = nil }},
		{"zero duration", func(m *popcoreClient.MovieInput) { m.DurationMinutes = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := movieInput()
			tt.mutate(input)

			_, err := svc.CreateMovie(context.Background(), input)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdateMovie_NotFound(t *testing.T) {
	client := &fakePopcoreClient{err: popcoreClient.ErrMovieNotFound}
	svc := NewService(client, newFakeCache(), nopLogger{})

	_, err := svc.UpdateMovie(context.Background(), 404, movieInput())
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestDeleteMovie_NotFound(t *testing.T) {
	client := &fakePopcoreClient{err: popcoreClient.ErrMovieNotFound}
	svc := NewService(client, newFakeCache(), nopLogger{})

	err := svc.DeleteMovie(context.Background(), 404)
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestListHalls_CachedPerTheater(t *testing.T) {
	client := &fakePopcoreClient{
		halls: []popcoreClient.Hall{{ID: 7, Name: "Зал 1", Capacity: 120}},
	}
	svc := NewService(client, newFakeCache(), nopLogger{})

	_, err := svc.ListHalls(context.Background(), 1)
	require.NoError(t, err)
	_, err = svc.ListHalls(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, client.listHallsCalls)

	// Другой кинотеатр кэшируется отдельным ключом
	_, err = svc.ListHalls(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, client.listHallsCalls)
}

func TestListHalls_TheaterNotFound(t *testing.T) {
	client := &fakePopcoreClient{err: popcoreClient.ErrTheaterNotFound}
	svc := NewService(client, newFakeCache(), nopLogger{})

	_, err := svc.ListHalls(context.Background(), 404)
	assert.ErrorIs(t, err, ErrTheaterNotFound)
}

func TestListMovies_BackendError(t *testing.T) {
	client := &fakePopcoreClient{err: errors.New("connection refused")}
	svc := NewService(client, newFakeCache(), nopLogger{})

	_, err := svc.ListMovies(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
