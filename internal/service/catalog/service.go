package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	popcoreClient "github.com/wdfin/popcore-admin-service/internal/integrations/popcore"
)

// Ключи кэша каталога
const (
	cacheKeyMovies   = "catalog:movies"
	cacheKeyTheaters = "catalog:theaters"
)

func cacheKeyHalls(theaterID int64) string {
	return fmt.Sprintf("catalog:halls:%d", theaterID)
}

// Service каталог фильмов, кинотеатров и залов.
// Чтения идут через Redis-кэш с коротким TTL, мутации инвалидируют ключи.
// Источник истины всегда core-бэкенд; кэш только сокращает повторные
// запросы консоли за одними и теми же справочниками.
type Service struct {
	client PopcoreClient
	cache  Cache
	logger Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(client PopcoreClient, cache Cache, logger Logger) *Service {
	return &Service{
		client: client,
		cache:  cache,
		logger: logger,
	}
}

// ListMovies возвращает каталог фильмов
func (s *Service) ListMovies(ctx context.Context) ([]popcoreClient.Movie, error) {
	if raw, ok := s.cache.Get(ctx, cacheKeyMovies); ok {
		var movies []popcoreClient.Movie
		if err := json.Unmarshal(raw, &movies); err == nil {
			return movies, nil
		}
		// Битую запись перезапишем свежими данными
		s.logger.Warn("ListMovies: corrupted cache entry, refetching")
	}

	movies, err := s.client.ListMovies(ctx)
	if err != nil {
		s.logger.Error("ListMovies: popcore error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.cacheSet(ctx, cacheKeyMovies, movies)
	return movies, nil
}

// CreateMovie создает фильм и инвалидирует кэш каталога
func (s *Service) CreateMovie(ctx context.Context, input *popcoreClient.MovieInput) (*popcoreClient.Movie, error) {
	s.logger.Info("CreateMovie: title=%q", input.Title)

	if err := validateMovieInput(input); err != nil {
		s.logger.Warn("CreateMovie: validation failed: %v", err)
		return nil, err
	}

	movie, err := s.client.CreateMovie(ctx, input)
	if err != nil {
		s.logger.Error("CreateMovie: popcore error for title=%q: %v", input.Title, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.cache.Invalidate(ctx, cacheKeyMovies)
	s.logger.Info("CreateMovie: created movie id=%d, title=%q", movie.ID, movie.Title)
	return movie, nil
}

// UpdateMovie обновляет фильм и инвалидирует кэш каталога
func (s *Service) UpdateMovie(ctx context.Context, movieID int64, input *popcoreClient.MovieInput) (*popcoreClient.Movie, error) {
	s.logger.Info("UpdateMovie: id=%d, title=%q", movieID, input.Title)

	if err := validateMovieInput(input); err != nil {
		s.logger.Warn("UpdateMovie: validation failed: %v", err)
		return nil, err
	}

	movie, err := s.client.UpdateMovie(ctx, movieID, input)
	if err != nil {
		if errors.Is(err, popcoreClient.ErrMovieNotFound) {
			s.logger.Warn("UpdateMovie: movie id=%d not found", movieID)
			return nil, ErrMovieNotFound
		}
		s.logger.Error("UpdateMovie: popcore error for id=%d: %v", movieID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.cache.Invalidate(ctx, cacheKeyMovies)
	return movie, nil
}

// DeleteMovie удаляет фильм и инвалидирует кэш каталога
func (s *Service) DeleteMovie(ctx context.Context, movieID int64) error {
	s.logger.Info("DeleteMovie: id=%d", movieID)

	if err := s.client.DeleteMovie(ctx, movieID); err != nil {
		if errors.Is(err, popcoreClient.ErrMovieNotFound) {
			s.logger.Warn("DeleteMovie: movie id=%d not found", movieID)
			return ErrMovieNotFound
		}
		s.logger.Error("DeleteMovie: popcore error for id=%d: %v", movieID, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.cache.Invalidate(ctx, cacheKeyMovies)
	return nil
}

// ListTheaters возвращает кинотеатры сети
func (s *Service) ListTheaters(ctx context.Context) ([]popcoreClient.Theater, error) {
	if raw, ok := s.cache.Get(ctx, cacheKeyTheaters); ok {
		var theaters []popcoreClient.Theater
		if err := json.Unmarshal(raw, &theaters); err == nil {
			return theaters, nil
		}
		s.logger.Warn("ListTheaters: corrupted cache entry, refetching")
	}

	theaters, err := s.client.ListTheaters(ctx)
	if err != nil {
		s.logger.Error("ListTheaters: popcore error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.cacheSet(ctx, cacheKeyTheaters, theaters)
	return theaters, nil
}

// ListHalls возвращает залы кинотеатра
func (s *Service) ListHalls(ctx context.Context, theaterID int64) ([]popcoreClient.Hall, error) {
	key := cacheKeyHalls(theaterID)

	if raw, ok := s.cache.Get(ctx, key); ok {
		var halls []popcoreClient.Hall
		if err := json.Unmarshal(raw, &halls); err == nil {
			return halls, nil
		}
		s.logger.Warn("ListHalls: corrupted cache entry for theater=%d, refetching", theaterID)
	}

	halls, err := s.client.ListHalls(ctx, theaterID)
	if err != nil {
		if errors.Is(err, popcoreClient.ErrTheaterNotFound) {
			s.logger.Warn("ListHalls: theater id=%d not found", theaterID)
			return nil, ErrTheaterNotFound
		}
		s.logger.Error("ListHalls: popcore error for theater=%d: %v", theaterID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.cacheSet(ctx, key, halls)
	return halls, nil
}

// ListHallShowtimes возвращает расписание зала.
// Расписание меняется другими операторами, поэтому не кэшируется.
func (s *Service) ListHallShowtimes(ctx context.Context, hallID int64) ([]popcoreClient.Showtime, error) {
	showtimes, err := s.client.ListHallShowtimes(ctx, hallID)
	if err != nil {
		if errors.Is(err, popcoreClient.ErrHallNotFound) {
			s.logger.Warn("ListHallShowtimes: hall id=%d not found", hallID)
			return nil, ErrHallNotFound
		}
		s.logger.Error("ListHallShowtimes: popcore error for hall=%d: %v", hallID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return showtimes, nil
}

func (s *Service) cacheSet(ctx context.Context, key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("catalog cache: failed to marshal %s: %v", key, err)
		return
	}
	s.cache.Set(ctx, key, raw)
}

func validateMovieInput(input *popcoreClient.MovieInput) error {
	if input.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if input.Description == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidInput)
	}
	if len(input.Genre) == 0 {
		return fmt.Errorf("%w: at least one genre is required", ErrInvalidInput)
	}
	if input.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}
	return nil
}
