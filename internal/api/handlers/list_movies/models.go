package list_movies

import (
	popcoreClient "github.com/wdfin/popcore-admin-service/internal/integrations/popcore"
)

// MovieResponse HTTP response model
type MovieResponse struct {
	ID              int64    `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Genre           []string `json:"genre"`
	DurationMinutes int      `json:"durationMinutes"`
	ReleaseDate     string   `json:"releaseDate"`
	PosterURL       string   `json:"posterUrl"`
}

// ListMoviesResponse HTTP response model
type ListMoviesResponse struct {
	Data []MovieResponse `json:"data"`
}

// FromClientMovie конвертирует модель core-бэкенда в HTTP response
func FromClientMovie(m popcoreClient.Movie) MovieResponse {
	return MovieResponse{
		ID:              m.ID,
		Title:           m.Title,
		Description:     m.Description,
		Genre:           m.Genre,
		DurationMinutes: m.DurationMinutes,
		ReleaseDate:     m.ReleaseDate,
		PosterURL:       m.PosterURL,
	}
}

// FromClientMovies конвертирует список фильмов в HTTP response
func FromClientMovies(list []popcoreClient.Movie) *ListMoviesResponse {
	out := make([]MovieResponse, len(list))
	for i, m := range list {
		out[i] = FromClientMovie(m)
	}
	return &ListMoviesResponse{Data: out}
}
