package update_movie

import (
	popcoreClient "github.com/wdfin/popcore-admin-service/internal/integrations/popcore"
)

// MovieRequest HTTP request model
type MovieRequest struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Genre           []string `json:"genre"`
	DurationMinutes int      `json:"durationMinutes"`
	ReleaseDate     string   `json:"releaseDate"`
	PosterURL       string   `json:"posterUrl"`
}

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

// ToClientInput конвертирует HTTP запрос в модель core-бэкенда
func (r *MovieRequest) ToClientInput() *popcoreClient.MovieInput {
	return &popcoreClient.MovieInput{
		Title:           r.Title,
		Description:     r.Description,
		Genre:           r.Genre,
		DurationMinutes: r.DurationMinutes,
		ReleaseDate:     r.ReleaseDate,
		PosterURL:       r.PosterURL,
	}
}

// FromClientMovie конвертирует модель core-бэкенда в HTTP response
func FromClientMovie(m *popcoreClient.Movie) *MovieResponse {
	return &MovieResponse{
		ID:              m.ID,
		Title:           m.Title,
		Description:     m.Description,
		Genre:           m.Genre,
		DurationMinutes: m.DurationMinutes,
		ReleaseDate:     m.ReleaseDate,
		PosterURL:       m.PosterURL,
	}
}
