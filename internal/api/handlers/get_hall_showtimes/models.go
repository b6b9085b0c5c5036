package get_hall_showtimes

import (
	popcoreClient "github.com/wdfin/popcore-admin-service/internal/integrations/popcore"
)

// ShowtimeResponse HTTP response model
type ShowtimeResponse struct {
	ID          int64   `json:"id"`
	MovieID     int64   `json:"movieId"`
	MovieTitle  string  `json:"movieTitle,omitempty"`
	HallID      int64   `json:"hallId"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	PriceAmount float64 `json:"priceAmount"`
	Status      string  `json:"status"`
}

// ListShowtimesResponse HTTP response model
type ListShowtimesResponse struct {
	Data []ShowtimeResponse `json:"data"`
}

// FromClientShowtimes конвертирует список сеансов в HTTP response
func FromClientShowtimes(list []popcoreClient.Showtime) *ListShowtimesResponse {
	out := make([]ShowtimeResponse, len(list))
	for i, s := range list {
		out[i] = ShowtimeResponse{
			ID:          s.ID,
			MovieID:     s.MovieID,
			MovieTitle:  s.MovieTitle,
			HallID:      s.HallID,
			StartTime:   s.StartTime,
			EndTime:     s.EndTime,
			PriceAmount: s.PriceAmount,
			Status:      s.Status,
		}
	}
	return &ListShowtimesResponse{Data: out}
}
