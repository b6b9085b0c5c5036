package list_theaters

import (
	popcoreClient "github.com/wdfin/popcore-admin-service/internal/integrations/popcore"
)

// TheaterResponse HTTP response model
type TheaterResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
}

// ListTheatersResponse HTTP response model
type ListTheatersResponse struct {
	Data []TheaterResponse `json:"data"`
}

// FromClientTheaters конвертирует список кинотеатров в HTTP response
func FromClientTheaters(list []popcoreClient.Theater) *ListTheatersResponse {
	out := make([]TheaterResponse, len(list))
	for i, t := range list {
		out[i] = TheaterResponse{
			ID:   t.ID,
			Name: t.Name,
			City: t.City,
		}
	}
	return &ListTheatersResponse{Data: out}
}
