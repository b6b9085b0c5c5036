package list_halls

import (
	popcoreClient "github.com/wdfin/popcore-admin-service/internal/integrations/popcore"
)

// HallResponse HTTP response model
type HallResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// ListHallsResponse HTTP response model
type ListHallsResponse struct {
	Data []HallResponse `json:"data"`
}

// FromClientHalls конвертирует список залов в HTTP response
func FromClientHalls(list []popcoreClient.Hall) *ListHallsResponse {
	out := make([]HallResponse, len(list))
	for i, hall := range list {
		out[i] = HallResponse{
			ID:       hall.ID,
			Name:     hall.Name,
			Capacity: hall.Capacity,
		}
	}
	return &ListHallsResponse{Data: out}
}
