package list_admins

import (
	"time"

	"github.com/wdfin/popcore-admin-service/internal/service/admins/models"
)

// AdminResponse HTTP response model
type AdminResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FullName  string `json:"fullName"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

// ListAdminsResponse HTTP response model
type ListAdminsResponse struct {
	Data []AdminResponse `json:"data"`
}

// FromServiceResponse конвертирует список учетных записей в HTTP response
func FromServiceResponse(list []*models.AdminResponse) *ListAdminsResponse {
	out := make([]AdminResponse, len(list))
	for i, a := range list {
		out[i] = AdminResponse{
			ID:        a.ID,
			Username:  a.Username,
			FullName:  a.FullName,
			Role:      a.Role,
			CreatedAt: a.CreatedAt.Format(time.RFC3339),
		}
	}
	return &ListAdminsResponse{Data: out}
}
