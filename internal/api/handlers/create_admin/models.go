package create_admin

import (
	"time"

	"github.com/wdfin/popcore-admin-service/internal/service/admins/models"
)

// CreateAdminRequest HTTP request model
type CreateAdminRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Role     string `json:"role"` // "admin" или "employee"
}

// AdminResponse HTTP response model
type AdminResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FullName  string `json:"fullName"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateAdminRequest) ToServiceRequest() *models.CreateAdminRequest {
	return &models.CreateAdminRequest{
		Username: r.Username,
		Password: r.Password,
		FullName: r.FullName,
		Role:     r.Role,
	}
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.AdminResponse) *AdminResponse {
	return &AdminResponse{
		ID:        resp.ID,
		Username:  resp.Username,
		FullName:  resp.FullName,
		Role:      resp.Role,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
