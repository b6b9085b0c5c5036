package login

import (
	"time"

	"github.com/wdfin/popcore-admin-service/internal/service/admins/models"
)

// LoginRequest HTTP request model
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
	Username  string `json:"username"`
	FullName  string `json:"fullName"`
	Role      string `json:"role"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *LoginRequest) ToServiceRequest() *models.LoginRequest {
	return &models.LoginRequest{
		Username: r.Username,
		Password: r.Password,
	}
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.LoginResponse) *LoginResponse {
	return &LoginResponse{
		Token:     resp.Token,
		ExpiresAt: resp.ExpiresAt.Format(time.RFC3339),
		Username:  resp.Username,
		FullName:  resp.FullName,
		Role:      resp.Role,
	}
}
