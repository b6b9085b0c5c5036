package models

import (
	"time"

	"github.com/wdfin/popcore-admin-service/internal/domain"
)

// CreateAdminRequest запрос на создание учетной записи
type CreateAdminRequest struct {
	Username string
	Password string
	FullName string
	Role     string // "admin" или "employee"
}

// AdminResponse учетная запись без хэша пароля
type AdminResponse struct {
	ID        int64
	Username  string
	FullName  string
	Role      string
	CreatedAt time.Time
}

// LoginRequest запрос на вход
type LoginRequest struct {
	Username string
	Password string
}

// LoginResponse выпущенный токен и данные учетной записи
type LoginResponse struct {
	Token     string
	ExpiresAt time.Time
	Username  string
	FullName  string
	Role      string
}

// FromDomainAdmin конвертирует domain.Admin в ответ без хэша пароля
func FromDomainAdmin(a *domain.Admin) *AdminResponse {
	return &AdminResponse{
		ID:        a.ID,
		Username:  a.Username,
		FullName:  a.FullName,
		Role:      string(a.Role),
		CreatedAt: a.CreatedAt,
	}
}

// FromDomainAdminList конвертирует список учетных записей
func FromDomainAdminList(list []*domain.Admin) []*AdminResponse {
	out := make([]*AdminResponse, len(list))
	for i, a := range list {
		out[i] = FromDomainAdmin(a)
	}
	return out
}
