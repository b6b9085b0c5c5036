package domain

import "time"

// Admin учетная запись администратора или сотрудника консоли
type Admin struct {
	ID           int64
	Username     string
	FullName     string
	PasswordHash string
	Role         AdminRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanManageAdmins возвращает true, если учетная запись может создавать другие
func (a *Admin) CanManageAdmins() bool {
	return a.Role.CanManageAdmins()
}
