package domain

// Дефолтные параметры суточной сетки слотов.
// Сетка настраивается через config.toml, но в рамках одного расчета
// параметры не меняются.
const (
	DefaultOpenHour        = 10
	DefaultCloseHour       = 22
	DefaultSlotLengthHours = 2

	// DefaultMaxDurationHours верхняя граница длительности сеанса.
	// Слот с длительностью вне (0, max] отклоняется до любого сетевого вызова.
	DefaultMaxDurationHours = 6
)

// DateFormat формат календарной даты в API и ключах кэша
const DateFormat = "2006-01-02" // YYYY-MM-DD

// AdminRole роль учетной записи администратора
type AdminRole string

const (
	RoleAdmin    AdminRole = "admin"
	RoleEmployee AdminRole = "employee"
)

// IsValid проверяет, что роль входит в список допустимых
func (r AdminRole) IsValid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

// CanManageAdmins возвращает true, если роль позволяет создавать учетные записи
func (r AdminRole) CanManageAdmins() bool {
	return r == RoleAdmin
}
