package admin

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/wdfin/popcore-admin-service/internal/domain"
	"github.com/wdfin/popcore-admin-service/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки PostgreSQL для нарушения unique constraint
const pgUniqueViolation = "23505"

// Repository репозиторий учетных записей администраторов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория администраторов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает учетную запись.
// Дубликат username превращается в ErrUsernameTaken.
func (r *Repository) Create(ctx context.Context, admin *domain.Admin) (*domain.Admin, error) {
	query, args, err := psqlbuilder.Insert("admins").
		Columns(
			"username",
			"full_name",
			"password_hash",
			"role",
		).
		Values(
			admin.Username,
			admin.FullName,
			admin.PasswordHash,
			admin.Role,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&admin.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	admin.CreatedAt = createdAt.Time
	admin.UpdatedAt = updatedAt.Time

	return admin, nil
}

// GetByUsername получает учетную запись по username
func (r *Repository) GetByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	return r.getOne(ctx, squirrel.Eq{"username": username})
}

// GetByID получает учетную запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Admin, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// List возвращает все учетные записи в порядке создания
func (r *Repository) List(ctx context.Context) ([]*domain.Admin, error) {
	query, args, err := psqlbuilder.Select(adminColumns()...).
		From("admins").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	admins := make([]*domain.Admin, 0)
	for rows.Next() {
		admin, err := scanAdmin(rows)
		if err != nil {
			return nil, err
		}
		admins = append(admins, admin)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrExecQuery, err)
	}

	return admins, nil
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq) (*domain.Admin, error) {
	query, args, err := psqlbuilder.Select(adminColumns()...).
		From("admins").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	var admin domain.Admin
	var createdAt, updatedAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&admin.ID,
		&admin.Username,
		&admin.FullName,
		&admin.PasswordHash,
		&admin.Role,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan admin: %v", ErrScanRow, err)
	}

	admin.CreatedAt = createdAt.Time
	admin.UpdatedAt = updatedAt.Time

	return &admin, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAdmin(row rowScanner) (*domain.Admin, error) {
	var admin domain.Admin
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&admin.ID,
		&admin.Username,
		&admin.FullName,
		&admin.PasswordHash,
		&admin.Role,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: scanAdmin: %v", ErrScanRow, err)
	}

	admin.CreatedAt = createdAt.Time
	admin.UpdatedAt = updatedAt.Time

	return &admin, nil
}

func adminColumns() []string {
	return []string{
		"id",
		"username",
		"full_name",
		"password_hash",
		"role",
		"created_at",
		"updated_at",
	}
}
