package admin

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdfin/popcore-admin-service/internal/domain"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO admins`).
		WithArgs("ivanova", "Иванова И.И.", "hash", domain.RoleEmployee).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(5), now, now))

	created, err := repo.Create(context.Background(), &domain.Admin{
		Username:     "ivanova",
		FullName:     "Иванова И.И.",
		PasswordHash: "hash",
		Role:         domain.RoleEmployee,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5), created.ID)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_UsernameTaken(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(`INSERT INTO admins`).
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := repo.Create(context.Background(), &domain.Admin{
		Username:     "ivanova",
		FullName:     "Иванова И.И.",
		PasswordHash: "hash",
		Role:         domain.RoleEmployee,
	})

	assert.ErrorIs(t, err, ErrUsernameTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_ExecError(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(`INSERT INTO admins`).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.Create(context.Background(), &domain.Admin{
		Username:     "ivanova",
		FullName:     "Иванова И.И.",
		PasswordHash: "hash",
		Role:         domain.RoleEmployee,
	})

	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestRepository_GetByUsername(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT .+ FROM admins WHERE username`).
		WithArgs("ivanova").
		WillReturnRows(adminRows().AddRow(int64(5), "ivanova", "Иванова И.И.", "hash", "employee", now, now))

	admin, err := repo.GetByUsername(context.Background(), "ivanova")
	require.NoError(t, err)

	assert.Equal(t, int64(5), admin.ID)
	assert.Equal(t, "ivanova", admin.Username)
	assert.Equal(t, domain.RoleEmployee, admin.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByUsername_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(`SELECT .+ FROM admins WHERE username`).
		WithArgs("nobody").
		WillReturnRows(adminRows())

	_, err := repo.GetByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrAdminNotFound)
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT .+ FROM admins WHERE id`).
		WithArgs(int64(5)).
		WillReturnRows(adminRows().AddRow(int64(5), "ivanova", "Иванова И.И.", "hash", "admin", now, now))

	admin, err := repo.GetByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, admin.Role)
}

func TestRepository_List(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT .+ FROM admins ORDER BY id ASC`).
		WillReturnRows(adminRows().
			AddRow(int64(1), "root", "Главный А.А.", "hash1", "admin", now, now).
			AddRow(int64(2), "ivanova", "Иванова И.И.", "hash2", "employee", now, now))

	list, err := repo.List(context.Background())
	require.NoError(t, err)

	require.Len(t, list, 2)
	assert.Equal(t, "root", list[0].Username)
	assert.Equal(t, "ivanova", list[1].Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func adminRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "username", "full_name", "password_hash", "role", "created_at", "updated_at",
	})
}
