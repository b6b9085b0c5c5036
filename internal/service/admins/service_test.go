package admins

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/wdfin/popcore-admin-service/internal/domain"
	adminRepo "github.com/wdfin/popcore-admin-service/internal/infra/storage/admin"
	"github.com/wdfin/popcore-admin-service/internal/service/admins/models"
)

type fakeAdminRepository struct {
	byUsername map[string]*domain.Admin
	nextID     int64
}

func newFakeAdminRepository() *fakeAdminRepository {
	return &fakeAdminRepository{byUsername: make(map[string]*domain.Admin)}
}

func (f *fakeAdminRepository) Create(_ context.Context, admin *domain.Admin) (*domain.Admin, error) {
	if _, ok := f.byUsername[admin.Username]; ok {
		return nil, adminRepo.ErrUsernameTaken
	}

	f.nextID++
	created := *admin
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	f.byUsername[admin.Username] = &created

	return &created, nil
}

func (f *fakeAdminRepository) GetByUsername(_ context.Context, username string) (*domain.Admin, error) {
	admin, ok := f.byUsername[username]
	if !ok {
		return nil, adminRepo.ErrAdminNotFound
	}
	return admin, nil
}

func (f *fakeAdminRepository) List(_ context.Context) ([]*domain.Admin, error) {
	out := make([]*domain.Admin, 0, len(f.byUsername))
	for _, admin := range f.byUsername {
		out = append(out, admin)
	}
	return out, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const testSecret = "test-secret"

func newService(repo AdminRepository) *Service {
	// MinCost, чтобы тесты не тратили время на хэширование
	return NewService(repo, testSecret, time.Hour, bcrypt.MinCost, nopLogger{})
}

func createRequest() *models.CreateAdminRequest {
	return &models.CreateAdminRequest{
		Username: "ivanova",
		Password: "secret123",
		FullName: "Иванова И.И.",
		Role:     "employee",
	}
}

func TestCreate_Success(t *testing.T) {
	repo := newFakeAdminRepository()
	svc := newService(repo)

	resp, err := svc.Create(context.Background(), domain.RoleAdmin, createRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "ivanova", resp.Username)
	assert.Equal(t, "employee", resp.Role)

	// Пароль сохранен только в виде bcrypt-хэша
	stored := repo.byUsername["ivanova"]
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")))
}

func TestCreate_EmployeeForbidden(t *testing.T) {
	svc := newService(newFakeAdminRepository())

	_, err := svc.Create(context.Background(), domain.RoleEmployee, createRequest())
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCreate_UsernameTaken(t *testing.T) {
	repo := newFakeAdminRepository()
	svc := newService(repo)

	_, err := svc.Create(context.Background(), domain.RoleAdmin, createRequest())
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), domain.RoleAdmin, createRequest())
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestCreate_Validation(t *testing.T) {
	svc := newService(newFakeAdminRepository())

	tests := []struct {
		name   string
		mutate func(*models.CreateAdminRequest)
	}{
		{"empty username", func(r *models.CreateAdminRequest) { r.Username = "" }},
		{"empty password", func(r *models.CreateAdminRequest) { r.Password = "" }},
		{"empty full name", func(r *models.CreateAdminRequest) { r.FullName = "" }},
		{"unknown role", func(r *models.CreateAdminRequest) { r.Role = "superuser" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := createRequest()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), domain.RoleAdmin, req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestLogin_Success(t *testing.T) {
	repo := newFakeAdminRepository()
	svc := newService(repo)

	_, err := svc.Create(context.Background(), domain.RoleAdmin, createRequest())
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Username: "ivanova",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, "ivanova", resp.Username)
	assert.Equal(t, "employee", resp.Role)
	assert.True(t, resp.ExpiresAt.After(time.Now()))

	// Токен подписан нашим секретом и несет ожидаемые claims
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(resp.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	assert.Equal(t, float64(1), claims["sub"])
	assert.Equal(t, "ivanova", claims["username"])
	assert.Equal(t, "employee", claims["role"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	repo := newFakeAdminRepository()
	svc := newService(repo)

	_, err := svc.Create(context.Background(), domain.RoleAdmin, createRequest())
	require.NoError(t, err)

	// Неизвестный логин и неверный пароль неразличимы для клиента
	_, err = svc.Login(context.Background(), &models.LoginRequest{Username: "nobody", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &models.LoginRequest{Username: "ivanova", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_EmptyFields(t *testing.T) {
	svc := newService(newFakeAdminRepository())

	_, err := svc.Login(context.Background(), &models.LoginRequest{Username: "", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Login(context.Background(), &models.LoginRequest{Username: "x", Password: ""})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestList_RequiresAdminRole(t *testing.T) {
	repo := newFakeAdminRepository()
	svc := newService(repo)

	_, err := svc.Create(context.Background(), domain.RoleAdmin, createRequest())
	require.NoError(t, err)

	list, err := svc.List(context.Background(), domain.RoleAdmin)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.List(context.Background(), domain.RoleEmployee)
	assert.ErrorIs(t, err, ErrAccessDenied)
}
