package admins

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/wdfin/popcore-admin-service/internal/domain"
	adminRepo "github.com/wdfin/popcore-admin-service/internal/infra/storage/admin"
	"github.com/wdfin/popcore-admin-service/internal/service/admins/models"
)

// Service сервис учетных записей консоли: создание и аутентификация.
// Токен - удобство для консоли, а не граница безопасности: схема
// сознательно минимальна (HS256, без refresh-токенов и блокировок).
type Service struct {
	repo       AdminRepository
	jwtSecret  []byte
	tokenTTL   time.Duration
	bcryptCost int
	logger     Logger
}

// NewService создает новый экземпляр сервиса учетных записей
func NewService(repo AdminRepository, jwtSecret string, tokenTTL time.Duration, bcryptCost int, logger Logger) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		repo:       repo,
		jwtSecret:  []byte(jwtSecret),
		tokenTTL:   tokenTTL,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Create создает учетную запись. Доступно только роли admin.
func (s *Service) Create(ctx context.Context, actorRole domain.AdminRole, req *models.CreateAdminRequest) (*models.AdminResponse, error) {
	s.logger.Info("CreateAdmin: username=%s, role=%s, actor_role=%s", req.Username, req.Role, actorRole)

	if !actorRole.CanManageAdmins() {
		s.logger.Warn("CreateAdmin: role %s is not allowed to create accounts", actorRole)
		return nil, ErrAccessDenied
	}

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("CreateAdmin: validation failed: %v", err)
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		s.logger.Error("CreateAdmin: failed to hash password for username=%s: %v", req.Username, err)
		return nil, fmt.Errorf("%w: failed to hash password: %v", ErrInternal, err)
	}

	created, err := s.repo.Create(ctx, &domain.Admin{
		Username:     req.Username,
		FullName:     req.FullName,
		PasswordHash: string(hash),
		Role:         domain.AdminRole(req.Role),
	})
	if err != nil {
		if errors.Is(err, adminRepo.ErrUsernameTaken) {
			s.logger.Warn("CreateAdmin: username %s already taken", req.Username)
			return nil, ErrUsernameTaken
		}
		s.logger.Error("CreateAdmin: repository error for username=%s: %v", req.Username, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateAdmin: successfully created admin id=%d, username=%s", created.ID, created.Username)
	return models.FromDomainAdmin(created), nil
}

// List возвращает все учетные записи. Доступно только роли admin.
func (s *Service) List(ctx context.Context, actorRole domain.AdminRole) ([]*models.AdminResponse, error) {
	if !actorRole.CanManageAdmins() {
		s.logger.Warn("ListAdmins: role %s is not allowed to list accounts", actorRole)
		return nil, ErrAccessDenied
	}

	list, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("ListAdmins: repository error: %v", err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAdminList(list), nil
}

// Login проверяет пару логин/пароль и выпускает HS256 JWT
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	s.logger.Info("Login: username=%s", req.Username)

	if req.Username == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	account, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, adminRepo.ErrAdminNotFound) {
			s.logger.Warn("Login: unknown username %s", req.Username)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for username=%s: %v", req.Username, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)) != nil {
		s.logger.Warn("Login: wrong password for username=%s", req.Username)
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.issueToken(account)
	if err != nil {
		s.logger.Error("Login: failed to issue token for username=%s: %v", req.Username, err)
		return nil, fmt.Errorf("%w: failed to issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: issued token for admin id=%d, username=%s, role=%s", account.ID, account.Username, account.Role)
	return &models.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Username:  account.Username,
		FullName:  account.FullName,
		Role:      string(account.Role),
	}, nil
}

// issueToken выпускает HS256 JWT со стандартными claims: sub, role, exp, iat
func (s *Service) issueToken(account *domain.Admin) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(s.tokenTTL)

	claims := jwt.MapClaims{
		"sub":      account.ID,
		"username": account.Username,
		"role":     string(account.Role),
		"exp":      expiresAt.Unix(),
		"iat":      now.Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", time.Time{}, err
	}

	return token, expiresAt, nil
}

func validateCreateRequest(req *models.CreateAdminRequest) error {
	if req.Username == "" {
		return fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if req.Password == "" {
		return fmt.Errorf("%w: password is required", ErrInvalidInput)
	}
	if req.FullName == "" {
		return fmt.Errorf("%w: full name is required", ErrInvalidInput)
	}
	if !domain.AdminRole(req.Role).IsValid() {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidInput, req.Role)
	}
	return nil
}
