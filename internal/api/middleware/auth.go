package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/wdfin/popcore-admin-service/internal/api/handlers"
	"github.com/wdfin/popcore-admin-service/internal/domain"
)

const msgUnauthorized = "требуется авторизация"

type contextKey string

const identityKey contextKey = "identity"

// Identity данные аутентифицированного администратора из JWT
type Identity struct {
	AdminID  int64
	Username string
	Role     domain.AdminRole
}

// IdentityFromContext возвращает Identity, положенный Auth middleware.
// Второй результат false, если запрос не проходил аутентификацию.
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(identityKey).(*Identity)
	return id, ok
}

type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth проверяет Bearer JWT и кладет Identity в контекст запроса
func Auth(secret []byte, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := parseToken(r, secret)
			if err != nil {
				logger.Warn("%s %s - Unauthorized: %v", r.Method, r.URL.Path, err)
				handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func parseToken(r *http.Request, secret []byte) (*Identity, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return nil, fmt.Errorf("missing Authorization header")
	}

	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return nil, fmt.Errorf("invalid Authorization header format")
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return nil, fmt.Errorf("missing sub claim")
	}
	username, _ := claims["username"].(string)
	roleStr, _ := claims["role"].(string)

	role := domain.AdminRole(roleStr)
	if !role.IsValid() {
		return nil, fmt.Errorf("unknown role %q", roleStr)
	}

	return &Identity{
		AdminID:  int64(sub),
		Username: username,
		Role:     role,
	}, nil
}
