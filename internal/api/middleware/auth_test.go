package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdfin/popcore-admin-service/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{}) {}

var testSecret = []byte("test-secret")

func signToken(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return token
}

func validClaims() jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"sub":      int64(5),
		"username": "ivanova",
		"role":     "employee",
		"exp":      now.Add(time.Hour).Unix(),
		"iat":      now.Unix(),
	}
}

func runAuth(t *testing.T, header string) (*httptest.ResponseRecorder, *Identity) {
	t.Helper()

	var captured *Identity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := IdentityFromContext(r.Context())
		require.True(t, ok)
		captured = id
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/movies", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()

	Auth(testSecret, nopLogger{})(next).ServeHTTP(rec, req)
	return rec, captured
}

func TestAuth_ValidToken(t *testing.T) {
	token := signToken(t, testSecret, validClaims())

	rec, identity := runAuth(t, "Bearer "+token)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, identity)
	assert.Equal(t, int64(5), identity.AdminID)
	assert.Equal(t, "ivanova", identity.Username)
	assert.Equal(t, domain.RoleEmployee, identity.Role)
}

func TestAuth_Rejections(t *testing.T) {
	expired := validClaims()
	expired["exp"] = time.Now().Add(-time.Hour).Unix()

	badRole := validClaims()
	badRole["role"] = "superuser"

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not a bearer token", "Basic dXNlcjpwYXNz"},
		{"garbage token", "Bearer not.a.jwt"},
		{"wrong secret", "Bearer " + signToken(t, []byte("other-secret"), validClaims())},
		{"expired token", "Bearer " + signToken(t, testSecret, expired)},
		{"unknown role", "Bearer " + signToken(t, testSecret, badRole)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, identity := runAuth(t, tt.header)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Nil(t, identity)
		})
	}
}
