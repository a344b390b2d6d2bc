package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"devforum/internal/errors"
	"devforum/internal/model"
)

type stubAuthenticator struct {
	user *model.User
}

func (s *stubAuthenticator) Authenticate(ctx context.Context, key string) (*model.User, error) {
	if s.user != nil && key == "good-key" {
		return s.user, nil
	}
	return nil, errors.ErrInvalidToken
}

func TestRequireAuth(t *testing.T) {
	e := echo.New()
	user := &model.User{ID: 1, Username: "alice"}

	next := func(c echo.Context) error {
		current, ok := CurrentUser(c)
		assert.True(t, ok)
		assert.Equal(t, user, current)
		return c.NoContent(http.StatusOK)
	}
	handler := RequireAuth(&stubAuthenticator{user: user})(next)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{name: "missing header", authHeader: "", wantStatus: http.StatusUnauthorized},
		{name: "unknown scheme", authHeader: "Basic good-key", wantStatus: http.StatusUnauthorized},
		{name: "bad key", authHeader: "Bearer bad-key", wantStatus: http.StatusUnauthorized},
		{name: "bearer scheme", authHeader: "Bearer good-key", wantStatus: http.StatusOK},
		{name: "token scheme", authHeader: "Token good-key", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.authHeader != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.authHeader)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := handler(c)

			if tt.wantStatus == http.StatusOK {
				assert.NoError(t, err)
				assert.Equal(t, http.StatusOK, rec.Code)
			} else {
				httpErr, ok := err.(*echo.HTTPError)
				assert.True(t, ok)
				assert.Equal(t, tt.wantStatus, httpErr.Code)
			}
		})
	}
}

func TestNewKey(t *testing.T) {
	a, b := NewKey(), NewKey()
	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}
