package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"devforum/internal/errors"
	"devforum/internal/model"
)

// UserContextKey is where RequireAuth stores the resolved user on the echo context.
const UserContextKey = "auth_user"

// Authenticator resolves an opaque bearer key to its user.
type Authenticator interface {
	Authenticate(ctx context.Context, key string) (*model.User, error)
}

// RequireAuth returns middleware that rejects requests without a valid bearer
// token. Both "Bearer <key>" and "Token <key>" Authorization schemes are
// accepted; the original web client sends the latter.
func RequireAuth(a Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := extractKey(c.Request().Header.Get(echo.HeaderAuthorization))
			if key == "" {
				return echo.NewHTTPError(http.StatusUnauthorized,
					errors.MapErrorToHTTP(errors.ErrInvalidToken).ToErrorResponse())
			}

			user, err := a.Authenticate(c.Request().Context(), key)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized,
					errors.MapErrorToHTTP(errors.ErrInvalidToken).ToErrorResponse())
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the authenticated user set by RequireAuth.
func CurrentUser(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(UserContextKey).(*model.User)
	return user, ok
}

func extractKey(header string) string {
	for _, scheme := range []string{"Bearer ", "Token "} {
		if strings.HasPrefix(header, scheme) {
			return strings.TrimSpace(header[len(scheme):])
		}
	}
	return ""
}
