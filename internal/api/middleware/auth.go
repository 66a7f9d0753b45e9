package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/infohub/infohub-api/internal/core/domain"
)

const (
	userContextKey  = "user"
	tokenContextKey = "token"
)

// TokenResolver turns a bearer token into the user it was issued to.
type TokenResolver interface {
	Resolve(ctx context.Context, token string) (*domain.User, error)
}

// Auth resolves the bearer token and injects the user into context.
func Auth(resolver TokenResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return unauthorized(c, "not authenticated")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
				return unauthorized(c, "invalid authorization header")
			}
			token := strings.TrimSpace(parts[1])

			user, err := resolver.Resolve(c.Request().Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrUnauthorized) {
					return unauthorized(c, "could not validate credentials")
				}
				return err
			}

			c.Set(userContextKey, user)
			c.Set(tokenContextKey, token)

			return next(c)
		}
	}
}

// CurrentUser returns the user stored by Auth.
func CurrentUser(c echo.Context) (*domain.User, bool) {
	u, ok := c.Get(userContextKey).(*domain.User)
	return u, ok && u != nil
}

// CurrentToken returns the raw bearer token stored by Auth.
func CurrentToken(c echo.Context) (string, bool) {
	t, ok := c.Get(tokenContextKey).(string)
	return t, ok && t != ""
}

func unauthorized(c echo.Context, msg string) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	return echo.NewHTTPError(http.StatusUnauthorized, msg)
}
