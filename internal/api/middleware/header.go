package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// RequiredHeader rejects requests that lack a non-blank value for name.
// It runs before authentication so unauthenticated requests get 400, not 401.
func RequiredHeader(name string, skipper echomiddleware.Skipper) echo.MiddlewareFunc {
	if skipper == nil {
		skipper = echomiddleware.DefaultSkipper
	}
	msg := "missing required header " + name

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skipper(c) {
				return next(c)
			}
			if strings.TrimSpace(c.Request().Header.Get(name)) == "" {
				return echo.NewHTTPError(http.StatusBadRequest, msg)
			}
			return next(c)
		}
	}
}

// PathPrefixSkipper skips requests whose path starts with any of prefixes.
func PathPrefixSkipper(prefixes ...string) echomiddleware.Skipper {
	return func(c echo.Context) bool {
		path := c.Request().URL.Path
		for _, p := range prefixes {
			if path == p || strings.HasPrefix(path, strings.TrimSuffix(p, "/")+"/") {
				return true
			}
		}
		return false
	}
}
