package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/infohub/infohub-api/internal/api/middleware"
	"github.com/infohub/infohub-api/internal/core/domain"
)

// ctxUser returns the user resolved by the Auth middleware. Its absence
// means the route was mounted without authentication.
func ctxUser(c echo.Context) (*domain.User, error) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return u, nil
}
