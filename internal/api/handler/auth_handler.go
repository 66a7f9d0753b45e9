package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/infohub/infohub-api/internal/api/metrics"
	"github.com/infohub/infohub-api/internal/api/middleware"
	"github.com/infohub/infohub-api/internal/core/domain"
	"github.com/infohub/infohub-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        X-Custom-Header  header    string           true  "Required correlation header"
// @Param        body             body      registerRequest  true  "User registration details"
// @Success      201              {object}  domain.User
// @Failure      409              {object}  detailResponse
// @Failure      422              {object}  detailResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Role:     string(domain.RoleUser),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

// Login exchanges username and password for a bearer token. The body may be
// an OAuth2 password form or JSON.
//
// @Summary      Login
// @Tags         auth
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Param        X-Custom-Header  header    string  true  "Required correlation header"
// @Param        username         formData  string  true  "Username"
// @Param        password         formData  string  true  "Password"
// @Success      200              {object}  tokenResponse
// @Failure      401              {object}  detailResponse
// @Failure      403              {object}  detailResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, _, err := h.authService.Authenticate(c.Request().Context(), req.Username, req.Password)
	metrics.ObserveLogin(err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Me returns the authenticated user.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Param        X-Custom-Header  header    string  true  "Required correlation header"
// @Success      200              {object}  domain.User
// @Failure      401              {object}  detailResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Logout revokes the bearer token used for this request.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Param        X-Custom-Header  header    string  true  "Required correlation header"
// @Success      200              {object}  detailResponse
// @Failure      401              {object}  detailResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token, ok := middleware.CurrentToken(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	if err := h.authService.Revoke(c.Request().Context(), token); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detailResponse{Detail: "logged out"})
}
