package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/infohub/infohub-api/internal/core/domain"
)

type stubResolver struct {
	resolveFn func(ctx context.Context, token string) (*domain.User, error)
}

func (s *stubResolver) Resolve(ctx context.Context, token string) (*domain.User, error) {
	return s.resolveFn(ctx, token)
}

func rejectAll(t *testing.T) *stubResolver {
	return &stubResolver{resolveFn: func(ctx context.Context, token string) (*domain.User, error) {
		t.Fatalf("resolver should not be called")
		return nil, nil
	}}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	resolver := &stubResolver{resolveFn: func(ctx context.Context, token string) (*domain.User, error) {
		if token != "good-token" {
			t.Fatalf("unexpected token %q", token)
		}
		return &domain.User{ID: "u1", Username: "alice", Role: domain.RoleAdmin, IsActive: true}, nil
	}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(resolver)(func(c echo.Context) error {
		called = true
		u, ok := CurrentUser(c)
		if !ok || u.Username != "alice" {
			t.Fatalf("user not set: %+v", u)
		}
		if tok, _ := CurrentToken(c); tok != "good-token" {
			t.Fatalf("token not set: %q", tok)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(rejectAll(t))(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if rec.Header().Get("WWW-Authenticate") != "Bearer" {
		t.Fatalf("expected WWW-Authenticate challenge")
	}
}

func TestAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	for _, value := range []string{"Token abc", "Bearer", "Bearer   "} {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", value)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := Auth(rejectAll(t))(func(c echo.Context) error {
			t.Fatalf("should not reach next")
			return nil
		})

		if err := handler(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%q: expected 401, got %d", value, rec.Code)
		}
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	e := echo.New()
	resolver := &stubResolver{resolveFn: func(ctx context.Context, token string) (*domain.User, error) {
		return nil, fmt.Errorf("%w: invalid token", domain.ErrUnauthorized)
	}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(resolver)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_ResolverFailurePropagates(t *testing.T) {
	e := echo.New()
	boom := errors.New("store down")
	resolver := &stubResolver{resolveFn: func(ctx context.Context, token string) (*domain.User, error) {
		return nil, boom
	}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer tok")
	c := e.NewContext(req, httptest.NewRecorder())

	err := Auth(resolver)(func(c echo.Context) error { return nil })(c)
	if !errors.Is(err, boom) {
		t.Fatalf("expected store error, got %v", err)
	}
}
