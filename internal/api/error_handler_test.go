package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/infohub/infohub-api/internal/core/domain"
)

func TestHTTPErrorHandler(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		code   int
		detail string
	}{
		{"validation", fmt.Errorf("create contact: %w", domain.NewValidationError(
			domain.FieldError{Field: "phone_number", Message: "phone_number is required"},
			domain.FieldError{Field: "email", Message: "email must be a valid email"},
		)), http.StatusUnprocessableEntity, "phone_number is required; email must be a valid email"},
		{"not found keeps resource name", fmt.Errorf("get contact: %w", domain.NotFound("contact")), http.StatusNotFound, "contact not found"},
		{"bare not found", domain.ErrNotFound, http.StatusNotFound, "not found"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "incorrect username or password"},
		{"unauthorized", fmt.Errorf("%w: invalid token", domain.ErrUnauthorized), http.StatusUnauthorized, "could not validate credentials"},
		{"inactive", domain.ErrInactiveUser, http.StatusForbidden, "inactive user"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
		{"user exists", fmt.Errorf("register user: %w", domain.ErrUserExists), http.StatusConflict, "user already exists"},
		{"echo error", echo.NewHTTPError(http.StatusBadRequest, "missing required header X-Custom-Header"), http.StatusBadRequest, "missing required header X-Custom-Header"},
		{"unexpected", errors.New("db exploded"), http.StatusInternalServerError, "internal server error"},
	}

	h := NewHTTPErrorHandler(zerolog.Nop())
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			h(tc.err, c)

			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if body["detail"] != tc.detail {
				t.Fatalf("expected detail %q, got %q", tc.detail, body["detail"])
			}
		})
	}
}

func TestHTTPErrorHandler_CommittedResponseUntouched(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	_ = c.NoContent(http.StatusAccepted)

	NewHTTPErrorHandler(zerolog.Nop())(errors.New("late"), c)

	if rec.Code != http.StatusAccepted || rec.Body.Len() != 0 {
		t.Fatalf("committed response was modified: %d %q", rec.Code, rec.Body.String())
	}
}
