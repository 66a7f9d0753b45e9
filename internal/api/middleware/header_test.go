package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func newHeaderEcho() *echo.Echo {
	e := echo.New()
	e.Use(RequiredHeader("X-Custom-Header", PathPrefixSkipper("/health", "/metrics")))
	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	e.GET("/contacts", ok)
	e.POST("/contacts", ok)
	e.GET("/health", ok)
	e.GET("/health/ready", ok)
	e.GET("/healthz", ok)
	return e
}

func TestRequiredHeader(t *testing.T) {
	e := newHeaderEcho()
	cases := []struct {
		name   string
		method string
		path   string
		header string
		want   int
	}{
		{"missing on GET", http.MethodGet, "/contacts", "", http.StatusBadRequest},
		{"missing on POST", http.MethodPost, "/contacts", "", http.StatusBadRequest},
		{"blank", http.MethodGet, "/contacts", "   ", http.StatusBadRequest},
		{"missing on unknown route", http.MethodDelete, "/nowhere", "", http.StatusBadRequest},
		{"present", http.MethodGet, "/contacts", "anything", http.StatusOK},
		{"unknown route with header", http.MethodGet, "/nowhere", "x", http.StatusNotFound},
		{"skipped health", http.MethodGet, "/health", "", http.StatusOK},
		{"skipped health subpath", http.MethodGet, "/health/ready", "", http.StatusOK},
		{"prefix is not a path segment", http.MethodGet, "/healthz", "", http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			if tc.header != "" {
				req.Header.Set("X-Custom-Header", tc.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, rec.Code)
			}
		})
	}
}
