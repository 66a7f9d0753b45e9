package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/labstack/echo/v4"

	"github.com/infohub/infohub-api/internal/core/domain"
)

const (
	maxIDLength      = 100
	maxKeywordLength = 100
)

// dateLayouts are tried in order when parsing date query parameters.
// Layouts without a zone are read as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// pathID reads the :id parameter and enforces its length bounds.
func pathID(c echo.Context) (string, error) {
	id := c.Param("id")
	if n := utf8.RuneCountInString(id); n < 1 || n > maxIDLength {
		return "", domain.NewValidationError(domain.FieldError{
			Field:   "id",
			Message: "id must be between 1 and 100 characters",
		})
	}
	return id, nil
}

func keywordParam(c echo.Context) (string, error) {
	kw := c.QueryParam("keyword")
	if n := utf8.RuneCountInString(kw); n < 1 || n > maxKeywordLength {
		return "", domain.NewValidationError(domain.FieldError{
			Field:   "keyword",
			Message: "keyword must be between 1 and 100 characters",
		})
	}
	return kw, nil
}

func dateRangeParams(c echo.Context) (domain.DateRange, error) {
	var (
		dr     domain.DateRange
		fields []domain.FieldError
	)
	for _, p := range []struct {
		name string
		dst  *time.Time
	}{
		{"date_start", &dr.Start},
		{"date_end", &dr.End},
	} {
		raw := strings.TrimSpace(c.QueryParam(p.name))
		if raw == "" {
			fields = append(fields, domain.FieldError{Field: p.name, Message: p.name + " is required"})
			continue
		}
		t, ok := parseDate(raw)
		if !ok {
			fields = append(fields, domain.FieldError{Field: p.name, Message: p.name + " must be a date or datetime"})
			continue
		}
		*p.dst = t
	}
	if len(fields) > 0 {
		return domain.DateRange{}, domain.NewValidationError(fields...)
	}
	return dr, nil
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// timestamp is a JSON time that accepts every layout in dateLayouts.
type timestamp struct {
	time.Time
}

type timestampError struct {
	value string
}

func (e *timestampError) Error() string {
	return fmt.Sprintf("%q is not a date or datetime", e.value)
}

func (t *timestamp) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return &timestampError{value: string(b)}
	}
	parsed, ok := parseDate(strings.TrimSpace(raw))
	if !ok {
		return &timestampError{value: raw}
	}
	t.Time = parsed
	return nil
}

// bindAndValidate decodes the body into req and runs the struct validator.
// Undecodable bodies are reported as validation errors.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		var tsErr *timestampError
		if errors.As(err, &tsErr) {
			return domain.NewValidationError(domain.FieldError{Field: "body", Message: tsErr.Error()})
		}
		return domain.NewValidationError(domain.FieldError{Field: "body", Message: "request body is not valid JSON"})
	}
	return c.Validate(req)
}

type detailResponse struct {
	Detail string `json:"detail"`
}

func deleted(c echo.Context, resource string) error {
	return c.JSON(http.StatusOK, detailResponse{Detail: resource + " deleted"})
}
