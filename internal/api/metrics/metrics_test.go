package metrics

import (
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/infohub/infohub-api/internal/core/domain"
)

func TestOutcome(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, "ok"},
		{fmt.Errorf("get contact: %w", domain.NotFound("contact")), "not_found"},
		{domain.NewValidationError(domain.FieldError{Field: "x", Message: "bad"}), "invalid"},
		{errors.New("boom"), "error"},
	}
	for _, tc := range cases {
		if got := Outcome(tc.err); got != tc.want {
			t.Errorf("Outcome(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}

func TestObserveOperation_IncrementsCounter(t *testing.T) {
	c := ResourceOperationsTotal.WithLabelValues("article", "search", "not_found")
	before := testutil.ToFloat64(c)

	ObserveOperation("article", "search", domain.NotFound("articles matching keyword"))

	if got := testutil.ToFloat64(c); got != before+1 {
		t.Fatalf("expected counter %v, got %v", before+1, got)
	}
}

func TestObserveLogin(t *testing.T) {
	c := AuthAttemptsTotal.WithLabelValues("invalid_credentials")
	before := testutil.ToFloat64(c)

	ObserveLogin(domain.ErrInvalidCredentials)

	if got := testutil.ToFloat64(c); got != before+1 {
		t.Fatalf("expected counter %v, got %v", before+1, got)
	}
}
