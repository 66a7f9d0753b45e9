// Package metrics defines and registers all custom Prometheus metrics for the
// infohub API. It is the single source of truth for metric names, labels, and
// help strings. HTTP request metrics come from the echoprometheus middleware.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/infohub/infohub-api/internal/core/domain"
)

const namespace = "infohub"

// ── Resource metrics ──────────────────────────────────────────────────────────

// ResourceOperationsTotal counts resource operations handled by the API.
// Labels:
//   - resource: "contact", "article" or "comment"
//   - operation: "create", "list", "get", "delete", "search", "filter"
//   - outcome: "ok", "not_found", "invalid" or "error"
var ResourceOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resource_operations_total",
		Help:      "Total number of resource operations, by resource, operation and outcome.",
	},
	[]string{"resource", "operation", "outcome"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthAttemptsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "inactive" or "error"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ObserveOperation records the outcome of one resource operation.
func ObserveOperation(resource, operation string, err error) {
	ResourceOperationsTotal.WithLabelValues(resource, operation, Outcome(err)).Inc()
}

// ObserveLogin records the result of one login attempt.
func ObserveLogin(err error) {
	result := "success"
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrInvalidCredentials):
		result = "invalid_credentials"
	case errors.Is(err, domain.ErrInactiveUser):
		result = "inactive"
	default:
		result = "error"
	}
	AuthAttemptsTotal.WithLabelValues(result).Inc()
}

// Outcome classifies err into the outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrValidation):
		return "invalid"
	default:
		return "error"
	}
}
