package ports

import (
	"context"

	"github.com/infohub/infohub-api/internal/core/domain"
)

// RegisterInput carries the data needed to create an account.
type RegisterInput struct {
	Username string
	Password string
	Email    string
	Role     string
}

// AuthService issues and validates bearer tokens.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Authenticate(ctx context.Context, username, password string) (string, *domain.User, error)
	Resolve(ctx context.Context, token string) (*domain.User, error)
	Revoke(ctx context.Context, token string) error
}
