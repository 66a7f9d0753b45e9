package ports

import (
	"context"
	"time"

	"github.com/infohub/infohub-api/internal/core/domain"
)

// UserRepository is the identity store.
type UserRepository interface {
	// Create stores a new user; duplicate username or email yields domain.ErrUserExists.
	Create(ctx context.Context, user *domain.User) error
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

// TokenRevoker tracks tokens that were explicitly logged out.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
