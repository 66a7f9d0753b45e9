package ports

import (
	"context"

	"github.com/infohub/infohub-api/internal/core/domain"
)

// CreateContactInput is a validated contact payload.
type CreateContactInput struct {
	FirstName   string
	LastName    *string
	Email       string
	Address     *string
	Username    string
	PhoneNumber string
	AccountID   *string
}

// ContactService implements the contact use cases.
type ContactService interface {
	Create(ctx context.Context, input CreateContactInput) (*domain.Contact, error)
	List(ctx context.Context) ([]domain.Contact, error)
	Get(ctx context.Context, id string) (*domain.Contact, error)
	Delete(ctx context.Context, id string) error
}
