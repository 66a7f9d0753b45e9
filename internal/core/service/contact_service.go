package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/infohub/infohub-api/internal/core/domain"
	"github.com/infohub/infohub-api/internal/core/ports"
)

type ContactService struct {
	uow    ports.UnitOfWork
	logger zerolog.Logger
}

func NewContactService(uow ports.UnitOfWork, logger zerolog.Logger) *ContactService {
	return &ContactService{uow: uow, logger: logger}
}

// Create stores a new contact under a freshly generated id.
func (s *ContactService) Create(ctx context.Context, in ports.CreateContactInput) (*domain.Contact, error) {
	if !domain.ValidPhone(in.PhoneNumber) {
		return nil, domain.NewValidationError(domain.FieldError{
			Field:   "phone_number",
			Message: "phone_number must look like +380(66)-123-45-78",
		})
	}

	contact := &domain.Contact{
		ID:          newID(),
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		Address:     in.Address,
		Username:    in.Username,
		PhoneNumber: in.PhoneNumber,
		AccountID:   in.AccountID,
	}

	if err := s.uow.Do(ctx, func(tx ports.Tx) error {
		return tx.Contacts().Create(ctx, contact)
	}); err != nil {
		s.logger.Error().Err(err).Msg("failed to create contact")
		return nil, fmt.Errorf("create contact: %w", err)
	}

	s.logger.Info().Str("contact_id", contact.ID).Msg("contact created")
	return contact, nil
}

func (s *ContactService) List(ctx context.Context) ([]domain.Contact, error) {
	var contacts []domain.Contact
	err := s.uow.Do(ctx, func(tx ports.Tx) error {
		var err error
		contacts, err = tx.Contacts().List(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	if contacts == nil {
		contacts = []domain.Contact{}
	}
	return contacts, nil
}

func (s *ContactService) Get(ctx context.Context, id string) (*domain.Contact, error) {
	var contact *domain.Contact
	err := s.uow.Do(ctx, func(tx ports.Tx) error {
		var err error
		contact, err = tx.Contacts().FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return contact, nil
}

func (s *ContactService) Delete(ctx context.Context, id string) error {
	if err := s.uow.Do(ctx, func(tx ports.Tx) error {
		return tx.Contacts().Delete(ctx, id)
	}); err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}

	s.logger.Info().Str("contact_id", id).Msg("contact deleted")
	return nil
}
