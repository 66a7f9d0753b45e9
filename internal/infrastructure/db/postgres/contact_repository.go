package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/infohub/infohub-api/internal/core/domain"
)

const contactColumns = `id, first_name, last_name, email, address, username, phone_number, account_id`

type ContactRepository struct {
	q Queryer
}

func NewContactRepository(q Queryer) *ContactRepository {
	return &ContactRepository{q: q}
}

func (r *ContactRepository) Create(ctx context.Context, c *domain.Contact) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO contacts (`+contactColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, c.FirstName, c.LastName, c.Email, c.Address, c.Username, c.PhoneNumber, c.AccountID,
	)
	if err != nil {
		return classify("insert contact", err)
	}
	return nil
}

func (r *ContactRepository) List(ctx context.Context) ([]domain.Contact, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT `+contactColumns+` FROM contacts ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	contacts := []domain.Contact{}
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, *c)
	}
	return contacts, rows.Err()
}

func (r *ContactRepository) FindByID(ctx context.Context, id string) (*domain.Contact, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+contactColumns+` FROM contacts WHERE id = $1`, id)
	c, err := scanContact(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound("contact")
		}
		return nil, fmt.Errorf("find contact: %w", err)
	}
	return c, nil
}

func (r *ContactRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.q, "contacts", "contact", id)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanContact(s scanner) (*domain.Contact, error) {
	var (
		c                            domain.Contact
		lastName, address, accountID sql.NullString
	)
	if err := s.Scan(&c.ID, &c.FirstName, &lastName, &c.Email, &address, &c.Username, &c.PhoneNumber, &accountID); err != nil {
		return nil, err
	}
	c.LastName = nullString(lastName)
	c.Address = nullString(address)
	c.AccountID = nullString(accountID)
	return &c, nil
}
