package handler

import "github.com/infohub/infohub-api/internal/core/ports"

type createContactRequest struct {
	FirstName   string  `json:"first_name"   validate:"required,min=2,max=50"`
	LastName    *string `json:"last_name"    validate:"omitempty,max=50"`
	Email       string  `json:"email"        validate:"required,email,min=3,max=50"`
	Address     *string `json:"address"      validate:"omitempty,max=150"`
	Username    string  `json:"username"     validate:"required,min=2,max=50"`
	PhoneNumber string  `json:"phone_number" validate:"required,len=18,ua_phone"`
	AccountID   *string `json:"account_id"   validate:"omitempty,max=255"`
}

func (r createContactRequest) toInput() ports.CreateContactInput {
	return ports.CreateContactInput{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		Address:     r.Address,
		Username:    r.Username,
		PhoneNumber: r.PhoneNumber,
		AccountID:   r.AccountID,
	}
}
