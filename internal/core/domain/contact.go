package domain

import "regexp"

// PhonePattern is the only accepted phone number layout: +380(DD)-DDD-DD-DD.
var PhonePattern = regexp.MustCompile(`^\+380\(\d{2}\)-\d{3}-\d{2}-\d{2}$`)

// PhoneLength is the exact length of a valid phone number.
const PhoneLength = 18

// ValidPhone reports whether s matches the phone layout exactly.
func ValidPhone(s string) bool {
	return len(s) == PhoneLength && PhonePattern.MatchString(s)
}

// Contact is an address-book entry.
type Contact struct {
	ID          string  `json:"id" bson:"_id"`
	FirstName   string  `json:"first_name" bson:"first_name"`
	LastName    *string `json:"last_name" bson:"last_name,omitempty"`
	Email       string  `json:"email" bson:"email"`
	Address     *string `json:"address" bson:"address,omitempty"`
	Username    string  `json:"username" bson:"username"`
	PhoneNumber string  `json:"phone_number" bson:"phone_number"`
	AccountID   *string `json:"account_id" bson:"account_id,omitempty"`
}
