package user

import (
	"errors"
	"strings"
)

type User struct {
	ID           int    `json:"-"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// Registration is the input for creating a user. Validation runs on the
// plaintext password, before it is hashed.
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *Registration) Validate() error {
	if len(strings.TrimSpace(r.Name)) < 3 {
		return errors.New("name must be at least 3 characters")
	}
	if !strings.Contains(r.Email, "@") {
		return errors.New("invalid email address")
	}
	if len(r.Password) < 4 {
		return errors.New("password must be at least 4 characters")
	}
	return nil
}
