// Package entity contains the core business objects of the project: waiters,
// products, orders and the value objects they are priced with.
package entity

import (
	"net/mail"
	"strings"
	"time"

	domainerrors "restaurant/internal/domain/errors"
)

// User is a waiter account. Orders reference it by ID only.
type User struct {
	ID           int64     // Assigned by the persistence layer.
	Email        string    // Login identity; unique.
	Name         string    // Display name.
	PasswordHash string    // bcrypt hash, never exposed.
	CreatedAt    time.Time // Timestamp of when the account was created.
}

// NewUser validates the identity fields of a new waiter account.
func NewUser(email, name string) (*User, error) {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return nil, domainerrors.NewValidationError("email", "value is not a valid email address")
	}
	if len(strings.TrimSpace(name)) < minNameLength {
		return nil, domainerrors.NewValidationError("name", "Name must be at least 2 characters long")
	}

	return &User{
		Email:     email,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// String renders the user as "Name <email>".
func (u *User) String() string {
	return u.Name + " <" + u.Email + ">"
}
