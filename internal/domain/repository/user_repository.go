// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"restaurant/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for waiter persistence.
// It also serves as the identity lookup used to resolve the waiter of an order.
type UserRepository interface {
	// FindByID retrieves a single user by their ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindIDByEmail resolves an identity string to a user ID without loading the whole row.
	FindIDByEmail(ctx context.Context, email string) (int64, error)

	// Create persists a new user and assigns its ID.
	Create(ctx context.Context, user *entity.User) error
}
