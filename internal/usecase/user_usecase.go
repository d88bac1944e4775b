// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"restaurant/internal/domain/entity"
)

// --- Input DTOs ---

// CreateUserInput defines the data required to register a new waiter.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a waiter to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the generated access token after a successful login.
type LoginOutput struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int64 // seconds
	User        *entity.User
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	CreateUser(ctx context.Context, input CreateUserInput) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Authenticate resolves a bearer token to the waiter it was issued for. The
	// waiter must still exist and match the token's user ID.
	Authenticate(ctx context.Context, token string) (*entity.User, error)
}
