// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"encontro/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new participant.
type RegisterInput struct {
	FullName string
	Email    string
	Password string
	Descent  string
	Age      int
	City     string
}

// LoginInput defines the data required for a participant to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created participant and their session token.
type RegisterOutput struct {
	User  *entity.User
	Token string
}

// LoginOutput returns the generated token after a successful login.
type LoginOutput struct {
	User  *entity.User
	Token string
}

// AuthUsecase defines the interface for participant authentication.
// This is the contract that the delivery layer (HTTP handlers) depends on.
type AuthUsecase interface {
	// Register creates a participant account and signs them in.
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)

	// Login verifies credentials and issues a session token.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Profile loads the authenticated participant's account.
	Profile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
