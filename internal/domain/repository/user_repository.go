package repository

import (
	"context"

	"rocktea/internal/domain/entity"
	"rocktea/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when a user lookup misses.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the interface for user lookups used by the pipeline.
type UserRepository interface {
	// FindUserByID retrieves a user by their unique ID.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindUserByEmail retrieves a user by email. Store activation callbacks
	// resolve the payer this way because the onboarding flow is unauthenticated.
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)
}
