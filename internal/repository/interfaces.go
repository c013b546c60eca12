package repository

import (
	"context"
	"errors"

	"github.com/campusconnect/backend/internal/domain"
	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when no user matches the lookup.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when an insert would violate email uniqueness.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository is the storage capability set the services depend on.
// Implementations must serialize writes to the same user record.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	List(ctx context.Context) ([]*domain.User, error)
}

type Repositories struct {
	User UserRepository
}
