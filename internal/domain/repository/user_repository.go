// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"glbiashara/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// UpdateProfile replaces the user's profession and skill set.
	UpdateProfile(ctx context.Context, id uuid.UUID, profession string, skills []string) error

	// SetProvider records the user's single telecom provider affiliation.
	SetProvider(ctx context.Context, id uuid.UUID, providerID int64) error

	// SetInstitution records the user's single institution affiliation.
	SetInstitution(ctx context.Context, id uuid.UUID, institutionID int64) error

	// AppendClub adds clubID to the user's club set. The append happens as a
	// single conditional statement at the storage layer, so concurrent calls
	// cannot produce duplicates and repeated calls are no-ops.
	AppendClub(ctx context.Context, id uuid.UUID, clubID int64) error
}
