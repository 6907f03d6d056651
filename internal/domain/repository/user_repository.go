// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"sprout/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when no user exists for an email.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
// Every write is a single-document operation: the store holds one User
// document per email, with the plant list embedded in it.
type UserRepository interface {
	// Create persists a new user. The email must be unique across the
	// collection; a duplicate yields domainerrors.ErrEmailAlreadyExists.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// UpdateFullName sets a new display name and returns the updated user.
	UpdateFullName(ctx context.Context, email, fullName string) (*entity.User, error)

	// UpdatePassword stores a new password hash for the user.
	UpdatePassword(ctx context.Context, email, passwordHash string) (*entity.User, error)

	// ReplacePlants persists the full plant list after a mutation. The list
	// replaces whatever was stored before; callers own the merge semantics.
	ReplacePlants(ctx context.Context, email string, plants []entity.Plant) (*entity.User, error)
}
