// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
)

// AuthUsecase defines the interface for account-related business operations:
// registration, login and credential/profile maintenance.
type AuthUsecase interface {
	// Register creates a new account. Nothing sensitive is echoed back.
	Register(ctx context.Context, input *RegisterInput) error

	// Login verifies the credentials and returns the public user identity.
	Login(ctx context.Context, input *LoginInput) (*UserOutput, error)

	// ChangePassword verifies the current password before storing a new hash.
	ChangePassword(ctx context.Context, input *ChangePasswordInput) error

	// UpdateProfileName changes the display name and returns the updated identity.
	UpdateProfileName(ctx context.Context, input *UpdateProfileInput) (*UserOutput, error)
}

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginInput defines the credentials for a login attempt.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChangePasswordInput defines the data required to rotate a password.
type ChangePasswordInput struct {
	Email           string `json:"email"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// UpdateProfileInput defines the data required to rename a profile.
type UpdateProfileInput struct {
	Email   string `json:"email"`
	NewName string `json:"newName"`
}

// --- Output DTOs ---

// UserOutput is the public identity returned by auth operations.
// It never carries the password or its hash.
type UserOutput struct {
	FullName string `json:"name"`
	Email    string `json:"email"`
}
