// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"sprout/internal/domain/entity"
	domainerrors "sprout/internal/domain/errors"
	"sprout/internal/domain/repository"
	"sprout/internal/domain/service"
	"sprout/internal/usecase"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// Register orchestrates the registration process: validate, hash, persist.
// The duplicate-email invariant is enforced by the store's unique index, so
// there is no separate existence check racing with the insert.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) error {
	if input.FullName == "" || input.Email == "" || input.Password == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("registration failed")
	}

	srv.logger.Info("Starting user registration", "email", input.Email)

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", "error", err)

		return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	newUser := &entity.User{
		FullName:     input.FullName,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Plants:       []entity.Plant{},
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		srv.logger.Warn("Failed to create user", "email", input.Email, "error", err.Error())

		return errors.WithStack(err)
	}
	srv.logger.Debug("User registered successfully", "email", input.Email)

	return nil
}

// Login verifies the credentials against the stored hash.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.UserOutput, error) {
	srv.logger.Debug("Starting user login", "email", input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.logger.Warn("Login failed", "email", input.Email)

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}
	srv.logger.Debug("User logged in successfully", "email", input.Email)

	return &usecase.UserOutput{FullName: user.FullName, Email: user.Email}, nil
}

// ChangePassword verifies the current password before hashing and storing the new one.
func (srv *authService) ChangePassword(ctx context.Context, input *usecase.ChangePasswordInput) error {
	srv.logger.Info("Changing password", "email", input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("change password failed")
		}

		return errors.Wrap(err, "failed to find user for password change")
	}

	if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
		return domainerrors.ErrIncorrectCurrentPassword.WrapMessage("change password failed")
	}

	newHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		srv.logger.Error("Failed to hash new password", "error", err)

		return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash new password")
	}

	if _, err := srv.userRepo.UpdatePassword(ctx, input.Email, newHash); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("change password failed")
		}

		return errors.Wrap(err, "failed to store new password")
	}

	return nil
}

// UpdateProfileName changes the display name and returns the updated identity.
func (srv *authService) UpdateProfileName(ctx context.Context, input *usecase.UpdateProfileInput) (*usecase.UserOutput, error) {
	srv.logger.Info("Updating profile name", "email", input.Email)

	user, err := srv.userRepo.UpdateFullName(ctx, input.Email, input.NewName)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("update profile failed")
		}

		return nil, errors.Wrap(err, "failed to update profile name")
	}

	return &usecase.UserOutput{FullName: user.FullName, Email: user.Email}, nil
}
