package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "sprout/internal/domain/errors"
	"sprout/internal/errors"
	"sprout/internal/usecase"
)

func registerInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		FullName: "Ada Gardener",
		Email:    "ada@example.com",
		Password: "rosemary-12",
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	svc := newTestServices()
	ctx := context.Background()

	err := svc.auth.Register(ctx, registerInput())

	require.NoError(t, err)
	// The stored credential is a hash, never the plaintext.
	stored := svc.repo.storedHash("ada@example.com")
	assert.NotEmpty(t, stored)
	assert.NotEqual(t, "rosemary-12", stored)
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	svc := newTestServices()
	ctx := context.Background()

	tests := []struct {
		name  string
		input *usecase.RegisterInput
	}{
		{name: "missing name", input: &usecase.RegisterInput{Email: "a@x.com", Password: "p"}},
		{name: "missing email", input: &usecase.RegisterInput{FullName: "A", Password: "p"}},
		{name: "missing password", input: &usecase.RegisterInput{FullName: "A", Email: "a@x.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.auth.Register(ctx, tt.input)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc := newTestServices()
	ctx := context.Background()

	require.NoError(t, svc.auth.Register(ctx, registerInput()))

	second := registerInput()
	second.FullName = "Another Ada"
	err := svc.auth.Register(ctx, second)

	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyExists))
}

func TestAuthService_Login_Success(t *testing.T) {
	svc := newTestServices()
	ctx := context.Background()
	require.NoError(t, svc.auth.Register(ctx, registerInput()))

	out, err := svc.auth.Login(ctx, &usecase.LoginInput{Email: "ada@example.com", Password: "rosemary-12"})

	require.NoError(t, err)
	assert.Equal(t, "Ada Gardener", out.FullName)
	assert.Equal(t, "ada@example.com", out.Email)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := newTestServices()

	_, err := svc.auth.Login(context.Background(), &usecase.LoginInput{Email: "ghost@example.com", Password: "p"})

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := newTestServices()
	ctx := context.Background()
	require.NoError(t, svc.auth.Register(ctx, registerInput()))
	before := svc.repo.storedHash("ada@example.com")

	_, err := svc.auth.Login(ctx, &usecase.LoginInput{Email: "ada@example.com", Password: "wrong"})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	// A failed login never alters the stored hash.
	assert.Equal(t, before, svc.repo.storedHash("ada@example.com"))
}

func TestAuthService_ChangePassword(t *testing.T) {
	svc := newTestServices()
	ctx := context.Background()
	require.NoError(t, svc.auth.Register(ctx, registerInput()))
	before := svc.repo.storedHash("ada@example.com")

	// Wrong current password: rejected, hash untouched.
	err := svc.auth.ChangePassword(ctx, &usecase.ChangePasswordInput{
		Email:           "ada@example.com",
		CurrentPassword: "wrong",
		NewPassword:     "thyme-34",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrIncorrectCurrentPassword))
	assert.Equal(t, before, svc.repo.storedHash("ada@example.com"))

	// Correct current password: new password wins, old one stops working.
	require.NoError(t, svc.auth.ChangePassword(ctx, &usecase.ChangePasswordInput{
		Email:           "ada@example.com",
		CurrentPassword: "rosemary-12",
		NewPassword:     "thyme-34",
	}))

	_, err = svc.auth.Login(ctx, &usecase.LoginInput{Email: "ada@example.com", Password: "thyme-34"})
	assert.NoError(t, err)
	_, err = svc.auth.Login(ctx, &usecase.LoginInput{Email: "ada@example.com", Password: "rosemary-12"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_ChangePassword_UnknownEmail(t *testing.T) {
	svc := newTestServices()

	err := svc.auth.ChangePassword(context.Background(), &usecase.ChangePasswordInput{
		Email:           "ghost@example.com",
		CurrentPassword: "p",
		NewPassword:     "q",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAuthService_UpdateProfileName(t *testing.T) {
	svc := newTestServices()
	ctx := context.Background()
	require.NoError(t, svc.auth.Register(ctx, registerInput()))

	out, err := svc.auth.UpdateProfileName(ctx, &usecase.UpdateProfileInput{
		Email:   "ada@example.com",
		NewName: "Ada Lovelace",
	})

	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", out.FullName)
	assert.Equal(t, "ada@example.com", out.Email)

	// The rename is persisted.
	login, err := svc.auth.Login(ctx, &usecase.LoginInput{Email: "ada@example.com", Password: "rosemary-12"})
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", login.FullName)
}

func TestAuthService_UpdateProfileName_UnknownEmail(t *testing.T) {
	svc := newTestServices()

	_, err := svc.auth.UpdateProfileName(context.Background(), &usecase.UpdateProfileInput{
		Email:   "ghost@example.com",
		NewName: "Nobody",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
