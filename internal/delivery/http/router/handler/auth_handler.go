// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"sprout/internal/delivery/http/response"
	domainerrors "sprout/internal/domain/errors"
	"sprout/internal/usecase"
)

// AuthHandler holds dependencies for account-related handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.Fail(c, domainerrors.ErrInvalidInput.Message())
	}

	if err := h.uc.Register(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	// Nothing sensitive is echoed back.
	return response.OK(c, "Registration successful!")
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.Fail(c, domainerrors.ErrInvalidInput.Message())
	}

	user, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OKWithUser(c, "Login successful!", user)
}

// UpdateProfile handles the display-name change request.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	var input usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.Fail(c, domainerrors.ErrInvalidInput.Message())
	}

	user, err := h.uc.UpdateProfileName(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OKWithUser(c, "Profile updated", user)
}

// ChangePassword handles the password rotation request.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var input usecase.ChangePasswordInput
	if err := c.Bind(&input); err != nil {
		return response.Fail(c, domainerrors.ErrInvalidInput.Message())
	}

	if err := h.uc.ChangePassword(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, "Password updated successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.OK(c, "Service is healthy")
}
