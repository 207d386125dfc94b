package ports

import (
	"context"

	"github.com/fred1edm/jaguarexpress/internal/core/domain"
)

// LoginInput carries the credentials for POST /auth/login. Validated
// before any network call.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// RegisterInput carries the payload for POST /auth/register.
type RegisterInput struct {
	Name     string `json:"nombre" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"telefono" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	Address  string `json:"direccion,omitempty"`
}

// ProfileUpdate is the partial payload for PUT /auth/profile. Empty
// fields are omitted so the server only touches what was sent.
type ProfileUpdate struct {
	Name    string `json:"nombre,omitempty"`
	Phone   string `json:"telefono,omitempty"`
	Address string `json:"direccion,omitempty"`
}

// ChangePasswordInput is the payload for PUT /auth/change-password.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

// AuthResult is the credential pair returned by login and register.
type AuthResult struct {
	User  *domain.User
	Token string
}

// AuthAPI is the authentication surface of the remote API.
type AuthAPI interface {
	Login(ctx context.Context, in LoginInput) (*AuthResult, error)
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, in ProfileUpdate) (*domain.User, error)
	ChangePassword(ctx context.Context, in ChangePasswordInput) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password string) error
}
