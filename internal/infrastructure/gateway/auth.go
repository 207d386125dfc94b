package gateway

import (
	"context"
	"net/http"

	"github.com/fred1edm/jaguarexpress/internal/core/domain"
	"github.com/fred1edm/jaguarexpress/internal/core/ports"
)

// authPayload is the credential pair inside the login/register data
// field.
type authPayload struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

type authAPI struct {
	c *Client
}

var _ ports.AuthAPI = (*authAPI)(nil)

// Auth returns the authentication surface.
func (c *Client) Auth() ports.AuthAPI {
	return &authAPI{c: c}
}

func (a *authAPI) Login(ctx context.Context, in ports.LoginInput) (*ports.AuthResult, error) {
	var env envelope[authPayload]
	if err := a.c.do(ctx, "/auth/login", http.MethodPost, "/auth/login", nil, in, &env); err != nil {
		return nil, err
	}
	return &ports.AuthResult{User: env.Data.User, Token: env.Data.Token}, nil
}

func (a *authAPI) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	var env envelope[authPayload]
	if err := a.c.do(ctx, "/auth/register", http.MethodPost, "/auth/register", nil, in, &env); err != nil {
		return nil, err
	}
	return &ports.AuthResult{User: env.Data.User, Token: env.Data.Token}, nil
}

func (a *authAPI) Logout(ctx context.Context) error {
	return a.c.do(ctx, "/auth/logout", http.MethodPost, "/auth/logout", nil, nil, nil)
}

func (a *authAPI) Profile(ctx context.Context) (*domain.User, error) {
	var env envelope[domain.User]
	if err := a.c.do(ctx, "/auth/profile", http.MethodGet, "/auth/profile", nil, nil, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (a *authAPI) UpdateProfile(ctx context.Context, in ports.ProfileUpdate) (*domain.User, error) {
	var env envelope[domain.User]
	if err := a.c.do(ctx, "/auth/profile", http.MethodPut, "/auth/profile", nil, in, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (a *authAPI) ChangePassword(ctx context.Context, in ports.ChangePasswordInput) error {
	return a.c.do(ctx, "/auth/change-password", http.MethodPut, "/auth/change-password", nil, in, nil)
}

func (a *authAPI) ForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return a.c.do(ctx, "/auth/forgot-password", http.MethodPost, "/auth/forgot-password", nil, body, nil)
}

func (a *authAPI) ResetPassword(ctx context.Context, token, password string) error {
	body := map[string]string{"token": token, "password": password}
	return a.c.do(ctx, "/auth/reset-password", http.MethodPost, "/auth/reset-password", nil, body, nil)
}
