package api

import (
	"context"
	"net/http"

	"github.com/skillbridge/marketplace-client/internal/core/domain"
	"github.com/skillbridge/marketplace-client/internal/core/ports"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new account. POST /api/auth/register.
func (c *Client) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	var out ports.AuthResult
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges credentials for a bearer token. POST /api/auth/login.
func (c *Client) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	var out ports.AuthResult
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", loginRequest{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CurrentUser resolves the stored credential. GET /api/auth/me.
func (c *Client) CurrentUser(ctx context.Context) (*domain.User, error) {
	var out domain.User
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile updates the caller's profile. PUT /api/auth/me.
func (c *Client) UpdateProfile(ctx context.Context, in ports.ProfileUpdate) (*domain.User, error) {
	var out domain.User
	if err := c.do(ctx, http.MethodPut, "/api/auth/me", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
