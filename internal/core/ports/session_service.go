package ports

import (
	"context"
	"time"

	"github.com/skillbridge/marketplace-client/internal/core/domain"
)

// TokenInfo is what the client can tell about the stored bearer token
// without verifying it: claims are read unverified, for display only.
type TokenInfo struct {
	Present   bool
	Role      string
	Subject   string
	ExpiresAt time.Time
	Expired   bool
}

// SessionService is the single source of truth for "who is logged in".
// All mutations go through the named transitions below.
type SessionService interface {
	// Bootstrap resolves the stored credential to a user exactly once per
	// process. Any resolution failure is swallowed: the session ends up
	// unauthenticated and the stored token is left untouched.
	Bootstrap(ctx context.Context)
	// Bootstrapping reports whether Bootstrap has not yet finished.
	Bootstrapping() bool
	// CurrentUser returns the cached current user, or nil when logged out.
	CurrentUser() *domain.User
	// SetCurrentUser unconditionally overwrites the current user and
	// persists (or clears) the cached copy.
	SetCurrentUser(u *domain.User)
	// Establish adopts a token and user from a successful login or
	// registration response.
	Establish(token string, user *domain.User) error
	// Login exchanges credentials for a token, persists it and sets the
	// current user.
	Login(ctx context.Context, email, password string) (*domain.User, error)
	// Logout clears all stored session state.
	Logout() error
	// TokenInfo inspects the stored token's claims without verification.
	TokenInfo() TokenInfo
}
