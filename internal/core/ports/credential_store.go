package ports

import "github.com/skillbridge/marketplace-client/internal/core/domain"

// CredentialStore is the durable client-side session storage: one token
// string, one serialized cached-user blob, one plain role string. All three
// are cleared together on logout. Reads never fail; a missing or unreadable
// store reads as empty.
type CredentialStore interface {
	// Token returns the stored bearer credential, or "" when absent.
	Token() string
	// SetToken persists the bearer credential.
	SetToken(token string) error
	// CachedUser returns the stored user blob, or nil when absent.
	CachedUser() *domain.User
	// SetUser persists the cached user and its role tag. A nil user clears
	// both while leaving the token in place.
	SetUser(u *domain.User) error
	// Role returns the stored role tag, or "" when absent.
	Role() string
	// Clear removes the token, the cached user and the role together.
	Clear() error
}
