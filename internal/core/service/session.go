package service

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/skillbridge/marketplace-client/internal/core/domain"
	"github.com/skillbridge/marketplace-client/internal/core/ports"
)

// Session implements ports.SessionService over a Backend and a
// CredentialStore. State changes only through the named transitions;
// nothing else writes currentUser.
type Session struct {
	backend ports.Backend
	store   ports.CredentialStore
	log     zerolog.Logger

	mu            sync.Mutex
	currentUser   *domain.User
	bootstrapping bool
	bootstrapped  bool
}

func NewSession(backend ports.Backend, store ports.CredentialStore, log zerolog.Logger) *Session {
	return &Session{
		backend:       backend,
		store:         store,
		log:           log,
		bootstrapping: true,
	}
}

// Bootstrap resolves the stored credential to a current user. It runs at
// most once per process; later calls are no-ops. Every failure mode
// (no token, transport error, 401, malformed body) ends the same way:
// unauthenticated, bootstrapping false, and the stored token untouched so
// an explicit logout can still clear it.
func (s *Session) Bootstrap(ctx context.Context) {
	s.mu.Lock()
	if s.bootstrapped {
		s.mu.Unlock()
		return
	}
	s.bootstrapped = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.bootstrapping = false
		s.mu.Unlock()
	}()

	token := s.store.Token()
	if token == "" {
		return
	}

	user, err := s.backend.CurrentUser(ctx)
	if err != nil {
		s.log.Debug().Err(err).Msg("session: stored credential did not resolve, treating as logged out")
		s.SetCurrentUser(nil)
		return
	}
	s.SetCurrentUser(user)
}

// Bootstrapping reports whether Bootstrap has not yet finished.
func (s *Session) Bootstrapping() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bootstrapping
}

// CurrentUser returns the cached current user, or nil when logged out.
func (s *Session) CurrentUser() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentUser
}

// SetCurrentUser unconditionally overwrites the current user and keeps the
// durable cached copy in sync. Store write failures are logged, not raised:
// the in-memory session is authoritative for the rest of the process.
func (s *Session) SetCurrentUser(u *domain.User) {
	s.mu.Lock()
	s.currentUser = u
	s.mu.Unlock()

	if err := s.store.SetUser(u); err != nil {
		s.log.Warn().Err(err).Msg("session: failed to persist cached user")
	}
}

// Establish adopts a credential and user returned by a successful login or
// registration response.
func (s *Session) Establish(token string, user *domain.User) error {
	if err := s.store.SetToken(token); err != nil {
		return err
	}
	s.SetCurrentUser(user)
	return nil
}

// Login exchanges credentials for a bearer token and establishes the
// session.
func (s *Session) Login(ctx context.Context, email, password string) (*domain.User, error) {
	res, err := s.backend.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := s.Establish(res.Token, res.User); err != nil {
		return nil, err
	}
	s.log.Info().Str("email", email).Msg("session: logged in")
	return res.User, nil
}

// Logout clears the stored token, cached user and role together, then
// drops the in-memory user.
func (s *Session) Logout() error {
	err := s.store.Clear()
	s.SetCurrentUser(nil)
	return err
}

// TokenInfo reads the stored bearer token's claims without verifying the
// signature. The backend alone decides validity; this is display-only
// (expiry, role tag).
func (s *Session) TokenInfo() ports.TokenInfo {
	token := s.store.Token()
	if token == "" {
		return ports.TokenInfo{}
	}

	info := ports.TokenInfo{Present: true}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		// Opaque token: nothing to report beyond presence.
		return info
	}
	if role, ok := claims["role"].(string); ok {
		info.Role = role
	}
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
		info.Expired = exp.Time.Before(time.Now())
	}
	return info
}
