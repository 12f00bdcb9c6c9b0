// Package storage persists the session credential on disk. The layout
// mirrors the three storage keys the web client kept: the bearer token, a
// serialized cached-user blob and a plain role string, all cleared together
// on logout.
package storage

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-yaml"

	"github.com/skillbridge/marketplace-client/internal/core/domain"
	"github.com/skillbridge/marketplace-client/internal/core/ports"
)

// sessionFile is the on-disk layout.
type sessionFile struct {
	Token string       `yaml:"token,omitempty"`
	User  *domain.User `yaml:"user,omitempty"`
	Role  string       `yaml:"role,omitempty"`
}

// FileStore implements ports.CredentialStore over a single YAML file.
// Reads never fail: a missing or unreadable file is an empty session.
type FileStore struct {
	path string

	mu     sync.Mutex
	loaded bool
	state  sessionFile
}

var _ ports.CredentialStore = (*FileStore)(nil)

// DefaultPath returns the session file location under the user's config
// directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "marketctl", "session.yaml"), nil
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()
	return s.state.Token
}

func (s *FileStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()
	s.state.Token = token
	return s.save()
}

func (s *FileStore) CachedUser() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()
	if s.state.User == nil {
		return nil
	}
	u := *s.state.User
	return &u
}

func (s *FileStore) SetUser(u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()
	if u == nil {
		s.state.User = nil
		s.state.Role = ""
	} else {
		copied := *u
		s.state.User = &copied
		s.state.Role = u.Role
	}
	return s.save()
}

func (s *FileStore) Role() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()
	return s.state.Role
}

// Clear removes the whole session file, dropping token, cached user and
// role in one step.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = sessionFile{}
	s.loaded = true
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// load reads the file once per store instance. Corrupt or unreadable
// content degrades to an empty session rather than failing the caller.
func (s *FileStore) load() {
	if s.loaded {
		return
	}
	s.loaded = true
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var parsed sessionFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return
	}
	s.state = parsed
}

func (s *FileStore) save() error {
	data, err := yaml.Marshal(s.state)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}
