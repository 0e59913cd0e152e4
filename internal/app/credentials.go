package app

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for an unknown user or a wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Credentials is the set of users allowed into the methodology tab. Passwords
// are only kept as bcrypt hashes.
type Credentials struct {
	hashes map[string][]byte
}

// NewCredentials hashes the given user:password map. A cost of 0 uses
// bcrypt.DefaultCost.
func NewCredentials(users map[string]string, cost int) (*Credentials, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	credentials := &Credentials{hashes: make(map[string][]byte, len(users))}
	for name, password := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
		if err != nil {
			return nil, fmt.Errorf("hashing password for %q: %w", name, err)
		}
		credentials.hashes[name] = hash
	}
	return credentials, nil
}

// Len is the number of configured users.
func (c *Credentials) Len() int {
	if c == nil {
		return 0
	}
	return len(c.hashes)
}

// Verify checks a username and password.
func (c *Credentials) Verify(username, password string) error {
	if c == nil {
		return ErrInvalidCredentials
	}
	hash, ok := c.hashes[username]
	if !ok {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// Session is a logged in user.
type Session struct {
	Token     string
	Username  string
	ExpiresAt time.Time
}

// SessionStore keeps sessions in memory; they do not survive a restart.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
	ttl      time.Duration
	now      func() time.Time
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = 8 * time.Hour
	}
	return &SessionStore{
		sessions: make(map[string]Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create starts a session for username.
func (s *SessionStore) Create(username string) Session {
	session := Session{
		Token:     uuid.New().String(),
		Username:  username,
		ExpiresAt: s.now().Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[session.Token] = session
	s.mu.Unlock()

	return session
}

// Lookup returns the live session for token. Expired sessions are removed.
func (s *SessionStore) Lookup(token string) (Session, bool) {
	if token == "" {
		return Session{}, false
	}

	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return Session{}, false
	}

	if !s.now().Before(session.ExpiresAt) {
		s.Delete(token)
		return Session{}, false
	}
	return session, true
}

// Delete ends a session.
func (s *SessionStore) Delete(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// Sweep drops every expired session and returns how many it removed.
func (s *SessionStore) Sweep() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for token, session := range s.sessions {
		if !now.Before(session.ExpiresAt) {
			delete(s.sessions, token)
			removed++
		}
	}
	return removed
}

// Len is the number of sessions held, expired ones included.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
