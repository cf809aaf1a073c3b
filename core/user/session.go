package user

import (
	"errors"
	"sync"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// Session holds the identity bound to the current sign-in, or none.
// There is a single logical session per process; Login replaces any
// previously bound identity.
type Session struct {
	repo Repository

	mu      sync.RWMutex
	current *User
}

func NewSession(repo Repository) *Session {
	return &Session{repo: repo}
}

// Login scans all users in insertion order and binds the session to the
// first record matching both username and password exactly. On no match
// the session stays anonymous and ErrInvalidCredentials is returned.
func (s *Session) Login(username, password string) (User, error) {
	users, err := s.repo.QueryAllUsers()
	if err != nil {
		return User{}, err
	}
	for _, usr := range users {
		if usr.Username == username && usr.Password == password {
			s.mu.Lock()
			u := usr
			s.current = &u
			s.mu.Unlock()
			return usr, nil
		}
	}
	return User{}, ErrInvalidCredentials
}

// Logout unconditionally discards the bound identity.
func (s *Session) Logout() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}

// Current returns the bound identity, or ok=false when anonymous.
func (s *Session) Current() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return User{}, false
	}
	return *s.current, true
}
