// Package memory provides the in-process UserStore used when no
// database is configured, and doubles as the test store.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/CHEATEY13/Last/core"
)

// Store keeps users in two maps guarded by one mutex. The email index
// lets CreateUser check uniqueness and insert under a single lock
// acquisition, so concurrent signups for the same address cannot both
// succeed.
type Store struct {
	mu      sync.Mutex
	byID    map[string]*core.User
	byEmail map[string]*core.User
}

var _ core.UserStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{
		byID:    make(map[string]*core.User),
		byEmail: make(map[string]*core.User),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Store) CreateUser(_ context.Context, u *core.User) error {
	email := normalizeEmail(u.Email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[email]; exists {
		return core.ErrUserExists
	}

	stored := *u
	stored.Email = email
	s.byID[stored.ID] = &stored
	s.byEmail[email] = &stored
	return nil
}

func (s *Store) GetUserByID(_ context.Context, id string) (*core.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, core.ErrUserNotFound
	}
	return copyUser(u), nil
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (*core.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, core.ErrUserNotFound
	}
	return copyUser(u), nil
}

func (s *Store) AddSession(_ context.Context, userID string, session core.CodeSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[userID]
	if !ok {
		return core.ErrUserNotFound
	}

	u.Sessions = append(u.Sessions, session)
	if len(u.Sessions) > core.MaxSessionHistory {
		u.Sessions = u.Sessions[len(u.Sessions)-core.MaxSessionHistory:]
	}
	return nil
}

// copyUser returns a copy so callers cannot mutate stored state
// outside the lock.
func copyUser(u *core.User) *core.User {
	out := *u
	out.Sessions = make([]core.CodeSession, len(u.Sessions))
	copy(out.Sessions, u.Sessions)
	return &out
}
