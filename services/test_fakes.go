package services

import (
	"context"
	"strings"
	"sync"

	"github.com/CHEATEY13/Last/core"
)

// FakeUserStore is a test-only fake implementing core.UserStore. It
// stores users in a map and exposes error fields for behavior
// injection.
type FakeUserStore struct {
	mu         sync.Mutex
	users      map[string]*core.User
	createErr  error
	getErr     error
	sessionErr error
}

func NewFakeUserStore() *FakeUserStore {
	return &FakeUserStore{
		users: make(map[string]*core.User),
	}
}

func (f *FakeUserStore) CreateUser(_ context.Context, u *core.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return core.ErrUserExists
		}
	}
	f.users[u.ID] = u
	return nil
}

func (f *FakeUserStore) GetUserByID(_ context.Context, id string) (*core.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.users[id]
	if !ok {
		return nil, core.ErrUserNotFound
	}
	return u, nil
}

func (f *FakeUserStore) GetUserByEmail(_ context.Context, email string) (*core.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, core.ErrUserNotFound
}

func (f *FakeUserStore) AddSession(_ context.Context, userID string, s core.CodeSession) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.sessionErr != nil {
		return f.sessionErr
	}
	u, ok := f.users[userID]
	if !ok {
		return core.ErrUserNotFound
	}
	u.Sessions = append(u.Sessions, s)
	return nil
}

// FakeTokenManager issues reversible tokens so tests can assert on the
// subject without real signing.
type FakeTokenManager struct {
	issueErr  error
	verifyErr error
}

func (f *FakeTokenManager) Issue(userID string) (string, error) {
	if f.issueErr != nil {
		return "", f.issueErr
	}
	return "token-" + userID, nil
}

func (f *FakeTokenManager) Verify(token string) (string, error) {
	if f.verifyErr != nil {
		return "", f.verifyErr
	}
	if !strings.HasPrefix(token, "token-") {
		return "", core.ErrTokenInvalid
	}
	return strings.TrimPrefix(token, "token-"), nil
}
