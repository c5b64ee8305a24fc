package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/CHEATEY13/Last/core"
	"github.com/CHEATEY13/Last/pkg/crypto"
)

// AuthResult bundles the response of signup and login.
type AuthResult struct {
	User  core.PublicUser
	Token string
}

type AuthService struct {
	store  core.UserStore
	hasher crypto.PasswordHandler
	tokens core.TokenManager
}

func NewAuthService(store core.UserStore, hasher crypto.PasswordHandler, tokens core.TokenManager) *AuthService {
	return &AuthService{
		store:  store,
		hasher: hasher,
		tokens: tokens,
	}
}

// SignUp registers a new user with email and password.
func (s *AuthService) SignUp(ctx context.Context, email, password, name string) (*AuthResult, error) {
	// Step 1: Validate input
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	// Step 2: Hash the password
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Step 3: Create the user. The store owns the email-uniqueness
	// check so concurrent signups cannot both pass.
	id, err := crypto.NewID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user id: %w", err)
	}

	user := &core.User{
		ID:           id,
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: hash,
		Name:         strings.TrimSpace(name),
		CreatedAt:    time.Now(),
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	// Step 4: Issue a token for the new user
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &AuthResult{User: user.Public(), Token: token}, nil
}

// Login authenticates an existing user. Unknown email and wrong
// password return the same error so callers cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	if strings.TrimSpace(email) == "" {
		return nil, core.ErrEmailRequired
	}
	if password == "" {
		return nil, core.ErrPasswordRequired
	}

	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if err == core.ErrUserNotFound {
			return nil, core.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil || !ok {
		return nil, core.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &AuthResult{User: user.Public(), Token: token}, nil
}

// GetUser resolves an authenticated user id to its public record.
func (s *AuthService) GetUser(ctx context.Context, userID string) (*core.User, error) {
	return s.store.GetUserByID(ctx, userID)
}

// Identify verifies a bearer token and loads the caller's identity.
// The middleware layers a cache over this.
func (s *AuthService) Identify(ctx context.Context, token string) (*core.Identity, error) {
	userID, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		if err == core.ErrUserNotFound {
			return nil, core.ErrTokenInvalid
		}
		return nil, err
	}

	return &core.Identity{ID: user.ID, Email: user.Email, Name: user.Name}, nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return core.ErrEmailRequired
	}

	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return core.ErrInvalidEmail
	}
	domain := email[at+1:]
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return core.ErrInvalidEmail
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return core.ErrPasswordRequired
	}
	if len(password) < 6 {
		return core.ErrPasswordTooShort
	}
	return nil
}
