package services

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/CHEATEY13/Last/core"
	"github.com/CHEATEY13/Last/pkg/crypto"
)

func newTestAuthService(store *FakeUserStore) *AuthService {
	return NewAuthService(store, crypto.NewArgon2(), &FakeTokenManager{})
}

// Requirement: SignUp validates input, creates the user and returns a
// token; duplicate emails are rejected.
func TestAuthService_SignUp(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		setup    func(*FakeUserStore)
		wantErr  error
	}{
		{
			name:     "creates user for valid input",
			email:    "alice@example.com",
			password: "SecurePass123!",
		},
		{
			name:     "rejects empty email",
			email:    "",
			password: "SecurePass123!",
			wantErr:  core.ErrEmailRequired,
		},
		{
			name:     "rejects email without at sign",
			email:    "alice.example.com",
			password: "SecurePass123!",
			wantErr:  core.ErrInvalidEmail,
		},
		{
			name:     "rejects email without domain dot",
			email:    "alice@localhost",
			password: "SecurePass123!",
			wantErr:  core.ErrInvalidEmail,
		},
		{
			name:     "rejects empty password",
			email:    "alice@example.com",
			password: "",
			wantErr:  core.ErrPasswordRequired,
		},
		{
			name:     "rejects short password",
			email:    "alice@example.com",
			password: "12345",
			wantErr:  core.ErrPasswordTooShort,
		},
		{
			name:     "rejects duplicate email",
			email:    "alice@example.com",
			password: "SecurePass123!",
			setup: func(store *FakeUserStore) {
				_ = store.CreateUser(context.Background(), &core.User{
					ID:    "existing-user",
					Email: "alice@example.com",
				})
			},
			wantErr: core.ErrUserExists,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			store := NewFakeUserStore()
			if test.setup != nil {
				test.setup(store)
			}
			service := newTestAuthService(store)

			result, err := service.SignUp(context.Background(), test.email, test.password, "Alice")

			if test.wantErr != nil {
				if err != test.wantErr {
					t.Fatalf("SignUp() error = %v, want %v", err, test.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("SignUp() error = %v", err)
			}
			if result.User.Email != test.email {
				t.Errorf("User.Email = %q, want %q", result.User.Email, test.email)
			}
			if result.Token == "" {
				t.Error("SignUp() should return a token")
			}
		})
	}
}

// Requirement: the serialized user never exposes the password hash.
func TestAuthService_SignUp_HashNotExposed(t *testing.T) {
	service := newTestAuthService(NewFakeUserStore())

	result, err := service.SignUp(context.Background(), "bob@example.com", "SecurePass123!", "Bob")
	if err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}

	raw, err := json.Marshal(result.User)
	if err != nil {
		t.Fatalf("marshal user: %v", err)
	}
	lowered := strings.ToLower(string(raw))
	if strings.Contains(lowered, "hash") || strings.Contains(lowered, "argon2") {
		t.Errorf("serialized user leaks hash material: %s", raw)
	}
}

// Requirement: unknown email and wrong password are indistinguishable.
func TestAuthService_Login(t *testing.T) {
	store := NewFakeUserStore()
	service := newTestAuthService(store)

	if _, err := service.SignUp(context.Background(), "carol@example.com", "RightPassword", "Carol"); err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "valid credentials", email: "carol@example.com", password: "RightPassword"},
		{name: "wrong password", email: "carol@example.com", password: "WrongPassword", wantErr: core.ErrInvalidCredentials},
		{name: "unknown email", email: "nobody@example.com", password: "RightPassword", wantErr: core.ErrInvalidCredentials},
		{name: "empty email", email: "", password: "RightPassword", wantErr: core.ErrEmailRequired},
		{name: "empty password", email: "carol@example.com", password: "", wantErr: core.ErrPasswordRequired},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result, err := service.Login(context.Background(), test.email, test.password)
			if err != test.wantErr {
				t.Fatalf("Login() error = %v, want %v", err, test.wantErr)
			}
			if test.wantErr == nil && result.Token == "" {
				t.Error("Login() should return a token")
			}
		})
	}
}

// Requirement: wrong-password and unknown-email failures share the
// same error value and message.
func TestAuthService_Login_UniformFailure(t *testing.T) {
	service := newTestAuthService(NewFakeUserStore())
	if _, err := service.SignUp(context.Background(), "dave@example.com", "RightPassword", ""); err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}

	_, errWrongPassword := service.Login(context.Background(), "dave@example.com", "WrongPassword")
	_, errUnknownEmail := service.Login(context.Background(), "ghost@example.com", "RightPassword")

	if errWrongPassword != errUnknownEmail {
		t.Errorf("failure errors differ: %v vs %v", errWrongPassword, errUnknownEmail)
	}
	if errWrongPassword.Error() != errUnknownEmail.Error() {
		t.Errorf("failure messages differ: %q vs %q", errWrongPassword, errUnknownEmail)
	}
}

// Requirement: Identify resolves a bearer token to the caller identity
// and rejects tokens for deleted users.
func TestAuthService_Identify(t *testing.T) {
	store := NewFakeUserStore()
	service := newTestAuthService(store)

	result, err := service.SignUp(context.Background(), "erin@example.com", "SecurePass123!", "Erin")
	if err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}

	identity, err := service.Identify(context.Background(), result.Token)
	if err != nil {
		t.Fatalf("Identify() error = %v", err)
	}
	if identity.Email != "erin@example.com" {
		t.Errorf("identity.Email = %q, want erin@example.com", identity.Email)
	}

	if _, err := service.Identify(context.Background(), "garbage"); err != core.ErrTokenInvalid {
		t.Errorf("Identify(garbage) error = %v, want ErrTokenInvalid", err)
	}

	if _, err := service.Identify(context.Background(), "token-deleted-user"); err != core.ErrTokenInvalid {
		t.Errorf("Identify(unknown subject) error = %v, want ErrTokenInvalid", err)
	}
}
