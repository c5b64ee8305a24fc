package core

import "context"

// Ports define interfaces for external dependencies

// ============================================
// STORAGE PORT
// ============================================

// UserStore defines credential-store operations. Implementations must
// make CreateUser atomic with respect to the email-uniqueness check.
type UserStore interface {
	CreateUser(ctx context.Context, u *User) error

	GetUserByID(ctx context.Context, id string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)

	// AddSession appends a code operation to the user's history,
	// rotating out the oldest record past MaxSessionHistory.
	AddSession(ctx context.Context, userID string, s CodeSession) error
}

// ============================================
// ASSISTANT PORT
// ============================================

// Assistant is the capability interface implemented by both live
// provider adapters and the heuristic responder. Implementations never
// return an error for bad input code; errors signal that the assistant
// itself could not serve (so the caller can fall back a tier).
type Assistant interface {
	Name() string
	Analyze(ctx context.Context, code, language string) (*AnalysisResult, error)
	Debug(ctx context.Context, code, language string) (*DebugResult, error)
	Translate(ctx context.Context, code, language, target string) (*TranslationResult, error)
}

// ============================================
// TOKEN PORT
// ============================================

// TokenManager issues and verifies stateless bearer tokens.
type TokenManager interface {
	Issue(userID string) (string, error)
	Verify(token string) (string, error)
}

// ============================================
// CACHE PORT
// ============================================

// IdentityCache caches verified bearer-token lookups keyed by token
// hash, so hot tokens skip the store read.
type IdentityCache interface {
	Get(tokenHash string) (*Identity, error)
	Set(tokenHash string, id *Identity) error
	Delete(tokenHash string) error
	Clear() error
}
