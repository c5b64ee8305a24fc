package core

import "time"

// User is the credential-store record.
//
// PasswordHash never crosses the HTTP boundary; handlers serialize the
// Public projection instead.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
	Sessions     []CodeSession
}

// PublicUser is the client-facing projection of a User.
type PublicUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

// Identity is the authenticated caller attached to a request by the
// bearer middleware. A nil Identity means a guest call.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Operation types recorded in a user's history.
const (
	OpAnalyze   = "analyze"
	OpDebug     = "debug"
	OpTranslate = "translate"
)

// CodeSession is a logged code operation - a historical record, not a
// login session.
type CodeSession struct {
	ID             string    `json:"id"`
	Type           string    `json:"type"`
	Code           string    `json:"code"`
	Language       string    `json:"language"`
	TargetLanguage string    `json:"targetLanguage,omitempty"`
	Result         any       `json:"result"`
	Timestamp      time.Time `json:"timestamp"`
}

// MaxSessionHistory bounds per-user history. Stores evict the oldest
// record once the limit is reached.
const MaxSessionHistory = 100

// MaxCodeLength is enforced by the route layer before any assistant runs.
const MaxCodeLength = 10000
