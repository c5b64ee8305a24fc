package core

import "errors"

// Authentication related errors
var (
	ErrUserExists         = errors.New("user already exists")       // 409 Conflict
	ErrUserNotFound       = errors.New("user not found")            // 404 Not Found
	ErrInvalidCredentials = errors.New("invalid email or password") // 401 Unauthorized
)

// Bearer token errors
var (
	ErrMissingAuthHeader = errors.New("missing authorization header")                            // 401
	ErrInvalidAuthHeader = errors.New("invalid authorization format, expected 'Bearer <token>'") // 401
	ErrTokenInvalid      = errors.New("invalid token")                                           // 401
	ErrTokenExpired      = errors.New("token expired")                                           // 401
)

// Validation errors (client input)
var (
	ErrEmailRequired    = errors.New("email is required")                        // 400
	ErrInvalidEmail     = errors.New("invalid email format")                     // 400
	ErrPasswordRequired = errors.New("password is required")                     // 400
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")   // 400
	ErrCodeRequired     = errors.New("code is required")                         // 400
	ErrLanguageRequired = errors.New("language is required")                     // 400
	ErrCodeTooLong      = errors.New("code exceeds maximum of 10000 characters") // 400
)

// Provider errors stay inside the orchestration layer. A failed provider
// call downgrades to the heuristic tier; it never maps to an HTTP status.
var (
	ErrProviderUnavailable = errors.New("provider unavailable")
	ErrProviderResponse    = errors.New("unparseable provider response")
)

var ErrCacheNotFound = errors.New("identity not found in cache")
