// Package fiber exposes the service over HTTP: route registration,
// request handlers, bearer middleware and error-to-status mapping.
package fiber

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"github.com/CHEATEY13/Last/core"
	"github.com/CHEATEY13/Last/services"
)

// ProviderStatus reports which provider credentials were configured.
// Exposed by the health endpoint; never includes key material.
type ProviderStatus struct {
	OpenAI      bool `json:"openai"`
	Gemini      bool `json:"gemini"`
	HuggingFace bool `json:"huggingface"`
}

type Adapter struct {
	auth      *services.AuthService
	code      *services.CodeService
	cache     core.IdentityCache
	providers ProviderStatus
	devMode   bool
	logger    *zap.Logger
}

type Config struct {
	Auth      *services.AuthService
	Code      *services.CodeService
	Cache     core.IdentityCache // optional, nil disables identity caching
	Providers ProviderStatus
	DevMode   bool
	Logger    *zap.Logger
}

func New(cfg Config) *Adapter {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{
		auth:      cfg.Auth,
		code:      cfg.Code,
		cache:     cfg.Cache,
		providers: cfg.Providers,
		devMode:   cfg.DevMode,
		logger:    logger,
	}
}

func (a *Adapter) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/signup", a.signup)
	auth.Post("/login", a.login)
	auth.Get("/me", a.requireAuth, a.me)
	auth.Post("/verify", a.requireAuth, a.verify)

	// Code operations work for guests; an identity just enables history.
	api.Post("/analyze", a.optionalAuth, a.analyze)
	api.Post("/debug", a.optionalAuth, a.debug)
	api.Post("/translate", a.optionalAuth, a.translate)

	api.Get("/languages", a.languages)
	api.Get("/health", a.health)
}
