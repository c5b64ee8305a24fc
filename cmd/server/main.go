package main

import (
	"context"
	"os"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	fiberadapter "github.com/CHEATEY13/Last/adapters/fiber"
	"github.com/CHEATEY13/Last/adapters/memory"
	pgxadapter "github.com/CHEATEY13/Last/adapters/pgx"
	"github.com/CHEATEY13/Last/config"
	"github.com/CHEATEY13/Last/core"
	"github.com/CHEATEY13/Last/heuristic"
	"github.com/CHEATEY13/Last/pkg/cache"
	"github.com/CHEATEY13/Last/pkg/crypto"
	"github.com/CHEATEY13/Last/pkg/token"
	"github.com/CHEATEY13/Last/providers"
	"github.com/CHEATEY13/Last/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("failed to load config", zap.Error(err))
	}

	log := newLogger(cfg)
	defer log.Sync()

	if cfg.JWTSecret == "" {
		log.Warn("JWT_SECRET not set, using built-in dev secret; do not run this in production")
	}

	store := newStore(cfg, log)
	tokens := token.New(cfg.JWTSecret, cfg.JWTExpiry)

	auth := services.NewAuthService(store, crypto.NewArgon2(), tokens)
	code := services.NewCodeService(
		newAssistant(cfg.OpenAIConfigured(), func() (core.Assistant, error) { return providers.NewOpenAI(cfg.OpenAIKey) }, log),
		newAssistant(cfg.GeminiConfigured(), func() (core.Assistant, error) { return providers.NewGemini(cfg.GeminiKey), nil }, log),
		newAssistant(cfg.HuggingFaceConfigured(), func() (core.Assistant, error) { return providers.NewHuggingFace(cfg.HuggingFaceKey), nil }, log),
		store, log,
	)

	log.Info("provider availability",
		zap.Bool("openai", cfg.OpenAIConfigured()),
		zap.Bool("gemini", cfg.GeminiConfigured()),
		zap.Bool("huggingface", cfg.HuggingFaceConfigured()),
	)

	adapter := fiberadapter.New(fiberadapter.Config{
		Auth:  auth,
		Code:  code,
		Cache: cache.New(cache.Config{}),
		Providers: fiberadapter.ProviderStatus{
			OpenAI:      cfg.OpenAIConfigured(),
			Gemini:      cfg.GeminiConfigured(),
			HuggingFace: cfg.HuggingFaceConfigured(),
		},
		DevMode: cfg.IsDevelopment(),
		Logger:  log,
	})

	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: []string{cfg.AllowedOrigin},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
	}))
	adapter.RegisterRoutes(app)

	log.Info("server listening", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) *zap.Logger {
	if cfg.IsDevelopment() {
		log, _ := zap.NewDevelopment()
		return log
	}
	log, _ := zap.NewProduction()
	return log
}

// newStore picks PostgreSQL when a DSN is configured and the in-memory
// store otherwise.
func newStore(cfg *config.Config, log *zap.Logger) core.UserStore {
	if cfg.DatabaseDSN == "" {
		log.Info("using in-memory user store")
		return memory.NewStore()
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Error("failed to connect to database", zap.Error(err))
		os.Exit(1)
	}

	adapter := pgxadapter.New(pool)
	if err := adapter.Migrate(ctx); err != nil {
		log.Error("failed to run migrations", zap.Error(err))
		os.Exit(1)
	}

	log.Info("using postgres user store")
	return adapter
}

// newAssistant wires one operation's provider chain: the live client
// when its credential is configured, always backed by the heuristic
// responder.
func newAssistant(configured bool, build func() (core.Assistant, error), log *zap.Logger) core.Assistant {
	fallback := heuristic.NewResponder()
	if !configured {
		return providers.NewTiered(nil, fallback, log)
	}

	primary, err := build()
	if err != nil {
		log.Warn("provider construction failed, falling back to heuristics", zap.Error(err))
		return providers.NewTiered(nil, fallback, log)
	}
	return providers.NewTiered(primary, fallback, log)
}
