// Package config loads environment configuration and decides which
// provider credentials count as configured.
package config

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port          string        `env:"PORT" envDefault:"8080"`
	AppEnv        string        `env:"APP_ENV" envDefault:"development"`
	AllowedOrigin string        `env:"ALLOWED_ORIGIN" envDefault:"*"`
	DatabaseDSN   string        `env:"DATABASE_DSN"`
	JWTSecret     string        `env:"JWT_SECRET"`
	JWTExpiry     time.Duration `env:"JWT_EXPIRY" envDefault:"168h"`

	OpenAIKey      string `env:"OPENAI_API_KEY"`
	GeminiKey      string `env:"GEMINI_API_KEY"`
	HuggingFaceKey string `env:"HUGGINGFACE_API_KEY"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv != "production"
}

// Placeholder values that ship in example env files. A key matching one
// of these counts as not configured.
var placeholderKeys = map[string]bool{
	"your_openai_api_key_here":      true,
	"your_gemini_api_key_here":      true,
	"your_huggingface_api_key_here": true,
	"changeme":                      true,
}

// Configured reports whether a credential is usable: non-empty and not
// a known placeholder.
func Configured(key string) bool {
	key = strings.TrimSpace(key)
	if key == "" {
		return false
	}
	return !placeholderKeys[strings.ToLower(key)]
}

func (c *Config) OpenAIConfigured() bool      { return Configured(c.OpenAIKey) }
func (c *Config) GeminiConfigured() bool      { return Configured(c.GeminiKey) }
func (c *Config) HuggingFaceConfigured() bool { return Configured(c.HuggingFaceKey) }
