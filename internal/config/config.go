// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// knownWeakSecrets contains default/example secrets that must be rejected in production.
var knownWeakSecrets = []string{
	"change-me-to-32-byte-secret-key!",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
}

// MinJWTSecretLength is the minimum required length for the token signing secret.
// HS256 should be keyed with at least 32 bytes.
const MinJWTSecretLength = 32

// Config holds the application configuration loaded from environment variables.
type Config struct {
	MongoURL  string `env:"CLUBSITE_MONGO_URL" envDefault:"mongodb://localhost:27017"`
	DBName    string `env:"CLUBSITE_DB_NAME" envDefault:"clubsite"`
	JWTSecret string `env:"CLUBSITE_JWT_SECRET,required"`

	ServerHost string `env:"CLUBSITE_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"CLUBSITE_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"CLUBSITE_ENV" envDefault:"development"`
	LogLevel   string `env:"CLUBSITE_LOG_LEVEL" envDefault:"info"`

	// TokenTTLHours is the lifetime of issued bearer tokens. Tokens are
	// stateless; expiry is the only invalidation mechanism.
	TokenTTLHours int `env:"CLUBSITE_TOKEN_TTL_HOURS" envDefault:"24"`

	// CORSOrigins is a comma-separated list of allowed origins for the
	// public frontend. "*" allows any origin.
	CORSOrigins []string `env:"CLUBSITE_CORS_ORIGINS" envSeparator:"," envDefault:"*"`

	// DoSeed enables seeding the content collections at startup.
	DoSeed bool `env:"CLUBSITE_DO_SEED" envDefault:"false"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// TokenTTL returns the token lifetime as a duration.
func (c Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLHours) * time.Hour
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.JWTSecret) < MinJWTSecretLength {
		return nil, fmt.Errorf("CLUBSITE_JWT_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinJWTSecretLength, len(cfg.JWTSecret))
	}

	for _, weak := range knownWeakSecrets {
		if cfg.JWTSecret == weak {
			return nil, fmt.Errorf("CLUBSITE_JWT_SECRET is a known default value and must not be used; " +
				"generate a secure secret with: openssl rand -base64 32")
		}
	}

	if cfg.TokenTTLHours <= 0 {
		return nil, fmt.Errorf("CLUBSITE_TOKEN_TTL_HOURS must be positive, got %d", cfg.TokenTTLHours)
	}

	if !hasMinimumEntropy(cfg.JWTSecret) {
		slog.Warn("CLUBSITE_JWT_SECRET has low character diversity; " +
			"consider generating a random secret with: openssl rand -base64 32")
	}

	return cfg, nil
}

// hasMinimumEntropy checks that a secret contains at least 3 character classes
// (lowercase, uppercase, digits, special characters).
func hasMinimumEntropy(s string) bool {
	charTypes := 0
	if strings.ContainsAny(s, "abcdefghijklmnopqrstuvwxyz") {
		charTypes++
	}
	if strings.ContainsAny(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		charTypes++
	}
	if strings.ContainsAny(s, "0123456789") {
		charTypes++
	}
	if strings.ContainsAny(s, "!@#$%^&*()-_=+[]{}|;:,.<>?/~`'\"\\") {
		charTypes++
	}
	return charTypes >= 3
}
