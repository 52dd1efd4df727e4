// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"os"
	"testing"
	"time"
)

func setEnv(t *testing.T, key, value string) {
	t.Helper()
	if err := os.Setenv(key, value); err != nil {
		t.Fatalf("failed to set %s: %v", key, err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	// Clear environment and set only required var
	os.Clearenv()
	setEnv(t, "CLUBSITE_JWT_SECRET", "test-secret-key-32-bytes-long!!!")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	// Check defaults
	if cfg.MongoURL != "mongodb://localhost:27017" {
		t.Errorf("MongoURL = %q, want %q", cfg.MongoURL, "mongodb://localhost:27017")
	}
	if cfg.DBName != "clubsite" {
		t.Errorf("DBName = %q, want %q", cfg.DBName, "clubsite")
	}
	if cfg.ServerHost != "localhost" {
		t.Errorf("ServerHost = %q, want %q", cfg.ServerHost, "localhost")
	}
	if cfg.ServerPort != 8080 {
		t.Errorf("ServerPort = %d, want %d", cfg.ServerPort, 8080)
	}
	if cfg.Env != "development" {
		t.Errorf("Env = %q, want %q", cfg.Env, "development")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.TokenTTLHours != 24 {
		t.Errorf("TokenTTLHours = %d, want %d", cfg.TokenTTLHours, 24)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Errorf("CORSOrigins = %v, want [*]", cfg.CORSOrigins)
	}
	if cfg.DoSeed {
		t.Error("DoSeed = true, want false")
	}
}

func TestLoad_CustomValues(t *testing.T) {
	os.Clearenv()
	customSecret := "custom-secret-key-32-bytes-long!"
	setEnv(t, "CLUBSITE_JWT_SECRET", customSecret)
	setEnv(t, "CLUBSITE_MONGO_URL", "mongodb://db.internal:27017")
	setEnv(t, "CLUBSITE_DB_NAME", "club_prod")
	setEnv(t, "CLUBSITE_SERVER_HOST", "0.0.0.0")
	setEnv(t, "CLUBSITE_SERVER_PORT", "3000")
	setEnv(t, "CLUBSITE_ENV", "production")
	setEnv(t, "CLUBSITE_LOG_LEVEL", "debug")
	setEnv(t, "CLUBSITE_TOKEN_TTL_HOURS", "8")
	setEnv(t, "CLUBSITE_CORS_ORIGINS", "https://club.example.org,https://www.example.org")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.JWTSecret != customSecret {
		t.Errorf("JWTSecret = %q, want %q", cfg.JWTSecret, customSecret)
	}
	if cfg.MongoURL != "mongodb://db.internal:27017" {
		t.Errorf("MongoURL = %q, want %q", cfg.MongoURL, "mongodb://db.internal:27017")
	}
	if cfg.DBName != "club_prod" {
		t.Errorf("DBName = %q, want %q", cfg.DBName, "club_prod")
	}
	if cfg.ServerPort != 3000 {
		t.Errorf("ServerPort = %d, want %d", cfg.ServerPort, 3000)
	}
	if cfg.TokenTTLHours != 8 {
		t.Errorf("TokenTTLHours = %d, want %d", cfg.TokenTTLHours, 8)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[0] != "https://club.example.org" {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
}

func TestLoad_RequiredJWTSecret(t *testing.T) {
	os.Clearenv()
	// Don't set CLUBSITE_JWT_SECRET

	_, err := Load()
	if err == nil {
		t.Fatal("Load() should fail when CLUBSITE_JWT_SECRET is not set")
	}
}

func TestLoad_JWTSecretTooShort(t *testing.T) {
	tests := []struct {
		name   string
		secret string
	}{
		{"empty", ""},
		{"short", "short"},
		{"31_bytes", "1234567890123456789012345678901"}, // 31 bytes
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			setEnv(t, "CLUBSITE_JWT_SECRET", tt.secret)

			_, err := Load()
			if err == nil {
				t.Fatalf("Load() should fail with %d-byte secret", len(tt.secret))
			}
		})
	}
}

func TestLoad_KnownWeakSecretRejected(t *testing.T) {
	os.Clearenv()
	setEnv(t, "CLUBSITE_JWT_SECRET", "change-me-to-32-byte-secret-key!")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() should reject a known default secret")
	}
}

func TestLoad_NonPositiveTokenTTL(t *testing.T) {
	os.Clearenv()
	setEnv(t, "CLUBSITE_JWT_SECRET", "test-secret-key-32-bytes-long!!!")
	setEnv(t, "CLUBSITE_TOKEN_TTL_HOURS", "0")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() should fail with zero token TTL")
	}
}

func TestConfig_IsDevelopment(t *testing.T) {
	tests := []struct {
		env  string
		want bool
	}{
		{"development", true},
		{"production", false},
		{"staging", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			cfg := Config{Env: tt.env}
			if got := cfg.IsDevelopment(); got != tt.want {
				t.Errorf("IsDevelopment() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfig_ServerAddr(t *testing.T) {
	tests := []struct {
		host string
		port int
		want string
	}{
		{"localhost", 8080, "localhost:8080"},
		{"0.0.0.0", 3000, "0.0.0.0:3000"},
		{"127.0.0.1", 443, "127.0.0.1:443"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			cfg := Config{ServerHost: tt.host, ServerPort: tt.port}
			if got := cfg.ServerAddr(); got != tt.want {
				t.Errorf("ServerAddr() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfig_TokenTTL(t *testing.T) {
	cfg := Config{TokenTTLHours: 24}
	if got := cfg.TokenTTL(); got != 24*time.Hour {
		t.Errorf("TokenTTL() = %v, want %v", got, 24*time.Hour)
	}
}
