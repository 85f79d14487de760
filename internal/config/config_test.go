package config

import (
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "JWT_SECRET", "BCRYPT_COST", "CORS_ALLOWED_ORIGINS", "JWT_EXPIRE_HOURS"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("Port: got %q, want 8080", cfg.Port)
	}
	if cfg.BcryptCost != 10 {
		t.Errorf("BcryptCost: got %d, want 10", cfg.BcryptCost)
	}
	if cfg.JWTExpireHours != 24 {
		t.Errorf("JWTExpireHours: got %d, want 24", cfg.JWTExpireHours)
	}
	if cfg.CORSAllowedOrigins != nil {
		t.Errorf("CORSAllowedOrigins: got %v, want nil", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("BCRYPT_COST", "not-a-number")
	t.Setenv("CORS_ALLOWED_ORIGINS", " http://a.test , ,http://b.test")

	cfg := Load()
	if cfg.Port != "9000" {
		t.Errorf("Port: got %q", cfg.Port)
	}
	if cfg.BcryptCost != 10 {
		t.Errorf("invalid BCRYPT_COST should fall back to 10, got %d", cfg.BcryptCost)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[0] != "http://a.test" || cfg.CORSAllowedOrigins[1] != "http://b.test" {
		t.Errorf("unexpected origins: %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_JWTExpireHours(t *testing.T) {
	cases := map[string]int{
		"0":   0,
		"12":  12,
		"-3":  24,
		"abc": 24,
	}
	for in, want := range cases {
		t.Setenv("JWT_EXPIRE_HOURS", in)
		if got := Load().JWTExpireHours; got != want {
			t.Errorf("JWT_EXPIRE_HOURS=%q: got %d, want %d", in, got, want)
		}
	}
}

func TestValidate(t *testing.T) {
	cfg := Config{Env: "prod", JWTSecret: DefaultJWTSecret}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for default secret in prod")
	}

	cfg.JWTSecret = "a-real-secret"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	cfg.TLSCertFile = "cert.pem"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error when only the TLS cert is set")
	}

	dev := Config{Env: "dev", JWTSecret: DefaultJWTSecret}
	if err := dev.Validate(); err != nil {
		t.Errorf("dev with default secret should pass, got %v", err)
	}
}

func TestDatabaseURL(t *testing.T) {
	cfg := Config{DBHost: "db", DBPort: "5432", DBName: "blog", DBUser: "u", DBPass: "p@ss", DBSSLMode: "disable"}
	got := cfg.DatabaseURL()
	if !strings.HasPrefix(got, "postgres://u:p%40ss@db:5432/blog") || !strings.HasSuffix(got, "sslmode=disable") {
		t.Errorf("unexpected url: %s", got)
	}
	if dsn := cfg.DSN(); !strings.Contains(dsn, "dbname=blog") {
		t.Errorf("unexpected dsn: %s", dsn)
	}
}
