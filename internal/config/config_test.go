package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func envMap(values map[string]string) envLookup {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(nil, envMap(map[string]string{
		"DATABASE_URI": "postgres://localhost/studydesk",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.RunAddress != ":8080" {
		t.Fatalf("run address = %q", cfg.RunAddress)
	}
	if cfg.BotToken != "" {
		t.Fatalf("bot token = %q, want empty", cfg.BotToken)
	}
	if cfg.BotPollTimeout != 30*time.Second {
		t.Fatalf("poll timeout = %v", cfg.BotPollTimeout)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("token ttl = %v", cfg.TokenTTL)
	}
	if cfg.AdminLogin != "admin" || cfg.AdminPassword != "" {
		t.Fatalf("admin defaults = (%q, %q)", cfg.AdminLogin, cfg.AdminPassword)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("shutdown timeout = %v", cfg.ShutdownTimeout)
	}
}

func TestLoadRequiresDatabaseURI(t *testing.T) {
	if _, err := load(nil, envMap(nil)); err == nil {
		t.Fatal("expected error without database URI")
	}
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	args := []string{
		"-a", ":9090",
		"-d", "postgres://flag/db",
		"-t", "flag-token",
		"-poll-timeout", "5s",
		"-token-ttl", "1h",
		"-admin-password", "secret",
	}
	cfg, err := load(args, envMap(map[string]string{
		"RUN_ADDRESS":  ":8081",
		"DATABASE_URI": "postgres://env/db",
		"BOT_TOKEN":    "env-token",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.RunAddress != ":9090" || cfg.DatabaseURI != "postgres://flag/db" || cfg.BotToken != "flag-token" {
		t.Fatalf("flags must win: %+v", cfg)
	}
	if cfg.BotPollTimeout != 5*time.Second || cfg.TokenTTL != time.Hour {
		t.Fatalf("durations not parsed: %+v", cfg)
	}
	if cfg.AdminPassword != "secret" {
		t.Fatalf("admin password = %q", cfg.AdminPassword)
	}
}

func TestTokenSecretFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret")
	if err := os.WriteFile(path, []byte("file-secret"), 0o600); err != nil {
		t.Fatalf("write secret: %v", err)
	}

	cfg, err := load(nil, envMap(map[string]string{
		"DATABASE_URI":      "postgres://localhost/studydesk",
		"TOKEN_SECRET":      "env-secret",
		"TOKEN_SECRET_FILE": path,
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TokenSecret != "file-secret" {
		t.Fatalf("token secret = %q, want file content", cfg.TokenSecret)
	}
}

func TestInvalidDurationRejected(t *testing.T) {
	_, err := load([]string{"-poll-timeout", "soon"}, envMap(map[string]string{
		"DATABASE_URI": "postgres://localhost/studydesk",
	}))
	if err == nil {
		t.Fatal("expected error for invalid duration")
	}
}
