package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	DatabaseURI     string
	BotToken        string
	BotPollTimeout  time.Duration
	TokenSecret     string
	TokenTTL        time.Duration
	AdminLogin      string
	AdminPassword   string
	ShutdownTimeout time.Duration
}

const (
	defaultRunAddress      = ":8080"
	defaultTokenSecret     = "change-me-in-production"
	defaultTokenTTL        = 24 * time.Hour
	defaultBotPollTimeout  = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultAdminLogin      = "admin"
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:     getString(lookup, "DATABASE_URI", ""),
		BotToken:        getString(lookup, "BOT_TOKEN", ""),
		BotPollTimeout:  getDuration(lookup, "BOT_POLL_TIMEOUT", defaultBotPollTimeout),
		TokenSecret:     getString(lookup, "TOKEN_SECRET", defaultTokenSecret),
		TokenTTL:        getDuration(lookup, "TOKEN_TTL", defaultTokenTTL),
		AdminLogin:      getString(lookup, "ADMIN_LOGIN", defaultAdminLogin),
		AdminPassword:   getString(lookup, "ADMIN_PASSWORD", ""),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("studydesk", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		pollTimeoutStr     = cfg.BotPollTimeout.String()
		tokenTTLStr        = cfg.TokenTTL.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.BotToken, "t", cfg.BotToken, "Telegram bot token (empty disables the bot)")
	fs.StringVar(&cfg.TokenSecret, "token-secret", cfg.TokenSecret, "Secret for signing auth tokens")
	fs.StringVar(&cfg.AdminLogin, "admin-login", cfg.AdminLogin, "Administrator login seeded at startup")
	fs.StringVar(&cfg.AdminPassword, "admin-password", cfg.AdminPassword, "Administrator password (empty disables seeding)")
	fs.StringVar(&pollTimeoutStr, "poll-timeout", pollTimeoutStr, "Telegram long poll timeout")
	fs.StringVar(&tokenTTLStr, "token-ttl", tokenTTLStr, "Auth token lifetime")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.BotPollTimeout, err = time.ParseDuration(pollTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid poll timeout: %w", err)
	}

	if cfg.TokenTTL, err = time.ParseDuration(tokenTTLStr); err != nil {
		return nil, fmt.Errorf("invalid token ttl: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("TOKEN_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read token secret file: %w", err)
		}
		cfg.TokenSecret = string(content)
	}

	if cfg.BotPollTimeout <= 0 {
		cfg.BotPollTimeout = defaultBotPollTimeout
	}

	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
