package auth

import (
	"go.uber.org/fx"

	"github.com/avdeyev/studydesk/internal/config"
)

// Module provides authentication primitives via fx.
var Module = fx.Options(
	fx.Provide(func() PasswordHasher { return NewBcryptHasher(0) }),
	fx.Provide(func(cfg *config.Config) *TokenCodec {
		return NewTokenCodec(cfg.TokenSecret, cfg.TokenTTL)
	}),
)
