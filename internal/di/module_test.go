package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/avdeyev/studydesk/internal/app"
	"github.com/avdeyev/studydesk/internal/config"
	"github.com/avdeyev/studydesk/internal/domain/repository"
	"github.com/avdeyev/studydesk/internal/storage/postgres"
	"github.com/avdeyev/studydesk/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:      ":0",
		DatabaseURI:     "postgres://stub",
		TokenSecret:     "secret",
		TokenTTL:        time.Hour,
		BotPollTimeout:  time.Second,
		AdminLogin:      "admin",
		ShutdownTimeout: time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	userRepo := test.NewUserRepositoryStub()
	orderRepo := &test.OrderRepositoryStub{}

	var facade *app.Facade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Provide(func() context.Context { return context.Background() }),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.UserRepository(userRepo)),
			fx.Replace(repository.OrderRepository(orderRepo)),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected facade instance")
	}
}
