package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/avdeyev/studydesk/internal/bot"
	"github.com/avdeyev/studydesk/internal/catalog"
	"github.com/avdeyev/studydesk/internal/config"
	pkgAuth "github.com/avdeyev/studydesk/internal/pkg/auth"
	testhelpers "github.com/avdeyev/studydesk/internal/test"
	"github.com/avdeyev/studydesk/internal/usecase"
	"github.com/avdeyev/studydesk/internal/wizard"
)

func newTestFacade() *Facade {
	auth := usecase.NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, pkgAuth.NewTokenCodec("secret", time.Hour))
	orders := usecase.NewOrderUseCase(&testhelpers.OrderRepositoryStub{}, catalog.New())
	return NewFacade(auth, orders)
}

func newDisabledBot(facade *Facade) *bot.Bot {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	wiz := wizard.New(wizard.NewMemorySessions(), catalog.New())
	return bot.New(context.Background(), "", time.Second, wiz, facade, logger)
}

func TestNewHTTPServer(t *testing.T) {
	cfg := &config.Config{RunAddress: ":9999"}
	router := gin.New()
	server := newHTTPServer(serverParams{Config: cfg, Router: router})
	if server.Addr != ":9999" {
		t.Fatalf("expected address :9999, got %q", server.Addr)
	}
	if server.Handler != router {
		t.Fatalf("expected handler to be router")
	}
}

func TestRegisterLifecycleStartStop(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	server := &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()}
	facade := newTestFacade()
	cfg := &config.Config{AdminLogin: "admin", ShutdownTimeout: 100 * time.Millisecond}

	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: shutdowner,
		Logger:     logger,
		Server:     server,
		Bot:        newDisabledBot(facade),
		Facade:     facade,
		Config:     cfg,
	})

	if len(recorder.Hooks) != 1 {
		t.Fatalf("expected one hook registered, got %d", len(recorder.Hooks))
	}

	hook := recorder.Hooks[0]
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := hook.OnStart(ctx); err != nil {
		t.Fatalf("on start failed: %v", err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = hook.OnStop(context.Background())
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected on stop to finish")
	}
}

func TestRegisterLifecycleSeedsAdmin(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	users := testhelpers.NewUserRepositoryStub()
	auth := usecase.NewAuthUseCase(users, testhelpers.HasherStub{}, pkgAuth.NewTokenCodec("secret", time.Hour))
	facade := NewFacade(auth, usecase.NewOrderUseCase(&testhelpers.OrderRepositoryStub{}, catalog.New()))
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	server := &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()}
	cfg := &config.Config{AdminLogin: "admin", AdminPassword: "secret", ShutdownTimeout: 100 * time.Millisecond}

	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: &testhelpers.ShutdownerStub{},
		Logger:     logger,
		Server:     server,
		Bot:        newDisabledBot(facade),
		Facade:     facade,
		Config:     cfg,
	})

	hook := recorder.Hooks[0]
	if err := hook.OnStart(context.Background()); err != nil {
		t.Fatalf("on start failed: %v", err)
	}
	defer func() { _ = hook.OnStop(context.Background()) }()

	admin, err := users.GetByLogin(context.Background(), "admin")
	if err != nil || !admin.IsAdmin {
		t.Fatalf("admin not seeded: (%+v, %v)", admin, err)
	}
}

func TestRegisterLifecycleShutdownOnServerError(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := newTestFacade()

	server := &http.Server{Addr: "bad addr"}

	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: shutdowner,
		Logger:     logger,
		Server:     server,
		Bot:        newDisabledBot(facade),
		Facade:     facade,
		Config:     &config.Config{ShutdownTimeout: 100 * time.Millisecond},
	})

	hook := recorder.Hooks[0]
	if err := hook.OnStart(context.Background()); err != nil {
		t.Fatalf("on start failed: %v", err)
	}

	select {
	case <-shutdowner.Called:
	case <-time.After(time.Second):
		t.Fatal("expected shutdowner to be invoked")
	}
	_ = hook.OnStop(context.Background())
}
