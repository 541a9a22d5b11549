package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/avdeyev/studydesk/internal/domain/errors"
	"github.com/avdeyev/studydesk/internal/test"
)

func newAuthRouter(facade AuthFacade) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	handler := NewAuthHandler(facade)
	engine.POST("/api/user/register", handler.Register)
	engine.POST("/api/user/login", handler.Login)
	return engine
}

func postJSON(engine *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	r.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, r)
	return w
}

func TestRegister(t *testing.T) {
	engine := newAuthRouter(test.AuthFacadeStub{})

	w := postJSON(engine, "/api/user/register", `{"login":"student","password":"pass"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if auth := w.Header().Get("Authorization"); !strings.HasPrefix(auth, "Bearer ") {
		t.Fatalf("missing bearer header: %q", auth)
	}
	if cookies := w.Header().Values("Set-Cookie"); len(cookies) == 0 {
		t.Fatal("expected auth cookie")
	}
}

func TestRegisterConflict(t *testing.T) {
	engine := newAuthRouter(test.AuthFacadeStub{
		RegisterFn: func(context.Context, string, string) (string, error) {
			return "", domainErrors.ErrAlreadyExists
		},
	})

	w := postJSON(engine, "/api/user/register", `{"login":"student","password":"pass"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
}

func TestRegisterBadRequest(t *testing.T) {
	engine := newAuthRouter(test.AuthFacadeStub{})

	for _, body := range []string{"{", `{"login":"only"}`, `{"password":"only"}`} {
		if w := postJSON(engine, "/api/user/register", body); w.Code != http.StatusBadRequest {
			t.Fatalf("body %q: status = %d, want 400", body, w.Code)
		}
	}
}

func TestLogin(t *testing.T) {
	engine := newAuthRouter(test.AuthFacadeStub{})

	w := postJSON(engine, "/api/user/login", `{"login":"student","password":"pass"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if auth := w.Header().Get("Authorization"); !strings.HasPrefix(auth, "Bearer ") {
		t.Fatalf("missing bearer header: %q", auth)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	engine := newAuthRouter(test.AuthFacadeStub{
		AuthenticateFn: func(context.Context, string, string) (string, error) {
			return "", domainErrors.ErrInvalidCredentials
		},
	})

	w := postJSON(engine, "/api/user/login", `{"login":"student","password":"wrong"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}
