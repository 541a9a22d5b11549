package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	domainErrors "github.com/avdeyev/studydesk/internal/domain/errors"
	"github.com/avdeyev/studydesk/internal/domain/model"
	pkgAuth "github.com/avdeyev/studydesk/internal/pkg/auth"
	"github.com/avdeyev/studydesk/internal/test"
)

func newAuthUseCase(users *test.UserRepositoryStub) *AuthUseCase {
	return NewAuthUseCase(users, test.HasherStub{}, pkgAuth.NewTokenCodec("secret", time.Hour))
}

func TestRegisterAndAuthenticate(t *testing.T) {
	users := test.NewUserRepositoryStub()
	uc := newAuthUseCase(users)
	ctx := context.Background()

	usr, token, err := uc.Register(ctx, "student", "pass")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if usr.Login != "student" || token == "" {
		t.Fatalf("unexpected register result: %+v, token %q", usr, token)
	}

	id, err := uc.ParseToken(token)
	if err != nil || id != usr.ID {
		t.Fatalf("ParseToken = (%d, %v), want (%d, nil)", id, err, usr.ID)
	}

	if _, _, err := uc.Register(ctx, "student", "other"); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("duplicate login: got %v, want ErrAlreadyExists", err)
	}

	if _, _, err := uc.Authenticate(ctx, "student", "wrong"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("wrong password: got %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := uc.Authenticate(ctx, "nobody", "pass"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("unknown login: got %v, want ErrInvalidCredentials", err)
	}

	authed, token2, err := uc.Authenticate(ctx, "student", "pass")
	if err != nil || authed.ID != usr.ID || token2 == "" {
		t.Fatalf("authenticate: (%+v, %q, %v)", authed, token2, err)
	}
}

func TestRegisterRejectsBlankCredentials(t *testing.T) {
	uc := newAuthUseCase(test.NewUserRepositoryStub())
	ctx := context.Background()

	for _, pair := range [][2]string{{"", "pass"}, {"  ", "pass"}, {"login", ""}} {
		if _, _, err := uc.Register(ctx, pair[0], pair[1]); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
			t.Fatalf("Register(%q, %q): got %v, want ErrInvalidCredentials", pair[0], pair[1], err)
		}
	}
}

func TestParseTokenRejectsEmpty(t *testing.T) {
	uc := newAuthUseCase(test.NewUserRepositoryStub())

	if _, err := uc.ParseToken(""); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestResolveTelegramCreatesOnFirstContact(t *testing.T) {
	users := test.NewUserRepositoryStub()
	uc := newAuthUseCase(users)
	ctx := context.Background()

	usr, err := uc.ResolveTelegram(ctx, 42)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if usr.Login != "tg_42" {
		t.Fatalf("unexpected login %q", usr.Login)
	}
	if usr.TelegramID == nil || *usr.TelegramID != 42 {
		t.Fatalf("chat id not linked: %+v", usr)
	}
	if usr.IsAdmin {
		t.Fatal("telegram accounts must not be admins")
	}

	again, err := uc.ResolveTelegram(ctx, 42)
	if err != nil || again.ID != usr.ID {
		t.Fatalf("second resolve must return the same account: (%+v, %v)", again, err)
	}
	if len(users.Users) != 1 {
		t.Fatalf("expected a single account, got %d", len(users.Users))
	}
}

// racingUserRepo misses the first chat lookup and rejects the insert, as if
// a concurrent update created the account in between.
type racingUserRepo struct {
	*test.UserRepositoryStub
	lookups int
}

func (r *racingUserRepo) GetByTelegramID(ctx context.Context, chatID int64) (*model.User, error) {
	r.lookups++
	if r.lookups == 1 {
		return nil, domainErrors.ErrNotFound
	}
	return r.UserRepositoryStub.GetByTelegramID(ctx, chatID)
}

func (r *racingUserRepo) Create(ctx context.Context, user model.NewUser) (*model.User, error) {
	return nil, domainErrors.ErrAlreadyExists
}

func TestResolveTelegramLosesCreateRace(t *testing.T) {
	users := test.NewUserRepositoryStub()
	ctx := context.Background()

	chatID := int64(7)
	seeded, err := users.Create(ctx, model.NewUser{Login: "tg_7", PasswordHash: "hash", TelegramID: &chatID})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	uc := NewAuthUseCase(&racingUserRepo{UserRepositoryStub: users}, test.HasherStub{}, pkgAuth.NewTokenCodec("secret", time.Hour))

	usr, err := uc.ResolveTelegram(ctx, chatID)
	if err != nil {
		t.Fatalf("resolve after race: %v", err)
	}
	if usr.ID != seeded.ID {
		t.Fatalf("expected seeded account %d, got %d", seeded.ID, usr.ID)
	}
}

func TestEnsureAdmin(t *testing.T) {
	users := test.NewUserRepositoryStub()
	uc := newAuthUseCase(users)
	ctx := context.Background()

	if err := uc.EnsureAdmin(ctx, "admin", "secret"); err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	admin, err := users.GetByLogin(ctx, "admin")
	if err != nil || !admin.IsAdmin {
		t.Fatalf("admin not seeded: (%+v, %v)", admin, err)
	}

	// Idempotent: a second call must not fail or duplicate.
	if err := uc.EnsureAdmin(ctx, "admin", "secret"); err != nil {
		t.Fatalf("repeat seed: %v", err)
	}
	if len(users.Users) != 1 {
		t.Fatalf("expected single account, got %d", len(users.Users))
	}

	// Blank password disables seeding.
	if err := uc.EnsureAdmin(ctx, "ops", ""); err != nil {
		t.Fatalf("blank password: %v", err)
	}
	if _, err := users.GetByLogin(ctx, "ops"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatal("blank password must not create an account")
	}
}
