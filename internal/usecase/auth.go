package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	domainErrors "github.com/avdeyev/studydesk/internal/domain/errors"
	"github.com/avdeyev/studydesk/internal/domain/model"
	"github.com/avdeyev/studydesk/internal/domain/repository"
	pkgAuth "github.com/avdeyev/studydesk/internal/pkg/auth"
)

// AuthUseCase handles account lifecycle, owner resolution and token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens *pkgAuth.TokenCodec
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, tokens *pkgAuth.TokenCodec) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: tokens}
}

// Register creates a new user with login/password and returns an auth token.
func (u *AuthUseCase) Register(ctx context.Context, login, password string) (*model.User, string, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	usr, err := u.users.Create(ctx, model.NewUser{Login: login, PasswordHash: hash})
	if err != nil {
		return nil, "", err
	}

	token, err := u.tokens.Issue(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// Authenticate validates credentials and returns an auth token.
func (u *AuthUseCase) Authenticate(ctx context.Context, login, password string) (*model.User, string, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken extracts the user ID from the provided token.
func (u *AuthUseCase) ParseToken(token string) (int64, error) {
	if token == "" {
		return 0, pkgAuth.ErrInvalidToken
	}
	return u.tokens.Parse(token)
}

// GetByID fetches a user by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

// ResolveTelegram finds the account linked to a chat id, creating one on first
// contact. Issuing real credentials for such accounts belongs to the auth
// collaborator; the placeholder hash cannot be logged in with.
func (u *AuthUseCase) ResolveTelegram(ctx context.Context, chatID int64) (*model.User, error) {
	usr, err := u.users.GetByTelegramID(ctx, chatID)
	if err == nil {
		return usr, nil
	}
	if !errors.Is(err, domainErrors.ErrNotFound) {
		return nil, err
	}

	placeholder, err := u.hasher.Hash(uuid.NewString())
	if err != nil {
		return nil, err
	}

	usr, err = u.users.Create(ctx, model.NewUser{
		Login:        fmt.Sprintf("tg_%d", chatID),
		PasswordHash: placeholder,
		TelegramID:   &chatID,
	})
	if err != nil {
		// Lost a race with a concurrent update for the same chat.
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return u.users.GetByTelegramID(ctx, chatID)
		}
		return nil, err
	}
	return usr, nil
}

// EnsureAdmin seeds the administrator account at startup. A blank password
// disables seeding.
func (u *AuthUseCase) EnsureAdmin(ctx context.Context, login, password string) error {
	if login == "" || password == "" {
		return nil
	}

	if _, err := u.users.GetByLogin(ctx, login); err == nil {
		return nil
	} else if !errors.Is(err, domainErrors.ErrNotFound) {
		return err
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return err
	}

	_, err = u.users.Create(ctx, model.NewUser{Login: login, PasswordHash: hash, IsAdmin: true})
	if errors.Is(err, domainErrors.ErrAlreadyExists) {
		return nil
	}
	return err
}
