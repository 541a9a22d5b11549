package repository

import (
	"context"

	"github.com/avdeyev/studydesk/internal/domain/model"
)

// UserRepository describes persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user model.NewUser) (*model.User, error)
	GetByLogin(ctx context.Context, login string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByTelegramID(ctx context.Context, chatID int64) (*model.User, error)
}
