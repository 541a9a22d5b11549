package test

import (
	"context"
	"time"

	domainErrors "github.com/avdeyev/studydesk/internal/domain/errors"
	"github.com/avdeyev/studydesk/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users      map[string]*model.User
	ByID       map[int64]*model.User
	ByTelegram map[int64]*model.User
	Next       int64
	Err        error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users:      make(map[string]*model.User),
		ByID:       make(map[int64]*model.User),
		ByTelegram: make(map[int64]*model.User),
		Next:       1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, user model.NewUser) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if s.ByTelegram == nil {
		s.ByTelegram = make(map[int64]*model.User)
	}
	if _, exists := s.Users[user.Login]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if user.TelegramID != nil {
		if _, exists := s.ByTelegram[*user.TelegramID]; exists {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	if s.Next == 0 {
		s.Next = 1
	}
	created := &model.User{
		ID:           s.Next,
		Login:        user.Login,
		PasswordHash: user.PasswordHash,
		TelegramID:   user.TelegramID,
		IsAdmin:      user.IsAdmin,
		CreatedAt:    time.Now(),
	}
	s.Next++
	s.Users[created.Login] = created
	s.ByID[created.ID] = created
	if created.TelegramID != nil {
		s.ByTelegram[*created.TelegramID] = created
	}
	return created, nil
}

// GetByLogin fetches user by login or returns not found.
func (s *UserRepositoryStub) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[login]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByTelegramID fetches user by chat identifier or returns not found.
func (s *UserRepositoryStub) GetByTelegramID(ctx context.Context, chatID int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByTelegram[chatID]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// StatusUpdateCall stores information about UpdateStatus invocations.
type StatusUpdateCall struct {
	OrderID int64
	Status  model.OrderStatus
}

// OrderRepositoryStub allows tests to customize behaviour.
type OrderRepositoryStub struct {
	CreateFn       func(context.Context, *model.Order) (*model.Order, error)
	ListByUserFn   func(context.Context, int64) ([]model.Order, error)
	ListAllFn      func(context.Context) ([]model.Order, error)
	UpdateStatusFn func(context.Context, int64, model.OrderStatus) error

	Created     []model.Order
	Orders      []model.Order
	UpdateCalls []StatusUpdateCall
}

// Create tracks invocations and returns configured responses.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	s.Created = append(s.Created, *order)
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	created := *order
	created.ID = int64(len(s.Created))
	created.CreatedAt = time.Now()
	return &created, nil
}

// ListByUser returns orders from configured slice.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	return s.Orders, nil
}

// ListAll returns every configured order.
func (s *OrderRepositoryStub) ListAll(ctx context.Context) ([]model.Order, error) {
	if s.ListAllFn != nil {
		return s.ListAllFn(ctx)
	}
	return s.Orders, nil
}

// UpdateStatus records update invocations.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, status)
	}
	s.UpdateCalls = append(s.UpdateCalls, StatusUpdateCall{OrderID: orderID, Status: status})
	return nil
}
