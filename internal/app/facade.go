package app

import (
	"context"

	"github.com/avdeyev/studydesk/internal/domain/model"
	"github.com/avdeyev/studydesk/internal/usecase"
	"github.com/avdeyev/studydesk/internal/wizard"
)

// Facade aggregates the use cases consumed by both transport adapters.
type Facade struct {
	auth   *usecase.AuthUseCase
	orders *usecase.OrderUseCase
}

// NewFacade constructs the application facade.
func NewFacade(auth *usecase.AuthUseCase, orders *usecase.OrderUseCase) *Facade {
	return &Facade{auth: auth, orders: orders}
}

func (f *Facade) Register(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Register(ctx, login, password)
	return token, err
}

func (f *Facade) Authenticate(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	return token, err
}

func (f *Facade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *Facade) UserByID(ctx context.Context, id int64) (*model.User, error) {
	return f.auth.GetByID(ctx, id)
}

func (f *Facade) ResolveTelegramUser(ctx context.Context, chatID int64) (*model.User, error) {
	return f.auth.ResolveTelegram(ctx, chatID)
}

func (f *Facade) EnsureAdmin(ctx context.Context, login, password string) error {
	return f.auth.EnsureAdmin(ctx, login, password)
}

func (f *Facade) PlaceOrder(ctx context.Context, userID int64, draft *wizard.Draft) (*model.Order, error) {
	return f.orders.Place(ctx, userID, draft)
}

func (f *Facade) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.orders.ListByUser(ctx, userID)
}

func (f *Facade) AllOrders(ctx context.Context) ([]model.Order, error) {
	return f.orders.ListAll(ctx)
}

func (f *Facade) UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	return f.orders.UpdateStatus(ctx, orderID, status)
}
