package handlers

import (
	"context"

	"github.com/avdeyev/studydesk/internal/domain/model"
	"github.com/avdeyev/studydesk/internal/wizard"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, login, password string) (string, error)
	Authenticate(ctx context.Context, login, password string) (string, error)
	ParseToken(token string) (int64, error)
	UserByID(ctx context.Context, id int64) (*model.User, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, userID int64, draft *wizard.Draft) (*model.Order, error)
	Orders(ctx context.Context, userID int64) ([]model.Order, error)
	AllOrders(ctx context.Context) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
}

// Facade aggregates the full set of operations used across handlers.
type Facade interface {
	AuthFacade
	OrderFacade
}
