package repository

import (
	"context"

	"github.com/avdeyev/studydesk/internal/domain/model"
)

// OrderRepository describes persistence operations for placed orders.
// Listings are ordered by (status, deadline) ascending.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
}
