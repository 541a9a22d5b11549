package test

import (
	"context"
	"time"

	"github.com/avdeyev/studydesk/internal/domain/model"
	"github.com/avdeyev/studydesk/internal/wizard"
)

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	PlaceFn        func(context.Context, int64, *wizard.Draft) (*model.Order, error)
	OrdersFn       func(context.Context, int64) ([]model.Order, error)
	AllOrdersFn    func(context.Context) ([]model.Order, error)
	UpdateStatusFn func(context.Context, int64, model.OrderStatus) error
}

// PlaceOrder delegates to provided function or returns an order built from the draft.
func (s OrderFacadeStub) PlaceOrder(ctx context.Context, userID int64, draft *wizard.Draft) (*model.Order, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, userID, draft)
	}
	return &model.Order{
		ID:       1,
		UserID:   userID,
		Course:   draft.Course,
		Semester: draft.Semester,
		Faculty:  draft.Faculty,
		Deadline: draft.Deadline,
		WorkType: draft.WorkType,
		Status:   model.OrderStatusPending,
	}, nil
}

// Orders returns predefined orders for given user.
func (s OrderFacadeStub) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, userID)
	}
	return []model.Order{{ID: 1, UserID: userID, Deadline: time.Unix(0, 0)}}, nil
}

// AllOrders returns predefined orders across users.
func (s OrderFacadeStub) AllOrders(ctx context.Context) ([]model.Order, error) {
	if s.AllOrdersFn != nil {
		return s.AllOrdersFn(ctx)
	}
	return []model.Order{{ID: 1, Deadline: time.Unix(0, 0)}}, nil
}

// UpdateOrderStatus executes configured status handler.
func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, status)
	}
	return nil
}

// StudyDeskFacadeStub aggregates facade dependencies for HTTP layer tests.
type StudyDeskFacadeStub struct {
	AuthFacadeStub
	OrderFacadeStub
}
