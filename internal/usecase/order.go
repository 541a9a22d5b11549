package usecase

import (
	"context"
	"strings"

	"github.com/avdeyev/studydesk/internal/catalog"
	domainErrors "github.com/avdeyev/studydesk/internal/domain/errors"
	"github.com/avdeyev/studydesk/internal/domain/model"
	"github.com/avdeyev/studydesk/internal/domain/repository"
	"github.com/avdeyev/studydesk/internal/wizard"
)

// OrderUseCase turns completed wizard drafts into persisted orders and serves
// the role-scoped listings.
type OrderUseCase struct {
	orders  repository.OrderRepository
	catalog *catalog.Catalog
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, cat *catalog.Catalog) *OrderUseCase {
	return &OrderUseCase{orders: orders, catalog: cat}
}

// Place commits a completed draft as a pending order owned by userID.
// Subjects are flattened to a display string and the task source key is
// resolved to its label.
func (u *OrderUseCase) Place(ctx context.Context, userID int64, draft *wizard.Draft) (*model.Order, error) {
	if draft == nil || !draft.Complete() {
		return nil, domainErrors.ErrDraftIncomplete
	}

	order := &model.Order{
		UserID:     userID,
		Course:     draft.Course,
		Semester:   draft.Semester,
		Faculty:    draft.Faculty,
		Subjects:   strings.Join(draft.Subjects, ", "),
		Deadline:   draft.Deadline,
		TaskSource: u.catalog.TaskSourceLabel(draft.TaskSource),
		WorkType:   draft.WorkType,
		Status:     model.OrderStatusPending,
	}

	return u.orders.Create(ctx, order)
}

// ListByUser returns the user's orders ordered by (status, deadline).
func (u *OrderUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// ListAll returns every order ordered by (status, deadline).
func (u *OrderUseCase) ListAll(ctx context.Context) ([]model.Order, error) {
	return u.orders.ListAll(ctx)
}

// UpdateStatus applies an administrative status transition.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	if !status.Valid() {
		return domainErrors.ErrInvalidStatus
	}
	return u.orders.UpdateStatus(ctx, orderID, status)
}
