package model

import "time"

// OrderStatus describes the processing lifecycle of a placed order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusDone       OrderStatus = "done"
)

// Valid reports whether the status is one of the known lifecycle values.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusInProgress, OrderStatusDone:
		return true
	}
	return false
}

// Order is a completed assignment request. Immutable after creation except for
// Status, which administrators move through the lifecycle.
type Order struct {
	ID         int64
	UserID     int64
	Course     string
	Semester   string
	Faculty    string
	Subjects   string
	Deadline   time.Time
	TaskSource string
	WorkType   string
	Status     OrderStatus
	CreatedAt  time.Time
}
