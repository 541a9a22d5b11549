package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrDraftIncomplete    = errors.New("draft order is incomplete")
)
