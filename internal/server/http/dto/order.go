package dto

import "time"

// OrderRequest is the single-page form payload. The handler replays it
// through the wizard step by step, so field-level validation messages match
// the chat flow exactly.
type OrderRequest struct {
	Course     string   `json:"course"`
	Semester   string   `json:"semester"`
	Faculty    string   `json:"faculty"`
	Subjects   []string `json:"subjects"`
	Deadline   string   `json:"deadline"`
	TaskSource string   `json:"task_source"`
	WorkType   string   `json:"work_type"`
}

// OrderResponse is a placed order as rendered to clients.
type OrderResponse struct {
	ID         int64     `json:"id"`
	Course     string    `json:"course"`
	Semester   string    `json:"semester"`
	Faculty    string    `json:"faculty"`
	Subjects   string    `json:"subjects"`
	Deadline   string    `json:"deadline"`
	TaskSource string    `json:"task_source"`
	WorkType   string    `json:"work_type"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// StatusUpdateRequest carries an administrative status transition.
type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// ErrorResponse carries a user-facing error message.
type ErrorResponse struct {
	Error string `json:"error"`
}
