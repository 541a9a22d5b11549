package model

import "time"

// User is a student or administrator account. Telegram-originated users carry
// the chat identifier they were created from.
type User struct {
	ID           int64
	Login        string
	PasswordHash string
	TelegramID   *int64
	IsAdmin      bool
	CreatedAt    time.Time
}

// NewUser carries the fields required to create an account.
type NewUser struct {
	Login        string
	PasswordHash string
	TelegramID   *int64
	IsAdmin      bool
}
