// Package entities определяет доменные сущности сервиса заметок.
package entities

import (
	"errors"
	"time"
)

// Ошибки домена пользователя.
var (
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordTooShort   = errors.New("password must contain at least 8 characters")
)

// User представляет зарегистрированного пользователя.
// Email сравнивается с точностью до регистра, как сохранен.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
