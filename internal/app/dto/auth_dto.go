// Package dto содержит структуры запросов и ответов HTTP API.
package dto

import "time"

// AuthRequest содержит учетные данные для регистрации и входа.
type AuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse содержит выпущенный bearer токен.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UserResponse содержит открытые данные пользователя.
// Хэш пароля наружу не отдается.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
