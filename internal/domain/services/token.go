// Package services содержит доменные типы и ошибки для сервисов безопасности.
package services

import (
	"errors"
	"time"
)

// Ошибки, связанные с bearer токенами.
var (
	ErrEmptyToken     = errors.New("token string is empty")
	ErrMalformedToken = errors.New("malformed token")
	ErrBadSignature   = errors.New("token signature verification failed")
	ErrExpiredToken   = errors.New("token has expired")
	ErrSigningToken   = errors.New("failed to sign token")
)

// TokenStatus - результат проверки токена относительно ожидаемого субъекта.
// Проверка никогда не возвращает ошибку: причина отказа выражается статусом.
type TokenStatus int

// Возможные статусы проверки токена.
const (
	TokenValid TokenStatus = iota
	TokenEmpty
	TokenMalformed
	TokenBadSignature
	TokenExpired
	TokenSubjectMismatch
)

// String возвращает текстовое представление статуса.
func (s TokenStatus) String() string {
	switch s {
	case TokenValid:
		return "valid"
	case TokenEmpty:
		return "empty"
	case TokenMalformed:
		return "malformed"
	case TokenBadSignature:
		return "bad signature"
	case TokenExpired:
		return "expired"
	case TokenSubjectMismatch:
		return "subject mismatch"
	default:
		return "unknown"
	}
}

// TokenConfig содержит неизменяемые настройки сервиса токенов.
// Секрет трактуется как сырые байты UTF-8, не декодируется из base64.
type TokenConfig struct {
	Secret []byte
	TTL    time.Duration
	Issuer string
}

// TokenClaims определяет состав подписанного токена.
type TokenClaims struct {
	Subject   string
	Issuer    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
