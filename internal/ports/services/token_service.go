// Package services определяет интерфейсы сервисов безопасности.
package services

import (
	"context"
	"time"

	"notesapi/internal/domain/entities"
	"notesapi/internal/domain/services"
)

// TokenService выпускает и проверяет подписанные bearer токены.
// Реализация не хранит состояния и безопасна для конкурентного использования.
type TokenService interface {
	// Issue выпускает токен с субъектом, равным email пользователя.
	Issue(ctx context.Context, user *entities.User) (string, time.Time, error)

	// ExtractSubject проверяет подпись и возвращает субъект токена.
	ExtractSubject(ctx context.Context, tokenString string) (string, error)

	// Validate сверяет токен с ожидаемым субъектом. Причина отказа
	// возвращается статусом, а не ошибкой.
	Validate(ctx context.Context, tokenString, expectedSubject string) services.TokenStatus
}
