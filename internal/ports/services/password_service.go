package services

import "context"

// PasswordService хэширует и проверяет пароли пользователей.
type PasswordService interface {
	// Hash возвращает соленый хэш пароля. Повторный вызов для того же
	// пароля дает другой результат за счет случайной соли.
	Hash(ctx context.Context, password string) (string, error)

	// Verify сравнивает пароль с хэшем за константное время.
	// Возвращает false для несовпадения и для некорректного хэша,
	// никогда не возвращает ошибку.
	Verify(ctx context.Context, password, hash string) bool
}
