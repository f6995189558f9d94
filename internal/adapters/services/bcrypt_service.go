package services

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"notesapi/internal/domain/services"
	svc "notesapi/internal/ports/services"
)

const (
	errMsgFailedToGenerateHash = "failed to generate password hash"
	errMsgPasswordTooShort     = "password is too short"
)

// ServiceBcrypt реализует интерфейс PasswordService.
type ServiceBcrypt struct {
	cost int
}

// NewBcrypt создает новый сервис хэширования паролей.
// Стоимость подбирается так, чтобы хэширование занимало порядка 100мс.
func NewBcrypt(cost int) svc.PasswordService {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &ServiceBcrypt{cost: cost}
}

// Hash хэширует пароль с помощью bcrypt со случайной солью.
func (s *ServiceBcrypt) Hash(_ context.Context, password string) (string, error) {
	if password == "" {
		return "", services.ErrInvalidPassword
	}

	if len(password) < services.MinPasswordLength {
		return "", fmt.Errorf("%s: %w", errMsgPasswordTooShort, services.ErrInvalidPassword)
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errMsgFailedToGenerateHash, services.ErrHashingFailed)
	}

	return string(hashedBytes), nil
}

// Verify проверяет соответствие пароля хэшу. Некорректный хэш
// трактуется как несовпадение, ошибка не возвращается.
func (s *ServiceBcrypt) Verify(_ context.Context, password, hash string) bool {
	if password == "" || hash == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
