package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"notesapi/internal/domain/entities"
	"notesapi/internal/ports/repositories"
	"notesapi/pkg/logger"
)

const (
	methodResolve = "Resolve"

	msgResolvingPrincipal = "resolving principal by token subject"
	msgPrincipalNotFound  = "token subject has no backing user"

	errCtxResolvingPrincipal = "resolving principal"
)

// IdentityUseCase восстанавливает Principal по субъекту проверенного токена.
// Кэширование не выполняется: каждый запрос читает актуальное состояние.
type IdentityUseCase struct {
	userRepo repositories.UserRepository
}

// NewIdentityUseCase создает новый резолвер личности.
func NewIdentityUseCase(userRepo repositories.UserRepository) *IdentityUseCase {
	return &IdentityUseCase{userRepo: userRepo}
}

// Resolve находит пользователя по точному совпадению email и строит Principal.
func (i *IdentityUseCase) Resolve(ctx context.Context, email string) (*entities.Principal, error) {
	log := logger.Log(ctx).With(zap.String("method", methodResolve), zap.String("email", email))
	log.Debug(ctx, msgResolvingPrincipal)

	user, err := i.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgPrincipalNotFound)
			return nil, fmt.Errorf("%s: %w", errCtxResolvingPrincipal, entities.ErrPrincipalNotFound)
		}
		return nil, fmt.Errorf("%s: %w", errCtxResolvingPrincipal, err)
	}

	return entities.PrincipalFromUser(user), nil
}
