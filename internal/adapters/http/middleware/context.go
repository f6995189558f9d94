// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"notesapi/internal/domain/entities"
)

// LocalsUserContext - ключ fiber locals, под которым хранится контекст запроса.
const LocalsUserContext = "userContext"

// AuthContext - аутентификационный контекст одного запроса.
// Создается шлюзом аутентификации и живет только в рамках запроса,
// глобального изменяемого состояния нет.
type AuthContext struct {
	Principal *entities.Principal
	RemoteIP  string
}

// authKeyType - тип ключа контекста для предотвращения коллизий.
type authKeyType struct{}

var authKey = authKeyType{}

// WithAuth возвращает контекст с установленным аутентификационным контекстом.
func WithAuth(ctx context.Context, auth *AuthContext) context.Context {
	return context.WithValue(ctx, authKey, auth)
}

// AuthFromContext извлекает аутентификационный контекст запроса.
// Возвращает false, если запрос не аутентифицирован.
func AuthFromContext(ctx context.Context) (*AuthContext, bool) {
	auth, ok := ctx.Value(authKey).(*AuthContext)
	return auth, ok && auth != nil && auth.Principal != nil
}

// RequestContext возвращает контекст запроса, накопленный предыдущими
// промежуточными обработчиками, либо исходный контекст fiber.
func RequestContext(ctx fiber.Ctx) context.Context {
	if userCtx, ok := ctx.Locals(LocalsUserContext).(context.Context); ok {
		return userCtx
	}
	return ctx.Context()
}
