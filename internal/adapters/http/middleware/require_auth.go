package middleware

import (
	"github.com/gofiber/fiber/v3"

	"notesapi/internal/adapters/http/response"
	"notesapi/pkg/logger"
)

const msgNoAuthenticatedContext = "request requires authentication but no context established"

// RequireAuth отклоняет запросы без установленного аутентификационного
// контекста. Навешивается на защищенные группы маршрутов после шлюза.
func RequireAuth() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := RequestContext(ctx)

		if _, ok := AuthFromContext(requestCtx); !ok {
			logger.Log(requestCtx).Debug(requestCtx, msgNoAuthenticatedContext)
			return response.WriteStatus(ctx, fiber.StatusUnauthorized, "Unauthorized", "authentication required")
		}

		return ctx.Next()
	}
}
