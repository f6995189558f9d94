package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notesapi/internal/app"
	domainservices "notesapi/internal/domain/services"
	"notesapi/internal/ports/services"
	"notesapi/pkg/logger"
)

// Константы шлюза аутентификации.
const (
	headerAuthorization = "Authorization"
	bearerPrefix        = "Bearer "

	logAuthGate = "auth gate"

	msgNoBearerHeader     = "no bearer authorization header, passing through unauthenticated"
	msgTokenRejected      = "token rejected, passing through unauthenticated"
	msgUnknownSubject     = "token subject has no backing user, passing through unauthenticated"
	msgTokenNotValid      = "token failed validation, passing through unauthenticated"
	msgRequestAuthManaged = "authenticated context established"
)

// NewAuthMiddleware создает шлюз аутентификации. Шлюз выполняется один раз
// на запрос, никогда сам не завершает запрос ошибкой: отсутствие
// аутентифицированного контекста обрабатывается на уровне маршрутов.
func NewAuthMiddleware(tokenSvc services.TokenService, identity *app.IdentityUseCase) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := RequestContext(ctx)
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))
		log.Debug(requestCtx, logAuthGate)

		// Повторный вход с уже установленным контекстом - no-op.
		if _, ok := AuthFromContext(requestCtx); ok {
			return ctx.Next()
		}

		authHeader := ctx.Get(headerAuthorization)
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			log.Debug(requestCtx, msgNoBearerHeader)
			return ctx.Next()
		}

		tokenString := authHeader[len(bearerPrefix):]

		subject, err := tokenSvc.ExtractSubject(requestCtx, tokenString)
		if err != nil {
			// Ошибка разбора - обычное значение, не повод прерывать конвейер.
			log.Debug(requestCtx, msgTokenRejected, zap.Error(err))
			return ctx.Next()
		}
		if subject == "" {
			log.Debug(requestCtx, msgTokenRejected)
			return ctx.Next()
		}

		principal, err := identity.Resolve(requestCtx, subject)
		if err != nil {
			log.Debug(requestCtx, msgUnknownSubject, zap.Error(err))
			return ctx.Next()
		}

		if status := tokenSvc.Validate(requestCtx, tokenString, subject); status != domainservices.TokenValid {
			log.Debug(requestCtx, msgTokenNotValid, zap.String("status", status.String()))
			return ctx.Next()
		}

		authCtx := WithAuth(requestCtx, &AuthContext{
			Principal: principal,
			RemoteIP:  ctx.IP(),
		})
		ctx.Locals(LocalsUserContext, authCtx)

		log.Debug(authCtx, msgRequestAuthManaged, zap.String("userID", principal.UserID))
		return ctx.Next()
	}
}
