// Package auth содержит HTTP обработчики регистрации и входа.
package auth

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notesapi/internal/adapters/http/middleware"
	"notesapi/internal/adapters/http/response"
	"notesapi/internal/app"
	"notesapi/internal/app/dto"
	"notesapi/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerRegister = "auth handler: register"
	LogHandlerLogin    = "auth handler: login"

	ErrorInvalidRequest = "invalid request"

	MsgUserRegistered = "User registered successfully"
)

// Handler содержит HTTP обработчики аутентификации.
type Handler struct {
	authUseCase *app.AuthUseCase
}

// NewHandler создает новый экземпляр обработчика аутентификации.
func NewHandler(authUseCase *app.AuthUseCase) *Handler {
	return &Handler{authUseCase: authUseCase}
}

// Register обрабатывает запрос на регистрацию нового пользователя.
func (h *Handler) Register(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerRegister)

	var req dto.AuthRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return response.WriteStatus(ctx, fiber.StatusBadRequest, "Bad Request", ErrorInvalidRequest)
	}

	if req.Email == "" || req.Password == "" {
		return response.WriteStatus(ctx, fiber.StatusBadRequest, "Bad Request", "email and password are required")
	}

	if _, err := h.authUseCase.Register(requestCtx, req.Email, req.Password); err != nil {
		log.Debug(requestCtx, "registration failed", zap.Error(err))
		return response.WriteError(ctx, err)
	}

	if err := ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": MsgUserRegistered,
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Login обрабатывает запрос на вход пользователя.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogin)

	var req dto.AuthRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return response.WriteStatus(ctx, fiber.StatusBadRequest, "Bad Request", ErrorInvalidRequest)
	}

	if req.Email == "" || req.Password == "" {
		return response.WriteStatus(ctx, fiber.StatusBadRequest, "Bad Request", "email and password are required")
	}

	token, expiresAt, err := h.authUseCase.Login(requestCtx, req.Email, req.Password)
	if err != nil {
		log.Debug(requestCtx, "login failed", zap.Error(err))
		return response.WriteError(ctx, err)
	}

	if err := ctx.Status(fiber.StatusOK).JSON(dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
