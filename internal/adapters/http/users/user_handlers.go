// Package users содержит HTTP обработчики управления пользователями.
package users

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notesapi/internal/adapters/http/middleware"
	"notesapi/internal/adapters/http/response"
	"notesapi/internal/app"
	"notesapi/internal/app/dto"
	"notesapi/internal/domain/entities"
	"notesapi/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerGetUser    = "handling get user request"
	LogHandlerListUsers  = "handling list users request"
	LogHandlerUpdateUser = "handling update user request"
	LogHandlerDeleteUser = "handling delete user request"

	ErrMsgInvalidUserID      = "invalid user id"
	ErrMsgInvalidRequestBody = "invalid request body"
)

// Handler - обработчик HTTP запросов для работы с пользователями.
type Handler struct {
	authUseCase *app.AuthUseCase
}

// NewHandler создает новый экземпляр обработчика пользователей.
func NewHandler(authUseCase *app.AuthUseCase) *Handler {
	return &Handler{authUseCase: authUseCase}
}

// GetUser обрабатывает запрос на получение пользователя по ID.
func (h *Handler) GetUser(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.GetUser"))
	log.Debug(requestCtx, LogHandlerGetUser)

	userID := ctx.Params("user_id")
	if userID == "" {
		return response.WriteStatus(ctx, fiber.StatusBadRequest, "Bad Request", ErrMsgInvalidUserID)
	}

	user, err := h.authUseCase.GetUser(requestCtx, userID)
	if err != nil {
		log.Debug(requestCtx, "failed to get user", zap.Error(err))
		return response.WriteError(ctx, err)
	}

	if err := ctx.JSON(toUserResponse(user)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// ListUsers обрабатывает запрос на получение всех пользователей.
func (h *Handler) ListUsers(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.ListUsers"))
	log.Debug(requestCtx, LogHandlerListUsers)

	users, err := h.authUseCase.ListUsers(requestCtx)
	if err != nil {
		log.Error(requestCtx, "failed to list users", zap.Error(err))
		return response.WriteError(ctx, err)
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, toUserResponse(user))
	}

	if err := ctx.JSON(responses); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// UpdateUser обрабатывает запрос на обновление email и пароля пользователя.
func (h *Handler) UpdateUser(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.UpdateUser"))
	log.Debug(requestCtx, LogHandlerUpdateUser)

	userID := ctx.Params("user_id")
	if userID == "" {
		return response.WriteStatus(ctx, fiber.StatusBadRequest, "Bad Request", ErrMsgInvalidUserID)
	}

	var req dto.AuthRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return response.WriteStatus(ctx, fiber.StatusBadRequest, "Bad Request", ErrMsgInvalidRequestBody)
	}

	user, err := h.authUseCase.UpdateUser(requestCtx, userID, req.Email, req.Password)
	if err != nil {
		log.Debug(requestCtx, "failed to update user", zap.Error(err))
		return response.WriteError(ctx, err)
	}

	if err := ctx.JSON(toUserResponse(user)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// DeleteUser обрабатывает запрос на удаление пользователя.
func (h *Handler) DeleteUser(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.DeleteUser"))
	log.Debug(requestCtx, LogHandlerDeleteUser)

	userID := ctx.Params("user_id")
	if userID == "" {
		return response.WriteStatus(ctx, fiber.StatusBadRequest, "Bad Request", ErrMsgInvalidUserID)
	}

	if err := h.authUseCase.DeleteUser(requestCtx, userID); err != nil {
		log.Debug(requestCtx, "failed to delete user", zap.Error(err))
		return response.WriteError(ctx, err)
	}

	if err := ctx.SendStatus(fiber.StatusNoContent); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// toUserResponse строит DTO ответа из доменной сущности.
func toUserResponse(user *entities.User) dto.UserResponse {
	return dto.UserResponse{
		ID:    user.ID,
		Email: user.Email,
	}
}
