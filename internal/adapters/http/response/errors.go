// Package response содержит единый формат тел ошибок HTTP API
// и отображение доменных ошибок на статусы.
package response

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"

	"notesapi/internal/domain/entities"
)

// Метки ошибок в теле ответа.
const (
	labelBadRequest   = "Bad Request"
	labelUnauthorized = "Unauthorized"
	labelForbidden    = "Forbidden"
	labelNotFound     = "Not Found"
	labelConflict     = "Conflict"
	labelInternal     = "Internal Server Error"
)

// ErrorBody - структура тела ответа об ошибке.
type ErrorBody struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Details   string    `json:"details,omitempty"`
	Path      string    `json:"path"`
}

// WriteError отображает доменную ошибку на HTTP статус и структурированное тело.
// Сообщения нераспознанных ошибок наружу не отдаются.
func WriteError(ctx fiber.Ctx, err error) error {
	status, label, details := classify(err)
	return write(ctx, status, label, details)
}

// WriteStatus отправляет тело ошибки с заданным статусом и меткой.
func WriteStatus(ctx fiber.Ctx, status int, label, details string) error {
	return write(ctx, status, label, details)
}

func write(ctx fiber.Ctx, status int, label, details string) error {
	body := ErrorBody{
		Timestamp: time.Now(),
		Status:    status,
		Error:     label,
		Details:   details,
		Path:      ctx.Path(),
	}
	if err := ctx.Status(status).JSON(body); err != nil {
		return fmt.Errorf("error sending error response: %w", err)
	}
	return nil
}

// classify сопоставляет доменную ошибку со статусом и видимыми деталями.
func classify(err error) (int, string, string) {
	switch {
	case errors.Is(err, entities.ErrInvalidNote),
		errors.Is(err, entities.ErrInvalidEmail),
		errors.Is(err, entities.ErrPasswordTooShort):
		return fiber.StatusBadRequest, labelBadRequest, err.Error()
	case errors.Is(err, entities.ErrInvalidCredentials):
		return fiber.StatusUnauthorized, labelUnauthorized, entities.ErrInvalidCredentials.Error()
	case errors.Is(err, entities.ErrAccessDenied):
		return fiber.StatusForbidden, labelForbidden, entities.ErrAccessDenied.Error()
	case errors.Is(err, entities.ErrNoteNotFound),
		errors.Is(err, entities.ErrUserNotFound),
		errors.Is(err, entities.ErrPrincipalNotFound):
		return fiber.StatusNotFound, labelNotFound, err.Error()
	case errors.Is(err, entities.ErrUserExists):
		return fiber.StatusConflict, labelConflict, entities.ErrUserExists.Error()
	default:
		return fiber.StatusInternalServerError, labelInternal, ""
	}
}
