// Package notes содержит HTTP обработчики для управления заметками.
package notes

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

// Константы ошибок и сообщений для логирования.
const (
	LogHandlerCreateNote = "handling create note request"
	LogHandlerGetNote    = "handling get note request"
	LogHandlerListNotes  = "handling list notes request"
	LogHandlerUpdateNote = "handling update note request"
	LogHandlerDeleteNote = "handling delete note request"

	ErrMsgInvalidNoteID      = "invalid note id"
	ErrMsgInvalidRequestBody = "invalid request body"

	MsgHealthy = "Notes API is running"
)

// Handler - обработчик HTTP запросов для работы с заметками.
type Handler struct {
	noteUseCase *app.NoteUseCase
}

// NewHandler создает новый экземпляр обработчика заметок.
func NewHandler(noteUseCase *app.NoteUseCase) *Handler {
	return &Handler{noteUseCase: noteUseCase}
}

// Health обрабатывает проверку работоспособности сервиса.
func (h *Handler) Health(ctx fiber.Ctx) error {
	if err := ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": MsgHealthy,
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// CreateNote обрабатывает запрос на создание новой заметки.
func (h *Handler) CreateNote(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.CreateNote"))
	log.Debug(requestCtx, LogHandlerCreateNote)

	auth, ok := middleware.AuthFromContext(requestCtx)
	if !ok {
		return response.WriteStatus(ctx, fiber.StatusUnauthorized, "Unauthorized", "authentication required")
	}

	var req dto.NoteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return response.WriteStatus(ctx, fiber.StatusBadRequest, "Bad Request", ErrMsgInvalidRequestBody)
	}

	note, err := h.noteUseCase.Create(requestCtx, auth.Principal, req.Title, req.Content)
	if err != nil {
		log.Debug(requestCtx, "failed to create note", zap.Error(err))
		return response.WriteError(ctx, err)
	}

	if err := ctx.Status(fiber.StatusCreated).JSON(toNoteResponse(note)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// GetNote обрабатывает запрос на получение заметки по ID.
func (h *Handler) GetNote(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.GetNote"))
	log.Debug(requestCtx, LogHandlerGetNote)

	auth, ok := middleware.AuthFromContext(requestCtx)
	if !ok {
		return response.WriteStatus(ctx, fiber.StatusUnauthorized, "Unauthorized", "authentication required")
	}

	noteID := ctx.Params("note_id")
	if noteID == "" {
		return response.WriteStatus(ctx, fiber.StatusBadRequest, "Bad Request", ErrMsgInvalidNoteID)
	}

	note, err := h.noteUseCase.Get(requestCtx, auth.Principal, noteID)
	if err != nil {
		log.Debug(requestCtx, "failed to get note", zap.Error(err))
		return response.WriteError(ctx, err)
	}

	if err := ctx.JSON(toNoteResponse(note)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// ListNotes обрабатывает запрос на получение всех заметок.
func (h *Handler) ListNotes(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.ListNotes"))
	log.Debug(requestCtx, LogHandlerListNotes)

	notes, err := h.noteUseCase.ListAll(requestCtx)
	if err != nil {
		log.Error(requestCtx, "failed to list notes", zap.Error(err))
		return response.WriteError(ctx, err)
	}

	if err := ctx.JSON(notes); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// UpdateNote обрабатывает запрос на обновление заметки.
func (h *Handler) UpdateNote(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.UpdateNote"))
	log.Debug(requestCtx, LogHandlerUpdateNote)

	auth, ok := middleware.AuthFromContext(requestCtx)
	if !ok {
		return response.WriteStatus(ctx, fiber.StatusUnauthorized, "Unauthorized", "authentication required")
	}

	noteID := ctx.Params("note_id")
	if noteID == "" {
		return response.WriteStatus(ctx, fiber.StatusBadRequest, "Bad Request", ErrMsgInvalidNoteID)
	}

	var req dto.NoteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return response.WriteStatus(ctx, fiber.StatusBadRequest, "Bad Request", ErrMsgInvalidRequestBody)
	}

	note, err := h.noteUseCase.Update(requestCtx, auth.Principal, noteID, req.Title, req.Content)
	if err != nil {
		log.Debug(requestCtx, "failed to update note", zap.Error(err))
		return response.WriteError(ctx, err)
	}

	if err := ctx.JSON(toNoteResponse(note)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// DeleteNote обрабатывает запрос на удаление заметки.
func (h *Handler) DeleteNote(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.DeleteNote"))
	log.Debug(requestCtx, LogHandlerDeleteNote)

	auth, ok := middleware.AuthFromContext(requestCtx)
	if !ok {
		return response.WriteStatus(ctx, fiber.StatusUnauthorized, "Unauthorized", "authentication required")
	}

	noteID := ctx.Params("note_id")
	if noteID == "" {
		return response.WriteStatus(ctx, fiber.StatusBadRequest, "Bad Request", ErrMsgInvalidNoteID)
	}

	if err := h.noteUseCase.Delete(requestCtx, auth.Principal, noteID); err != nil {
		log.Debug(requestCtx, "failed to delete note", zap.Error(err))
		return response.WriteError(ctx, err)
	}

	if err := ctx.SendStatus(fiber.StatusNoContent); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// toNoteResponse строит DTO ответа из доменной сущности.
func toNoteResponse(note *entities.Note) dto.NoteResponse {
	return dto.NoteResponse{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}
