package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"notesapi/internal/domain/entities"
	"notesapi/internal/ports/repositories"
	"notesapi/pkg/logger"
)

const (
	methodCreateNote = "Create"
	methodGetNote    = "Get"
	methodListNotes  = "ListAll"
	methodUpdateNote = "Update"
	methodDeleteNote = "Delete"

	msgCreatingNote    = "creating note"
	msgNoteCreated     = "note created"
	msgBlankNoteFields = "blank title or content"
	msgNoteNotFound    = "note not found"
	msgNotNoteOwner    = "principal is not the note owner"
	msgNoteUpdated     = "note updated"
	msgNoteDeleted     = "note deleted"

	errCtxValidatingNote = "validating note"
	errCtxCreatingNote   = "creating note"
	errCtxFindingNote    = "finding note"
	errCtxCheckingOwner  = "checking note owner"
	errCtxUpdatingNote   = "updating note"
	errCtxDeletingNote   = "deleting note"
	errCtxListingNotes   = "listing notes"
)

// NoteUseCase реализует операции над заметками с проверкой владения.
// Владелец определяется по Principal, передаваемому явным параметром.
type NoteUseCase struct {
	noteRepo repositories.NoteRepository
}

// NewNoteUseCase создает новый экземпляр бизнес-логики заметок.
func NewNoteUseCase(noteRepo repositories.NoteRepository) *NoteUseCase {
	return &NoteUseCase{noteRepo: noteRepo}
}

// Create создает заметку, принадлежащую вызывающему.
func (uc *NoteUseCase) Create(ctx context.Context, principal *entities.Principal, title, content string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCreateNote), zap.String("userID", principal.UserID))
	log.Debug(ctx, msgCreatingNote)

	if err := validateNoteFields(title, content); err != nil {
		log.Debug(ctx, msgBlankNoteFields)
		return nil, fmt.Errorf("%s: %w", errCtxValidatingNote, err)
	}

	note := entities.NewNote(principal.UserID, title, content)

	createdNote, err := uc.noteRepo.Create(ctx, note)
	if err != nil {
		log.Error(ctx, "failed to create note", zap.Error(err))
		return nil, fmt.Errorf("%s: %w: %s", errCtxCreatingNote, entities.ErrNoteCreationFailed, err.Error())
	}

	log.Info(ctx, msgNoteCreated, zap.String("noteID", createdNote.ID))
	return createdNote, nil
}

// Get возвращает заметку по ID, если она принадлежит вызывающему.
// Отсутствие проверяется раньше владения, чтобы различать "не найдено"
// и "найдено, но запрещено".
func (uc *NoteUseCase) Get(ctx context.Context, principal *entities.Principal, noteID string) (*entities.Note, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodGetNote),
		zap.String("noteID", noteID),
		zap.String("userID", principal.UserID),
	)

	note, err := uc.noteRepo.FindByID(ctx, noteID)
	if err != nil {
		if errors.Is(err, entities.ErrNoteNotFound) {
			log.Debug(ctx, msgNoteNotFound)
			return nil, fmt.Errorf("%s: %w", errCtxFindingNote, err)
		}
		log.Error(ctx, "failed to find note", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingNote, err)
	}

	if note.UserID != principal.UserID {
		log.Warn(ctx, msgNotNoteOwner, zap.String("ownerID", note.UserID))
		return nil, fmt.Errorf("%s: %w", errCtxCheckingOwner, entities.ErrAccessDenied)
	}

	return note, nil
}

// Update изменяет заголовок и содержимое собственной заметки.
func (uc *NoteUseCase) Update(ctx context.Context, principal *entities.Principal, noteID, title, content string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodUpdateNote), zap.String("noteID", noteID))

	if err := validateNoteFields(title, content); err != nil {
		log.Debug(ctx, msgBlankNoteFields)
		return nil, fmt.Errorf("%s: %w", errCtxValidatingNote, err)
	}

	note, err := uc.Get(ctx, principal, noteID)
	if err != nil {
		return nil, err
	}

	note.Title = title
	note.Content = content

	updatedNote, err := uc.noteRepo.Update(ctx, note)
	if err != nil {
		log.Error(ctx, "failed to update note", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingNote, err)
	}

	log.Info(ctx, msgNoteUpdated, zap.String("noteID", updatedNote.ID))
	return updatedNote, nil
}

// Delete удаляет собственную заметку.
func (uc *NoteUseCase) Delete(ctx context.Context, principal *entities.Principal, noteID string) error {
	log := logger.Log(ctx).With(zap.String("method", methodDeleteNote), zap.String("noteID", noteID))

	note, err := uc.Get(ctx, principal, noteID)
	if err != nil {
		return err
	}

	if err := uc.noteRepo.Delete(ctx, note.ID); err != nil {
		log.Error(ctx, "failed to delete note", zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxDeletingNote, err)
	}

	log.Info(ctx, msgNoteDeleted)
	return nil
}

// ListAll возвращает все заметки без фильтрации по владельцу.
// Поведение унаследовано от исходного сервиса и оставлено до
// продуктового решения.
func (uc *NoteUseCase) ListAll(ctx context.Context) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodListNotes))

	notes, err := uc.noteRepo.FindAll(ctx)
	if err != nil {
		log.Error(ctx, "failed to list notes", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingNotes, err)
	}

	return notes, nil
}

// Заголовок и содержимое не могут быть пустыми или состоять из пробелов.
func validateNoteFields(title, content string) error {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return entities.ErrInvalidNote
	}
	return nil
}
