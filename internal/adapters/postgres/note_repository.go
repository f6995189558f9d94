package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"notesapi/internal/domain/entities"
	"notesapi/internal/ports/repositories"
	"notesapi/pkg/logger"
)

// NoteRepository реализует интерфейс repositories.NoteRepository для Postgres.
type NoteRepository struct {
	pool PgxPoolInterface
}

// NewNoteRepository создает новый репозиторий заметок.
func NewNoteRepository(pool PgxPoolInterface) repositories.NoteRepository {
	return &NoteRepository{pool: pool}
}

// Create сохраняет новую заметку.
func (r *NoteRepository) Create(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Create"))
	log.Debug(ctx, "creating new note", zap.String("userID", note.UserID))

	query := `
        INSERT INTO notes (user_id, title, content)
        VALUES ($1, $2, $3)
        RETURNING id, user_id, title, content, created_at, updated_at
    `

	var createdNote entities.Note
	err := r.pool.QueryRow(ctx, query,
		note.UserID,
		note.Title,
		note.Content,
	).Scan(
		&createdNote.ID,
		&createdNote.UserID,
		&createdNote.Title,
		&createdNote.Content,
		&createdNote.CreatedAt,
		&createdNote.UpdatedAt,
	)

	if err != nil {
		log.Error(ctx, "error creating note", zap.Error(err))
		return nil, fmt.Errorf("error creating note: %w", err)
	}

	log.Debug(ctx, "note created", zap.String("noteID", createdNote.ID))
	return &createdNote, nil
}

// FindByID находит заметку по ID без фильтрации по владельцу.
func (r *NoteRepository) FindByID(ctx context.Context, id string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "FindByID"))

	query := `
        SELECT id, user_id, title, content, created_at, updated_at
        FROM notes
        WHERE id = $1
    `

	var note entities.Note
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&note.ID,
		&note.UserID,
		&note.Title,
		&note.Content,
		&note.CreatedAt,
		&note.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found", zap.String("noteID", id))
			return nil, entities.ErrNoteNotFound
		}
		log.Error(ctx, "error finding note", zap.Error(err))
		return nil, fmt.Errorf("error querying note by id: %w", err)
	}

	return &note, nil
}

// FindAll возвращает все заметки без фильтрации по владельцу.
func (r *NoteRepository) FindAll(ctx context.Context) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "FindAll"))

	query := `
        SELECT id, user_id, title, content, created_at, updated_at
        FROM notes
        ORDER BY updated_at DESC
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		log.Error(ctx, "error listing notes", zap.Error(err))
		return nil, fmt.Errorf("error listing notes: %w", err)
	}
	defer rows.Close()

	notes := make([]*entities.Note, 0)
	for rows.Next() {
		var note entities.Note
		if err := rows.Scan(
			&note.ID,
			&note.UserID,
			&note.Title,
			&note.Content,
			&note.CreatedAt,
			&note.UpdatedAt,
		); err != nil {
			log.Error(ctx, "error scanning note row", zap.Error(err))
			return nil, fmt.Errorf("error scanning note row: %w", err)
		}
		notes = append(notes, &note)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating note rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating note rows: %w", err)
	}

	return notes, nil
}

// Update обновляет заголовок и содержимое заметки, обновляя updated_at.
func (r *NoteRepository) Update(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Update"))

	query := `
        UPDATE notes
        SET title = $2, content = $3, updated_at = $4
        WHERE id = $1
        RETURNING id, user_id, title, content, created_at, updated_at
    `

	var updatedNote entities.Note
	now := time.Now().UTC()

	err := r.pool.QueryRow(ctx, query,
		note.ID,
		note.Title,
		note.Content,
		now,
	).Scan(
		&updatedNote.ID,
		&updatedNote.UserID,
		&updatedNote.Title,
		&updatedNote.Content,
		&updatedNote.CreatedAt,
		&updatedNote.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found for update", zap.String("noteID", note.ID))
			return nil, entities.ErrNoteNotFound
		}
		log.Error(ctx, "error updating note", zap.Error(err))
		return nil, fmt.Errorf("error updating note: %w", err)
	}

	return &updatedNote, nil
}

// Delete удаляет заметку по ID.
func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Delete"))

	query := `
        DELETE FROM notes
        WHERE id = $1
    `

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		log.Error(ctx, "error deleting note", zap.Error(err))
		return fmt.Errorf("error deleting note: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "note not found for deletion", zap.String("noteID", id))
		return entities.ErrNoteNotFound
	}

	return nil
}
