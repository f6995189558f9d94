package repositories

import (
	"context"

	"notesapi/internal/domain/entities"
)

// NoteRepository определяет операции сохранения и поиска заметок.
// Поиск по ID не фильтрует по владельцу: проверка владения выполняется
// на уровне бизнес-логики, чтобы различать "не найдено" и "чужая заметка".
type NoteRepository interface {
	Create(ctx context.Context, note *entities.Note) (*entities.Note, error)

	FindByID(ctx context.Context, id string) (*entities.Note, error)

	FindAll(ctx context.Context) ([]*entities.Note, error)

	Update(ctx context.Context, note *entities.Note) (*entities.Note, error)

	Delete(ctx context.Context, id string) error
}
