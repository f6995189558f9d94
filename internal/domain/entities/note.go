package entities

import (
	"errors"
	"time"
)

// Ошибки домена заметок.
var (
	ErrNoteNotFound       = errors.New("note not found")
	ErrInvalidNote        = errors.New("note title and content cannot be empty")
	ErrAccessDenied       = errors.New("you do not own this note")
	ErrNoteCreationFailed = errors.New("failed to create note")
)

// Note представляет заметку пользователя. UserID устанавливается при создании
// и никогда не меняется.
type Note struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewNote создает новую заметку для владельца с указанными заголовком и содержимым.
func NewNote(userID, title, content string) *Note {
	now := time.Now()
	return &Note{
		UserID:    userID,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
