package dto

import "time"

// NoteRequest содержит данные для создания и обновления заметки.
type NoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NoteResponse содержит информацию о заметке для ответа.
type NoteResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
