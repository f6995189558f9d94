// Package repositories определяет интерфейсы хранилищ.
package repositories

import (
	"context"

	"notesapi/internal/domain/entities"
)

// UserRepository определяет операции сохранения и поиска пользователей.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)

	FindByID(ctx context.Context, id string) (*entities.User, error)

	FindByEmail(ctx context.Context, email string) (*entities.User, error)

	ExistsByEmail(ctx context.Context, email string) (bool, error)

	FindAll(ctx context.Context) ([]*entities.User, error)

	Update(ctx context.Context, user *entities.User) (*entities.User, error)

	Delete(ctx context.Context, id string) error
}
