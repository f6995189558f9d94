// Package postgres содержит реализации репозиториев поверх PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"notesapi/internal/domain/entities"
	"notesapi/internal/ports/repositories"
	"notesapi/pkg/logger"
)

// Код ошибки PostgreSQL для нарушения уникальности.
const uniqueViolationCode = "23505"

// PgxPoolInterface описывает подмножество пула pgx, используемое репозиториями.
// Выделено в интерфейс для подмены в тестах через pgxmock.
type PgxPoolInterface interface {
	QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Close()
}

// UserRepository реализует интерфейс repositories.UserRepository для Postgres.
type UserRepository struct {
	pool PgxPoolInterface
}

// NewUserRepository создает новый репозиторий пользователей.
func NewUserRepository(pool PgxPoolInterface) repositories.UserRepository {
	return &UserRepository{pool: pool}
}

// Create создает нового пользователя. Дубликат email возвращает ErrUserExists.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Create"))

	query := `
        INSERT INTO users (email, password_hash)
        VALUES ($1, $2)
        RETURNING id, email, password_hash, created_at, updated_at
    `

	var createdUser entities.User
	err := r.pool.QueryRow(ctx, query,
		user.Email,
		user.PasswordHash,
	).Scan(
		&createdUser.ID,
		&createdUser.Email,
		&createdUser.PasswordHash,
		&createdUser.CreatedAt,
		&createdUser.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			log.Debug(ctx, "duplicate email on user creation", zap.String("email", user.Email))
			return nil, entities.ErrUserExists
		}
		log.Error(ctx, "error creating user", zap.Error(err))
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return &createdUser, nil
}

// FindByID находит пользователя по ID.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByID"))

	query := `
        SELECT id, email, password_hash, created_at, updated_at
        FROM users
        WHERE id = $1
    `

	var user entities.User
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found", zap.String("id", id))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "error finding user by id", zap.Error(err))
		return nil, fmt.Errorf("error querying user by id: %w", err)
	}

	return &user, nil
}

// FindByEmail находит пользователя по точному совпадению email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByEmail"))

	query := `
        SELECT id, email, password_hash, created_at, updated_at
        FROM users
        WHERE email = $1
    `

	var user entities.User
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found", zap.String("email", email))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "error finding user by email", zap.Error(err))
		return nil, fmt.Errorf("error querying user by email: %w", err)
	}

	return &user, nil
}

// ExistsByEmail проверяет, зарегистрирован ли пользователь с таким email.
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "ExistsByEmail"))

	query := `
        SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)
    `

	var exists bool
	if err := r.pool.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		log.Error(ctx, "error checking user existence", zap.Error(err))
		return false, fmt.Errorf("error checking user existence: %w", err)
	}

	return exists, nil
}

// FindAll возвращает всех пользователей.
func (r *UserRepository) FindAll(ctx context.Context) ([]*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindAll"))

	query := `
        SELECT id, email, password_hash, created_at, updated_at
        FROM users
        ORDER BY created_at
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		log.Error(ctx, "error listing users", zap.Error(err))
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	defer rows.Close()

	users := make([]*entities.User, 0)
	for rows.Next() {
		var user entities.User
		if err := rows.Scan(
			&user.ID,
			&user.Email,
			&user.PasswordHash,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			log.Error(ctx, "error scanning user row", zap.Error(err))
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating user rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, nil
}

// Update обновляет email и хэш пароля пользователя.
func (r *UserRepository) Update(ctx context.Context, user *entities.User) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Update"))

	query := `
        UPDATE users
        SET email = $2, password_hash = $3, updated_at = $4
        WHERE id = $1
        RETURNING id, email, password_hash, created_at, updated_at
    `

	var updatedUser entities.User
	now := time.Now().UTC()

	err := r.pool.QueryRow(ctx, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		now,
	).Scan(
		&updatedUser.ID,
		&updatedUser.Email,
		&updatedUser.PasswordHash,
		&updatedUser.CreatedAt,
		&updatedUser.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found for update", zap.String("id", user.ID))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "error updating user", zap.Error(err))
		return nil, fmt.Errorf("error updating user: %w", err)
	}

	return &updatedUser, nil
}

// Delete удаляет пользователя по ID.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Delete"))

	query := `
        DELETE FROM users
        WHERE id = $1
    `

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		log.Error(ctx, "error deleting user", zap.Error(err))
		return fmt.Errorf("error deleting user: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "user not found for deletion", zap.String("id", id))
		return entities.ErrUserNotFound
	}

	return nil
}
