package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notesapi/internal/adapters/postgres"
	"notesapi/internal/domain/entities"
)

const (
	testUserID = "e7a0f6f2-9f9f-4b44-9a58-1d1c5a2c0a01"
	testEmail  = "test@example.com"
	testHash   = "$2a$10$hashed_password_value"
)

func userColumns() []string {
	return []string{"id", "email", "password_hash", "created_at", "updated_at"}
}

func TestUserRepositoryCreate(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("success - user inserted", func(t *testing.T) {
		mockPool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mockPool.Close()

		mockPool.ExpectQuery("INSERT INTO users").
			WithArgs(testEmail, testHash).
			WillReturnRows(pgxmock.NewRows(userColumns()).
				AddRow(testUserID, testEmail, testHash, now, now))

		repo := postgres.NewUserRepository(mockPool)

		created, err := repo.Create(ctx, &entities.User{Email: testEmail, PasswordHash: testHash})
		require.NoError(t, err)
		assert.Equal(t, testUserID, created.ID)
		assert.Equal(t, testEmail, created.Email)

		require.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("error - duplicate email maps to ErrUserExists", func(t *testing.T) {
		mockPool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mockPool.Close()

		mockPool.ExpectQuery("INSERT INTO users").
			WithArgs(testEmail, testHash).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		repo := postgres.NewUserRepository(mockPool)

		created, err := repo.Create(ctx, &entities.User{Email: testEmail, PasswordHash: testHash})
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrUserExists)
		assert.Nil(t, created)

		require.NoError(t, mockPool.ExpectationsWereMet())
	})
}

func TestUserRepositoryFindByEmail(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("success - user found", func(t *testing.T) {
		mockPool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mockPool.Close()

		mockPool.ExpectQuery("SELECT id, email, password_hash, created_at, updated_at").
			WithArgs(testEmail).
			WillReturnRows(pgxmock.NewRows(userColumns()).
				AddRow(testUserID, testEmail, testHash, now, now))

		repo := postgres.NewUserRepository(mockPool)

		user, err := repo.FindByEmail(ctx, testEmail)
		require.NoError(t, err)
		assert.Equal(t, testUserID, user.ID)
		assert.Equal(t, testHash, user.PasswordHash)

		require.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("error - no rows maps to ErrUserNotFound", func(t *testing.T) {
		mockPool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mockPool.Close()

		mockPool.ExpectQuery("SELECT id, email, password_hash, created_at, updated_at").
			WithArgs("ghost@example.com").
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewUserRepository(mockPool)

		user, err := repo.FindByEmail(ctx, "ghost@example.com")
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrUserNotFound)
		assert.Nil(t, user)

		require.NoError(t, mockPool.ExpectationsWereMet())
	})
}

func TestUserRepositoryExistsByEmail(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		email  string
		exists bool
	}{
		{name: "registered email", email: testEmail, exists: true},
		{name: "unknown email", email: "ghost@example.com", exists: false},
	}

	for _, ttt := range tests {
		t.Run(ttt.name, func(t *testing.T) {
			mockPool, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mockPool.Close()

			mockPool.ExpectQuery("SELECT EXISTS").
				WithArgs(ttt.email).
				WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(ttt.exists))

			repo := postgres.NewUserRepository(mockPool)

			exists, err := repo.ExistsByEmail(ctx, ttt.email)
			require.NoError(t, err)
			assert.Equal(t, ttt.exists, exists)

			require.NoError(t, mockPool.ExpectationsWereMet())
		})
	}
}

func TestUserRepositoryFindAll(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	mockPool.ExpectQuery("SELECT id, email, password_hash, created_at, updated_at").
		WillReturnRows(pgxmock.NewRows(userColumns()).
			AddRow(testUserID, testEmail, testHash, now, now).
			AddRow("another-id", "second@example.com", testHash, now, now))

	repo := postgres.NewUserRepository(mockPool)

	foundUsers, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, foundUsers, 2)
	assert.Equal(t, "second@example.com", foundUsers[1].Email)

	require.NoError(t, mockPool.ExpectationsWereMet())
}

func TestUserRepositoryDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("success - user removed", func(t *testing.T) {
		mockPool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mockPool.Close()

		mockPool.ExpectExec("DELETE FROM users").
			WithArgs(testUserID).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		repo := postgres.NewUserRepository(mockPool)

		require.NoError(t, repo.Delete(ctx, testUserID))
		require.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("error - missing user maps to ErrUserNotFound", func(t *testing.T) {
		mockPool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mockPool.Close()

		mockPool.ExpectExec("DELETE FROM users").
			WithArgs("missing").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		repo := postgres.NewUserRepository(mockPool)

		err = repo.Delete(ctx, "missing")
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrUserNotFound)

		require.NoError(t, mockPool.ExpectationsWereMet())
	})
}
