package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notesapi/internal/adapters/postgres"
	"notesapi/internal/domain/entities"
)

const (
	testNoteID  = "6c1f7d10-25dd-45cf-a0a9-2a1b3c4d5e6f"
	testOwnerID = "e7a0f6f2-9f9f-4b44-9a58-1d1c5a2c0a01"
)

func noteColumns() []string {
	return []string{"id", "user_id", "title", "content", "created_at", "updated_at"}
}

func TestNoteRepositoryCreate(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	mockPool.ExpectQuery("INSERT INTO notes").
		WithArgs(testOwnerID, "shopping", "milk, eggs").
		WillReturnRows(pgxmock.NewRows(noteColumns()).
			AddRow(testNoteID, testOwnerID, "shopping", "milk, eggs", now, now))

	repo := postgres.NewNoteRepository(mockPool)

	created, err := repo.Create(ctx, &entities.Note{
		UserID:  testOwnerID,
		Title:   "shopping",
		Content: "milk, eggs",
	})
	require.NoError(t, err)
	assert.Equal(t, testNoteID, created.ID)
	assert.Equal(t, testOwnerID, created.UserID)

	require.NoError(t, mockPool.ExpectationsWereMet())
}

func TestNoteRepositoryFindByID(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("success - note found regardless of owner", func(t *testing.T) {
		mockPool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mockPool.Close()

		mockPool.ExpectQuery("SELECT id, user_id, title, content, created_at, updated_at").
			WithArgs(testNoteID).
			WillReturnRows(pgxmock.NewRows(noteColumns()).
				AddRow(testNoteID, testOwnerID, "shopping", "milk, eggs", now, now))

		repo := postgres.NewNoteRepository(mockPool)

		note, err := repo.FindByID(ctx, testNoteID)
		require.NoError(t, err)
		assert.Equal(t, testOwnerID, note.UserID)

		require.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("error - no rows maps to ErrNoteNotFound", func(t *testing.T) {
		mockPool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mockPool.Close()

		mockPool.ExpectQuery("SELECT id, user_id, title, content, created_at, updated_at").
			WithArgs("missing").
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewNoteRepository(mockPool)

		note, err := repo.FindByID(ctx, "missing")
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrNoteNotFound)
		assert.Nil(t, note)

		require.NoError(t, mockPool.ExpectationsWereMet())
	})
}

func TestNoteRepositoryFindAll(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	mockPool.ExpectQuery("SELECT id, user_id, title, content, created_at, updated_at").
		WillReturnRows(pgxmock.NewRows(noteColumns()).
			AddRow(testNoteID, testOwnerID, "shopping", "milk, eggs", now, now).
			AddRow("note-2", "other-owner", "other", "note", now, now))

	repo := postgres.NewNoteRepository(mockPool)

	notes, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "other-owner", notes[1].UserID)

	require.NoError(t, mockPool.ExpectationsWereMet())
}

func TestNoteRepositoryUpdate(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	mockPool.ExpectQuery("UPDATE notes").
		WithArgs(testNoteID, "new title", "new content", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(noteColumns()).
			AddRow(testNoteID, testOwnerID, "new title", "new content", now, now))

	repo := postgres.NewNoteRepository(mockPool)

	updated, err := repo.Update(ctx, &entities.Note{
		ID:      testNoteID,
		UserID:  testOwnerID,
		Title:   "new title",
		Content: "new content",
	})
	require.NoError(t, err)
	assert.Equal(t, "new title", updated.Title)

	require.NoError(t, mockPool.ExpectationsWereMet())
}

func TestNoteRepositoryDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("success - note removed", func(t *testing.T) {
		mockPool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mockPool.Close()

		mockPool.ExpectExec("DELETE FROM notes").
			WithArgs(testNoteID).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		repo := postgres.NewNoteRepository(mockPool)

		require.NoError(t, repo.Delete(ctx, testNoteID))
		require.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("error - missing note maps to ErrNoteNotFound", func(t *testing.T) {
		mockPool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mockPool.Close()

		mockPool.ExpectExec("DELETE FROM notes").
			WithArgs("missing").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		repo := postgres.NewNoteRepository(mockPool)

		err = repo.Delete(ctx, "missing")
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrNoteNotFound)

		require.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("error - database failure is wrapped", func(t *testing.T) {
		mockPool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mockPool.Close()

		dbErr := errors.New("connection reset")
		mockPool.ExpectExec("DELETE FROM notes").
			WithArgs(testNoteID).
			WillReturnError(dbErr)

		repo := postgres.NewNoteRepository(mockPool)

		err = repo.Delete(ctx, testNoteID)
		require.Error(t, err)
		assert.ErrorIs(t, err, dbErr)

		require.NoError(t, mockPool.ExpectationsWereMet())
	})
}
