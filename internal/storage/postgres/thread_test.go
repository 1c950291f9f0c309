package postgres

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forumapi/internal/apperrors"
)

func TestThreadPostgresStorage_VerifyThreadID(t *testing.T) {
	t.Run("resolves an existing thread", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT "id" FROM "threads" WHERE id =`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("thread-123"))

		err := NewThreadPostgresStorage(db).VerifyThreadID("thread-123")

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps an empty result to not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT "id" FROM "threads" WHERE id =`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		err := NewThreadPostgresStorage(db).VerifyThreadID("thread-missing")

		var nf *apperrors.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "Thread tidak ditemukan", nf.Message)
	})
}

func TestThreadPostgresStorage_GetThreadByID(t *testing.T) {
	t.Run("scans the joined header row", func(t *testing.T) {
		db, mock := newMockDB(t)
		date := time.Date(2023, 2, 9, 7, 0, 0, 0, time.UTC)
		mock.ExpectQuery(`SELECT threads.id, threads.title, threads.body, threads.date, users.username FROM threads`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "body", "date", "username"}).
				AddRow("thread-123", "a title", "a body", date, "dicoding"))

		header, err := NewThreadPostgresStorage(db).GetThreadByID("thread-123")

		require.NoError(t, err)
		assert.Equal(t, "thread-123", header.ID)
		assert.Equal(t, "a title", header.Title)
		assert.Equal(t, "a body", header.Body)
		assert.Equal(t, date, header.Date)
		assert.Equal(t, "dicoding", header.Username)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps an empty result to not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT threads.id, threads.title, threads.body, threads.date, users.username FROM threads`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "body", "date", "username"}))

		_, err := NewThreadPostgresStorage(db).GetThreadByID("thread-missing")

		var nf *apperrors.NotFoundError
		require.ErrorAs(t, err, &nf)
	})
}
