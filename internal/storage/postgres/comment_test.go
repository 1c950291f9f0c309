package postgres

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forumapi/internal/apperrors"
)

func TestCommentPostgresStorage_GetCommentsByThreadID(t *testing.T) {
	t.Run("keeps row order and the textual like count", func(t *testing.T) {
		db, mock := newMockDB(t)
		first := time.Date(2023, 2, 9, 7, 1, 0, 0, time.UTC)
		second := time.Date(2023, 2, 9, 7, 2, 0, 0, time.UTC)
		mock.ExpectQuery(`SELECT comments.id, users.username, comments.date, comments.content, comments.is_delete`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "date", "content", "is_delete", "like_count"}).
				AddRow("comment-1", "dicoding", first, "first comment", false, "3").
				AddRow("comment-2", "johndoe", second, "", true, "0"))

		rows, err := NewCommentPostgresStorage(db).GetCommentsByThreadID("thread-123")

		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "comment-1", rows[0].ID)
		assert.Equal(t, "3", rows[0].LikeCount)
		assert.False(t, rows[0].IsDelete)
		assert.Equal(t, "comment-2", rows[1].ID)
		assert.True(t, rows[1].IsDelete)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("thread without comments yields an empty slice", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT comments.id, users.username, comments.date, comments.content, comments.is_delete`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "date", "content", "is_delete", "like_count"}))

		rows, err := NewCommentPostgresStorage(db).GetCommentsByThreadID("thread-123")

		require.NoError(t, err)
		require.NotNil(t, rows)
		assert.Empty(t, rows)
	})
}

func TestCommentPostgresStorage_VerifyCommentOwnership(t *testing.T) {
	t.Run("accepts the stored owner", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT "owner" FROM "comments" WHERE id =`).
			WillReturnRows(sqlmock.NewRows([]string{"owner"}).AddRow("user-123"))

		err := NewCommentPostgresStorage(db).VerifyCommentOwnership("comment-123", "user-123")

		require.NoError(t, err)
	})

	t.Run("rejects a different user", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT "owner" FROM "comments" WHERE id =`).
			WillReturnRows(sqlmock.NewRows([]string{"owner"}).AddRow("user-123"))

		err := NewCommentPostgresStorage(db).VerifyCommentOwnership("comment-123", "user-456")

		var authz *apperrors.AuthorizationError
		require.ErrorAs(t, err, &authz)
		assert.Equal(t, "Komentar hanya dapat dihapus oleh pemiliknya", authz.Message)
	})

	t.Run("maps an empty result to not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT "owner" FROM "comments" WHERE id =`).
			WillReturnRows(sqlmock.NewRows([]string{"owner"}))

		err := NewCommentPostgresStorage(db).VerifyCommentOwnership("comment-missing", "user-123")

		var nf *apperrors.NotFoundError
		require.ErrorAs(t, err, &nf)
	})
}

func TestCommentPostgresStorage_DeleteCommentByID(t *testing.T) {
	t.Run("flips the tombstone flag instead of deleting the row", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "comments" SET "is_delete"=`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := NewCommentPostgresStorage(db).DeleteCommentByID("comment-123")

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
