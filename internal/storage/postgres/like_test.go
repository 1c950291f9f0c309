package postgres

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikePostgresStorage_IsAlreadyLiked(t *testing.T) {
	t.Run("returns the id of an active like", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT "id" FROM "likes" WHERE comment_id =`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("like-123"))

		likeID, err := NewLikePostgresStorage(db).IsAlreadyLiked("comment-123", "user-123")

		require.NoError(t, err)
		assert.Equal(t, "like-123", likeID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no active like is not an error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT "id" FROM "likes" WHERE comment_id =`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		likeID, err := NewLikePostgresStorage(db).IsAlreadyLiked("comment-123", "user-123")

		require.NoError(t, err)
		assert.Empty(t, likeID)
	})
}

func TestLikePostgresStorage_DeleteLikeByID(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "likes" WHERE id =`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := NewLikePostgresStorage(db).DeleteLikeByID("like-123")

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
