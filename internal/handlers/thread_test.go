package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forumapi/internal/entities"
	"forumapi/internal/mocks"
	"forumapi/internal/usecase"
)

func threadTestRouter(userID string) (*gin.Engine, *mocks.MockThreadStorage, *mocks.MockCommentStorage, *mocks.MockReplyStorage) {
	gin.SetMode(gin.TestMode)

	threads := mocks.NewMockThreadStorage()
	comments := mocks.NewMockCommentStorage()
	replies := mocks.NewMockReplyStorage()
	h := NewThreadHandler(usecase.NewThreadUseCase(threads, comments, replies))

	r := gin.New()
	r.POST("/threads", fakeAuth(userID), h.Create)
	r.GET("/threads/:threadId", h.Detail)
	return r, threads, comments, replies
}

func TestThreadHandler_Create(t *testing.T) {
	t.Run("responds 201 with the added thread", func(t *testing.T) {
		r, _, _, _ := threadTestRouter("user-123")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/threads",
			strings.NewReader(`{"title":"a title","body":"a body"}`))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"addedThread"`)
		assert.Contains(t, w.Body.String(), `"title":"a title"`)
		assert.Contains(t, w.Body.String(), `"owner":"user-123"`)
	})

	t.Run("responds 400 on a missing body", func(t *testing.T) {
		r, _, _, _ := threadTestRouter("user-123")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/threads",
			strings.NewReader(`{"title":"a title"}`))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "harus mengirimkan title dan body")
	})
}

func TestThreadHandler_Detail(t *testing.T) {
	t.Run("renders the nested thread view", func(t *testing.T) {
		r, threads, comments, replies := threadTestRouter("user-123")
		date := time.Date(2023, 2, 9, 7, 0, 0, 0, time.UTC)
		threads.SeedThread(entities.ThreadHeader{
			ID: "thread-123", Title: "a title", Body: "a body", Date: date, Username: "dicoding",
		})
		comments.SeedComment("thread-123", "user-123", entities.CommentRow{
			ID: "comment-123", Username: "dicoding", Date: date, Content: "New comment", LikeCount: "2",
		})
		replies.SeedReply("thread-123", "user-456", entities.ReplyRow{
			ID: "reply-123", CommentID: "comment-123", Content: "A reply", Date: date, Username: "johndoe",
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/threads/thread-123", nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Status string `json:"status"`
			Data   struct {
				Thread struct {
					ID       string `json:"id"`
					Username string `json:"username"`
					Comments []struct {
						ID        string `json:"id"`
						Content   string `json:"content"`
						LikeCount int    `json:"likeCount"`
						Replies   []struct {
							ID      string `json:"id"`
							Content string `json:"content"`
						} `json:"replies"`
					} `json:"comments"`
				} `json:"thread"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

		assert.Equal(t, "success", body.Status)
		assert.Equal(t, "thread-123", body.Data.Thread.ID)
		assert.Equal(t, "dicoding", body.Data.Thread.Username)
		require.Len(t, body.Data.Thread.Comments, 1)
		assert.Equal(t, 2, body.Data.Thread.Comments[0].LikeCount)
		require.Len(t, body.Data.Thread.Comments[0].Replies, 1)
		assert.Equal(t, "A reply", body.Data.Thread.Comments[0].Replies[0].Content)
	})

	t.Run("empty comment list marshals as an array, not null", func(t *testing.T) {
		r, threads, _, _ := threadTestRouter("user-123")
		threads.SeedThread(entities.ThreadHeader{ID: "thread-123", Title: "a title", Body: "a body"})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/threads/thread-123", nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"comments":[]`)
	})

	t.Run("responds 404 on an unknown thread", func(t *testing.T) {
		r, _, _, _ := threadTestRouter("user-123")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/threads/thread-missing", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Thread tidak ditemukan")
	})
}
