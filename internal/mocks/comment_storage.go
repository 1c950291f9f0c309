package mocks

import (
	"time"

	"forumapi/internal/apperrors"
	"forumapi/internal/entities"
	"forumapi/internal/utils"
)

type MockCommentStorage struct {
	Rows   map[string][]entities.CommentRow // threadID -> ordered rows
	Owners map[string]string                // commentID -> owner
	Calls  []string
}

func NewMockCommentStorage() *MockCommentStorage {
	return &MockCommentStorage{
		Rows:   make(map[string][]entities.CommentRow),
		Owners: make(map[string]string),
	}
}

// SeedComment appends a row under threadID, preserving seed order.
func (m *MockCommentStorage) SeedComment(threadID, owner string, row entities.CommentRow) {
	m.Rows[threadID] = append(m.Rows[threadID], row)
	m.Owners[row.ID] = owner
}

func (m *MockCommentStorage) AddComment(threadID, content, owner string) (*entities.AddedComment, error) {
	m.Calls = append(m.Calls, "AddComment")

	id := utils.GenerateID("comment")
	m.Rows[threadID] = append(m.Rows[threadID], entities.CommentRow{
		ID:        id,
		Username:  owner,
		Date:      time.Now(),
		Content:   content,
		LikeCount: "0",
	})
	m.Owners[id] = owner

	return &entities.AddedComment{ID: id, Content: content, Owner: owner}, nil
}

func (m *MockCommentStorage) GetCommentsByThreadID(threadID string) ([]entities.CommentRow, error) {
	m.Calls = append(m.Calls, "GetCommentsByThreadID")
	return append([]entities.CommentRow{}, m.Rows[threadID]...), nil
}

func (m *MockCommentStorage) VerifyCommentID(commentID string) error {
	m.Calls = append(m.Calls, "VerifyCommentID")

	if _, ok := m.Owners[commentID]; !ok {
		return apperrors.NewNotFoundError("Komentar tidak ditemukan")
	}
	return nil
}

func (m *MockCommentStorage) VerifyCommentOwnership(commentID, owner string) error {
	m.Calls = append(m.Calls, "VerifyCommentOwnership")

	stored, ok := m.Owners[commentID]
	if !ok {
		return apperrors.NewNotFoundError("Komentar tidak ditemukan")
	}
	if stored != owner {
		return apperrors.NewAuthorizationError("Komentar hanya dapat dihapus oleh pemiliknya")
	}
	return nil
}

func (m *MockCommentStorage) DeleteCommentByID(commentID string) error {
	m.Calls = append(m.Calls, "DeleteCommentByID")

	for threadID, rows := range m.Rows {
		for i := range rows {
			if rows[i].ID == commentID {
				rows[i].IsDelete = true
				m.Rows[threadID] = rows
			}
		}
	}
	return nil
}
