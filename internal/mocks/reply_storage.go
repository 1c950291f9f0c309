package mocks

import (
	"time"

	"forumapi/internal/apperrors"
	"forumapi/internal/entities"
	"forumapi/internal/utils"
)

type MockReplyStorage struct {
	Rows   map[string][]entities.ReplyRow // threadID -> ordered rows
	Owners map[string]string              // replyID -> owner
	Calls  []string
}

func NewMockReplyStorage() *MockReplyStorage {
	return &MockReplyStorage{
		Rows:   make(map[string][]entities.ReplyRow),
		Owners: make(map[string]string),
	}
}

func (m *MockReplyStorage) SeedReply(threadID, owner string, row entities.ReplyRow) {
	m.Rows[threadID] = append(m.Rows[threadID], row)
	m.Owners[row.ID] = owner
}

func (m *MockReplyStorage) AddReply(threadID, commentID, content, owner string) (*entities.AddedReply, error) {
	m.Calls = append(m.Calls, "AddReply")

	id := utils.GenerateID("reply")
	m.Rows[threadID] = append(m.Rows[threadID], entities.ReplyRow{
		ID:        id,
		CommentID: commentID,
		Content:   content,
		Date:      time.Now(),
		Username:  owner,
	})
	m.Owners[id] = owner

	return &entities.AddedReply{ID: id, Content: content, Owner: owner}, nil
}

func (m *MockReplyStorage) GetRepliesByThreadID(threadID string) ([]entities.ReplyRow, error) {
	m.Calls = append(m.Calls, "GetRepliesByThreadID")
	return append([]entities.ReplyRow{}, m.Rows[threadID]...), nil
}

func (m *MockReplyStorage) VerifyReplyID(replyID string) error {
	m.Calls = append(m.Calls, "VerifyReplyID")

	if _, ok := m.Owners[replyID]; !ok {
		return apperrors.NewNotFoundError("Balasan tidak ditemukan")
	}
	return nil
}

func (m *MockReplyStorage) VerifyReplyOwnership(replyID, owner string) error {
	m.Calls = append(m.Calls, "VerifyReplyOwnership")

	stored, ok := m.Owners[replyID]
	if !ok {
		return apperrors.NewNotFoundError("Balasan tidak ditemukan")
	}
	if stored != owner {
		return apperrors.NewAuthorizationError("Balasan hanya dapat dihapus oleh pemiliknya")
	}
	return nil
}

func (m *MockReplyStorage) DeleteReplyByID(replyID string) error {
	m.Calls = append(m.Calls, "DeleteReplyByID")

	for threadID, rows := range m.Rows {
		for i := range rows {
			if rows[i].ID == replyID {
				rows[i].IsDelete = true
				m.Rows[threadID] = rows
			}
		}
	}
	return nil
}
