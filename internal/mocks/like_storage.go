package mocks

import (
	"forumapi/internal/utils"
)

type MockLikeStorage struct {
	byPair map[string]string // commentID+"/"+owner -> likeID
	byID   map[string]string // likeID -> commentID+"/"+owner
	Calls  []string
}

func NewMockLikeStorage() *MockLikeStorage {
	return &MockLikeStorage{
		byPair: make(map[string]string),
		byID:   make(map[string]string),
	}
}

func (m *MockLikeStorage) IsAlreadyLiked(commentID, owner string) (string, error) {
	m.Calls = append(m.Calls, "IsAlreadyLiked")
	return m.byPair[commentID+"/"+owner], nil
}

func (m *MockLikeStorage) AddLike(commentID, owner string) (string, error) {
	m.Calls = append(m.Calls, "AddLike")

	id := utils.GenerateID("like")
	m.byPair[commentID+"/"+owner] = id
	m.byID[id] = commentID + "/" + owner
	return id, nil
}

func (m *MockLikeStorage) DeleteLikeByID(likeID string) error {
	m.Calls = append(m.Calls, "DeleteLikeByID")

	if pair, ok := m.byID[likeID]; ok {
		delete(m.byPair, pair)
		delete(m.byID, likeID)
	}
	return nil
}

// LikeCount reports the number of active likes on a comment.
func (m *MockLikeStorage) LikeCount(commentID string) int {
	count := 0
	for pair := range m.byPair {
		if len(pair) > len(commentID) && pair[:len(commentID)+1] == commentID+"/" {
			count++
		}
	}
	return count
}
