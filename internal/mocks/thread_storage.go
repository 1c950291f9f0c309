// Package mocks holds in-memory storage fakes for use-case tests. Each
// fake records the methods invoked on it so tests can assert orchestration
// order and short-circuiting.
package mocks

import (
	"time"

	"forumapi/internal/apperrors"
	"forumapi/internal/entities"
	"forumapi/internal/utils"
)

type MockThreadStorage struct {
	Headers map[string]*entities.ThreadHeader
	Calls   []string
}

func NewMockThreadStorage() *MockThreadStorage {
	return &MockThreadStorage{Headers: make(map[string]*entities.ThreadHeader)}
}

// SeedThread registers a thread the fake will resolve.
func (m *MockThreadStorage) SeedThread(header entities.ThreadHeader) {
	m.Headers[header.ID] = &header
}

func (m *MockThreadStorage) AddThread(title, body, owner string) (*entities.AddedThread, error) {
	m.Calls = append(m.Calls, "AddThread")

	id := utils.GenerateID("thread")
	m.Headers[id] = &entities.ThreadHeader{
		ID:       id,
		Title:    title,
		Body:     body,
		Date:     time.Now(),
		Username: owner,
	}
	return &entities.AddedThread{ID: id, Title: title, Owner: owner}, nil
}

func (m *MockThreadStorage) VerifyThreadID(threadID string) error {
	m.Calls = append(m.Calls, "VerifyThreadID")

	if _, ok := m.Headers[threadID]; !ok {
		return apperrors.NewNotFoundError("Thread tidak ditemukan")
	}
	return nil
}

func (m *MockThreadStorage) GetThreadByID(threadID string) (*entities.ThreadHeader, error) {
	m.Calls = append(m.Calls, "GetThreadByID")

	header, ok := m.Headers[threadID]
	if !ok {
		return nil, apperrors.NewNotFoundError("Thread tidak ditemukan")
	}
	return header, nil
}
