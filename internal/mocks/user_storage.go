package mocks

import (
	"forumapi/internal/apperrors"
	"forumapi/internal/entities"
	"forumapi/internal/models"
	"forumapi/internal/utils"
)

type MockUserStorage struct {
	Users map[string]*models.User // keyed by username
	Calls []string
}

func NewMockUserStorage() *MockUserStorage {
	return &MockUserStorage{Users: make(map[string]*models.User)}
}

func (m *MockUserStorage) AddUser(username, password, fullname string) (*entities.AddedUser, error) {
	m.Calls = append(m.Calls, "AddUser")

	u := &models.User{
		ID:       utils.GenerateID("user"),
		Username: username,
		Password: password,
		Fullname: fullname,
	}
	m.Users[username] = u

	return &entities.AddedUser{ID: u.ID, Username: u.Username, Fullname: u.Fullname}, nil
}

func (m *MockUserStorage) GetUserByUsername(username string) (*models.User, error) {
	m.Calls = append(m.Calls, "GetUserByUsername")

	u, ok := m.Users[username]
	if !ok {
		return nil, apperrors.NewNotFoundError("Username tidak ditemukan")
	}
	return u, nil
}

func (m *MockUserStorage) VerifyAvailableUsername(username string) error {
	m.Calls = append(m.Calls, "VerifyAvailableUsername")

	if _, ok := m.Users[username]; ok {
		return apperrors.NewValidationError("Username tidak tersedia")
	}
	return nil
}
