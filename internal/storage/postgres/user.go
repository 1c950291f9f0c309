package postgres

import (
	"errors"

	"gorm.io/gorm"

	"forumapi/internal/apperrors"
	"forumapi/internal/entities"
	"forumapi/internal/models"
	"forumapi/internal/utils"
)

type UserPostgresStorage struct {
	db *gorm.DB
}

func NewUserPostgresStorage(db *gorm.DB) *UserPostgresStorage {
	return &UserPostgresStorage{db: db}
}

func (s *UserPostgresStorage) AddUser(username, password, fullname string) (*entities.AddedUser, error) {
	u := models.User{
		ID:       utils.GenerateID("user"),
		Username: username,
		Password: password,
		Fullname: fullname,
	}

	if err := s.db.Create(&u).Error; err != nil {
		return nil, err
	}

	return &entities.AddedUser{ID: u.ID, Username: u.Username, Fullname: u.Fullname}, nil
}

func (s *UserPostgresStorage) GetUserByUsername(username string) (*models.User, error) {
	var u models.User
	if err := s.db.Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("Username tidak ditemukan")
		}
		return nil, err
	}
	return &u, nil
}

func (s *UserPostgresStorage) VerifyAvailableUsername(username string) error {
	var count int64
	if err := s.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return apperrors.NewValidationError("Username tidak tersedia")
	}
	return nil
}
