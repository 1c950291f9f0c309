package postgres

import (
	"errors"

	"gorm.io/gorm"

	"forumapi/internal/apperrors"
	"forumapi/internal/entities"
	"forumapi/internal/models"
	"forumapi/internal/utils"
)

type ThreadPostgresStorage struct {
	db *gorm.DB
}

func NewThreadPostgresStorage(db *gorm.DB) *ThreadPostgresStorage {
	return &ThreadPostgresStorage{db: db}
}

func (s *ThreadPostgresStorage) AddThread(title, body, owner string) (*entities.AddedThread, error) {
	t := models.Thread{
		ID:    utils.GenerateID("thread"),
		Title: title,
		Body:  body,
		Owner: owner,
	}

	if err := s.db.Create(&t).Error; err != nil {
		return nil, err
	}

	return &entities.AddedThread{ID: t.ID, Title: t.Title, Owner: t.Owner}, nil
}

func (s *ThreadPostgresStorage) VerifyThreadID(threadID string) error {
	var t models.Thread
	if err := s.db.Select("id").Where("id = ?", threadID).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFoundError("Thread tidak ditemukan")
		}
		return err
	}
	return nil
}

func (s *ThreadPostgresStorage) GetThreadByID(threadID string) (*entities.ThreadHeader, error) {
	var header entities.ThreadHeader
	err := s.db.Raw(`
		SELECT threads.id, threads.title, threads.body, threads.date, users.username
		FROM threads
		LEFT JOIN users ON threads.owner = users.id
		WHERE threads.id = ?`, threadID).Scan(&header).Error
	if err != nil {
		return nil, err
	}
	if header.ID == "" {
		return nil, apperrors.NewNotFoundError("Thread tidak ditemukan")
	}
	return &header, nil
}
