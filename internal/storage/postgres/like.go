package postgres

import (
	"errors"

	"gorm.io/gorm"

	"forumapi/internal/models"
	"forumapi/internal/utils"
)

type LikePostgresStorage struct {
	db *gorm.DB
}

func NewLikePostgresStorage(db *gorm.DB) *LikePostgresStorage {
	return &LikePostgresStorage{db: db}
}

func (s *LikePostgresStorage) IsAlreadyLiked(commentID, owner string) (string, error) {
	var l models.Like
	err := s.db.Select("id").
		Where("comment_id = ? AND owner = ?", commentID, owner).
		First(&l).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return l.ID, nil
}

func (s *LikePostgresStorage) AddLike(commentID, owner string) (string, error) {
	l := models.Like{
		ID:        utils.GenerateID("like"),
		CommentID: commentID,
		Owner:     owner,
	}

	if err := s.db.Create(&l).Error; err != nil {
		return "", err
	}
	return l.ID, nil
}

func (s *LikePostgresStorage) DeleteLikeByID(likeID string) error {
	return s.db.Where("id = ?", likeID).Delete(&models.Like{}).Error
}
