package postgres

import (
	"errors"

	"gorm.io/gorm"

	"forumapi/internal/apperrors"
	"forumapi/internal/entities"
	"forumapi/internal/models"
	"forumapi/internal/utils"
)

type ReplyPostgresStorage struct {
	db *gorm.DB
}

func NewReplyPostgresStorage(db *gorm.DB) *ReplyPostgresStorage {
	return &ReplyPostgresStorage{db: db}
}

func (s *ReplyPostgresStorage) AddReply(threadID, commentID, content, owner string) (*entities.AddedReply, error) {
	r := models.Reply{
		ID:        utils.GenerateID("reply"),
		ThreadID:  threadID,
		CommentID: commentID,
		Content:   content,
		Owner:     owner,
	}

	if err := s.db.Create(&r).Error; err != nil {
		return nil, err
	}

	return &entities.AddedReply{ID: r.ID, Content: r.Content, Owner: r.Owner}, nil
}

func (s *ReplyPostgresStorage) GetRepliesByThreadID(threadID string) ([]entities.ReplyRow, error) {
	rows := make([]entities.ReplyRow, 0)
	err := s.db.Raw(`
		SELECT replies.id, replies.comment_id, replies.content, replies.date, users.username, replies.is_delete
		FROM replies
		LEFT JOIN users ON replies.owner = users.id
		WHERE replies.thread_id = ?
		ORDER BY replies.date ASC`, threadID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *ReplyPostgresStorage) VerifyReplyID(replyID string) error {
	var r models.Reply
	if err := s.db.Select("id").Where("id = ?", replyID).First(&r).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFoundError("Balasan tidak ditemukan")
		}
		return err
	}
	return nil
}

func (s *ReplyPostgresStorage) VerifyReplyOwnership(replyID, owner string) error {
	var r models.Reply
	if err := s.db.Select("owner").Where("id = ?", replyID).First(&r).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFoundError("Balasan tidak ditemukan")
		}
		return err
	}
	if r.Owner != owner {
		return apperrors.NewAuthorizationError("Balasan hanya dapat dihapus oleh pemiliknya")
	}
	return nil
}

func (s *ReplyPostgresStorage) DeleteReplyByID(replyID string) error {
	return s.db.Model(&models.Reply{}).
		Where("id = ?", replyID).
		Update("is_delete", true).Error
}
